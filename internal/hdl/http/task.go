package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/avolkov/taskgate/internal/ctrl"
	"github.com/avolkov/taskgate/internal/dto"
	"github.com/avolkov/taskgate/internal/hdl"
	mid "github.com/avolkov/taskgate/internal/hdl/http/middleware"
	"github.com/avolkov/taskgate/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) RegisterTaskRoutes() {
	h.router.Route(
		"/auth", func(r chi.Router) {
			r.Use(mid.Auth(h.au))
			r.Get("/", h.greet)
			r.Route(
				"/tasks", func(r chi.Router) {
					r.Get("/", h.listTasks)
					r.Post("/", h.createTask)
					r.Get("/{id}", h.getTask)
					r.Put("/{id}", h.updateTask)
					r.Delete("/{id}", h.deleteTask)
				},
			)
		},
	)
}

// greet godoc
//
//	@Summary		Authenticated greeting
//	@Description	Plain-text proof that the access token is accepted
//	@Tags			Tasks
//	@Produce		plain
//	@Success		200	{string}	string
//	@Failure		401	{object}	utils.ErrorsResponse
//	@Failure		403	{object}	utils.ErrorsResponse
//	@Router			/auth [get]
func (h *Handler) greet(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.UsernameFromRequest(r.Context())
	if !ok {
		zap.L().Error(hdl.ErrFailedToGetUsername.Error())
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Hello, %s! You are authenticated.", username)
}

// listTasks godoc
//
//	@Summary	List the user's tasks
//	@Tags		Tasks
//	@Produce	json
//	@Success	200	{array}		models.Task
//	@Failure	401	{object}	utils.ErrorsResponse
//	@Failure	500	{object}	utils.ErrorsResponse
//	@Router		/auth/tasks [get]
func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.UsernameFromRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	res, err := h.ctrl.ListTasks(r.Context(), username)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// getTask godoc
//
//	@Summary	Get one task by id
//	@Tags		Tasks
//	@Produce	json
//	@Param		id	path		string	true	"Task UUID"
//	@Success	200	{object}	models.Task
//	@Failure	404	{object}	utils.ErrorsResponse
//	@Failure	500	{object}	utils.ErrorsResponse
//	@Router		/auth/tasks/{id} [get]
func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.UsernameFromRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	res, err := h.ctrl.GetTask(r.Context(), username, id)
	if err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// createTask godoc
//
//	@Summary	Create a task
//	@Tags		Tasks
//	@Accept		json
//	@Produce	json
//	@Param		body	body		dto.CreateTaskRequest	true	"Task fields"
//	@Success	201		{object}	dto.CreateTaskResponse
//	@Failure	400		{object}	utils.ErrorsResponse
//	@Failure	500		{object}	utils.ErrorsResponse
//	@Router		/auth/tasks [post]
func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.UsernameFromRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	req := &dto.CreateTaskRequest{}
	if ok = utils.ParseAndValidate(w, r, h.valid, req); !ok {
		return
	}

	res, err := h.ctrl.CreateTask(r.Context(), username, req)
	if err != nil {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusCreated, res)
}

// updateTask godoc
//
//	@Summary	Update a task
//	@Tags		Tasks
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Task UUID"
//	@Param		body	body		dto.UpdateTaskRequest	true	"Task fields"
//	@Success	200		{object}	utils.MessageResponse
//	@Failure	400		{object}	utils.ErrorsResponse
//	@Failure	404		{object}	utils.ErrorsResponse
//	@Failure	500		{object}	utils.ErrorsResponse
//	@Router		/auth/tasks/{id} [put]
func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.UsernameFromRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	req := &dto.UpdateTaskRequest{}
	if ok = utils.ParseAndValidate(w, r, h.valid, req); !ok {
		return
	}

	if err = h.ctrl.UpdateTask(r.Context(), username, id, req); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "task updated")
}

// deleteTask godoc
//
//	@Summary	Delete a task
//	@Tags		Tasks
//	@Produce	json
//	@Param		id	path		string	true	"Task UUID"
//	@Success	200	{object}	utils.MessageResponse
//	@Failure	404	{object}	utils.ErrorsResponse
//	@Failure	500	{object}	utils.ErrorsResponse
//	@Router		/auth/tasks/{id} [delete]
func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.UsernameFromRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return
	}

	if err = h.ctrl.DeleteTask(r.Context(), username, id); err != nil {
		if errors.Is(err, ctrl.ErrNotFound) {
			utils.ErrResponse(w, http.StatusNotFound, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "task deleted")
}
