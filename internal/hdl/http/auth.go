package http

import (
	"errors"
	"net/http"

	"github.com/avolkov/taskgate/internal/auth"
	"github.com/avolkov/taskgate/internal/ctrl"
	"github.com/avolkov/taskgate/internal/dto"
	"github.com/avolkov/taskgate/internal/hdl"
	mid "github.com/avolkov/taskgate/internal/hdl/http/middleware"
	"github.com/avolkov/taskgate/internal/hdl/http/utils"
	chi "github.com/go-chi/chi/v5"
)

func (h *Handler) RegisterAuthRoutes() {
	h.router.Route(
		"/public", func(r chi.Router) {
			r.Post("/register", h.register)
			r.With(mid.Device).Post("/login", h.login)
			r.Post("/refresh", h.refresh)
			r.Post("/logout", h.logout)
			r.Post("/logout-all", h.logoutAll)
		},
	)
}

// register godoc
//
//	@Summary		Register a new user
//	@Description	Create an account with a unique username
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RegisterRequest	true	"Credentials"
//	@Success		201		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.ErrorsResponse
//	@Failure		409		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Router			/public/register [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	req := &dto.RegisterRequest{}
	if ok := utils.ParseAndValidate(w, r, h.valid, req); !ok {
		return
	}

	if err := h.ctrl.Register(r.Context(), req); err != nil {
		if errors.Is(err, ctrl.ErrAlreadyExists) {
			utils.ErrResponse(w, http.StatusConflict, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusCreated, "user created")
}

// login godoc
//
//	@Summary		Authenticate using username & password
//	@Description	Issue an access/refresh token pair
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			User-Agent	header		string			false	"Client identifier stored with the session"
//	@Param			body		body		dto.LoginRequest	true	"Credentials"
//	@Success		200			{object}	dto.TokenPairResponse
//	@Failure		400			{object}	utils.ErrorsResponse
//	@Failure		401			{object}	utils.ErrorsResponse
//	@Failure		500			{object}	utils.ErrorsResponse
//	@Router			/public/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	device, ok := utils.DeviceFromRequest(r.Context())
	if !ok {
		utils.ErrResponse(w, http.StatusBadRequest, hdl.ErrNoDeviceInfo)
		return
	}

	req := &dto.LoginRequest{}
	if ok = utils.ParseAndValidate(w, r, h.valid, req); !ok {
		return
	}

	res, err := h.ctrl.Login(r.Context(), device, req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// refresh godoc
//
//	@Summary		Mint a new access token
//	@Description	Validate the refresh token against its store record and issue a fresh access token
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	dto.AccessTokenResponse
//	@Failure		400		{object}	utils.ErrorsResponse
//	@Failure		401		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Router			/public/refresh [post]
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, h.valid, req); !ok {
		return
	}

	res, err := h.ctrl.Refresh(r.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.SuccessResponse(w, http.StatusOK, res)
}

// logout godoc
//
//	@Summary		Revoke one session
//	@Description	Remove the refresh record matching the presented token; idempotent
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.ErrorsResponse
//	@Failure		401		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Router			/public/logout [post]
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, h.valid, req); !ok {
		return
	}

	if err := h.ctrl.Logout(r.Context(), req); err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "logged out")
}

// logoutAll godoc
//
//	@Summary		Revoke every session
//	@Description	Clear all refresh records for the token's user
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	utils.MessageResponse
//	@Failure		400		{object}	utils.ErrorsResponse
//	@Failure		401		{object}	utils.ErrorsResponse
//	@Failure		500		{object}	utils.ErrorsResponse
//	@Router			/public/logout-all [post]
func (h *Handler) logoutAll(w http.ResponseWriter, r *http.Request) {
	req := &dto.RefreshRequest{}
	if ok := utils.ParseAndValidate(w, r, h.valid, req); !ok {
		return
	}

	if err := h.ctrl.LogoutAll(r.Context(), req); err != nil {
		if errors.Is(err, auth.ErrInvalidRefreshToken) {
			utils.ErrResponse(w, http.StatusUnauthorized, err)
			return
		}

		utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
		return
	}

	utils.StatusResponse(w, http.StatusOK, "logged out from all devices")
}
