package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "github.com/avolkov/taskgate/api/rest/v1"
	"github.com/avolkov/taskgate/internal/auth/jwt"
	"github.com/avolkov/taskgate/internal/ctrl"
	mid "github.com/avolkov/taskgate/internal/hdl/http/middleware"
	"github.com/avolkov/taskgate/internal/hdl/http/utils"
	"github.com/avolkov/taskgate/internal/hdl/validation"
	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Handler struct {
	router *chi.Mux
	au     jwt.Port
	valid  *validation.Validator
	ctrl   ctrl.AppCtrl
	srv    *http.Server
}

func New(au jwt.Port, valid *validation.Validator, ctrl ctrl.AppCtrl) *Handler {
	return &Handler{
		router: chi.NewRouter(),
		au:     au,
		valid:  valid,
		ctrl:   ctrl,
	}
}

func (h *Handler) Start(port int) {
	h.router.Use(
		mid.Logger(zap.L()),
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		mid.Prometheus,
		mid.OT,
	)

	h.RegisterAuthRoutes()
	h.RegisterTaskRoutes()
	h.router.Get("/swagger/*", httpSwagger.WrapHandler)
	h.router.Get(
		"/health", func(w http.ResponseWriter, r *http.Request) {
			utils.StatusResponse(w, http.StatusOK, "OK")
		},
	)

	h.srv = &http.Server{
		Handler:      h.router,
		Addr:         fmt.Sprintf(":%v", port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info(
		"Starting HTTP server",
		zap.String("addr", h.srv.Addr),
	)

	err := h.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		zap.L().Error("Server error", zap.Error(err))
	}
}

func (h *Handler) Close(ctx context.Context) error {
	return h.srv.Shutdown(ctx)
}
