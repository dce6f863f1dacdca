package approval_approve_post

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tms/internal/dto"
	"tms/internal/handlers/rest/respond"
	"tms/internal/pkg/middlewares/auth"
	"tms/internal/repository"
	"tms/internal/service/approval"
	"tms/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	id := mux.Vars(r)["id"]

	entity, err := h.service.Approve(r.Context(), actor, id)
	if err != nil {
		switch {
		case errors.Is(err, approval.ErrNotApprover):
			_ = respond.Error(w, http.StatusForbidden,
				dto.NewError(dto.CodePermissionDenied, "approval rights required"))
		case errors.Is(err, approval.ErrNotPending):
			_ = respond.Error(w, http.StatusConflict,
				dto.NewError(dto.CodeValidationError, "entity is not pending approval"))
		case errors.Is(err, repository.ErrEntityNotFound):
			_ = respond.Error(w, http.StatusNotFound,
				dto.NewError(dto.CodeNotFound, "entity not found"))
		default:
			_ = respond.Error(w, http.StatusInternalServerError,
				dto.NewError(dto.CodeNetworkError, "internal error"))
		}
		return
	}

	err = respond.JSON(w, http.StatusOK, dto.FromDomain(entity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
