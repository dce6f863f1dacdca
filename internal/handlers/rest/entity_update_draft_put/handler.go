package entity_update_draft_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tms/internal/dto"
	"tms/internal/handlers/rest/respond"
	"tms/internal/pkg/middlewares/auth"
	"tms/internal/repository"
	"tms/internal/service/workflow"
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

	var payload dto.EntityUpsert
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		_ = respond.Error(w, http.StatusBadRequest,
			dto.NewError(dto.CodeValidationError, "malformed request body"))
		return
	}
	if err := payload.Validate(); err != nil {
		_ = respond.Error(w, http.StatusBadRequest,
			dto.NewError(dto.CodeValidationError, err.Error()))
		return
	}

	entity, err := h.service.UpdateDraft(r.Context(), actor, id, payload.ToModify())
	if err != nil {
		var validationErr *workflow.ValidationError
		switch {
		case errors.As(err, &validationErr):
			_ = respond.Error(w, http.StatusUnprocessableEntity,
				dto.FromValidationErrors(validationErr.Errors))
		case errors.Is(err, repository.ErrEntityNotFound):
			_ = respond.Error(w, http.StatusNotFound,
				dto.NewError(dto.CodeNotFound, "entity not found"))
		case errors.Is(err, workflow.ErrNotDraft):
			_ = respond.Error(w, http.StatusBadRequest,
				dto.NewError(dto.CodeValidationError, "entity is not a draft"))
		case errors.Is(err, workflow.ErrEditNotPermitted):
			_ = respond.Error(w, http.StatusForbidden,
				dto.NewError(dto.CodePermissionDenied, "editing is not permitted"))
		case errors.Is(err, workflow.ErrSaveInProgress):
			_ = respond.Error(w, http.StatusConflict,
				dto.NewError(dto.CodeSaveInProgress, "a save for this entity is already in progress"))
		case errors.Is(err, repository.ErrVersionConflict):
			_ = respond.Error(w, http.StatusConflict,
				dto.NewError(dto.CodeVersionConflict, "entity was modified concurrently"))
		case errors.Is(err, repository.ErrDuplicatePhone):
			_ = respond.Error(w, http.StatusConflict,
				dto.NewError(dto.CodeDuplicatePhone, "phone number already registered"))
		case errors.Is(err, repository.ErrDuplicateEmail):
			_ = respond.Error(w, http.StatusConflict,
				dto.NewError(dto.CodeDuplicateEmail, "email already registered"))
		case errors.Is(err, repository.ErrDuplicateDocument):
			_ = respond.Error(w, http.StatusConflict,
				dto.NewError(dto.CodeDuplicateDocument, "document already registered"))
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
