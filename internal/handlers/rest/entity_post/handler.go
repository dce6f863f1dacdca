package entity_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tms/internal/dto"
	"tms/internal/entities"
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
	kind := entities.EntityKind(mux.Vars(r)["kind"])

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

	entity, err := h.service.Create(r.Context(), actor, kind, payload.ToModify(), payload.Submit)
	if err != nil {
		var validationErr *workflow.ValidationError
		switch {
		case errors.As(err, &validationErr):
			_ = respond.Error(w, http.StatusUnprocessableEntity,
				dto.FromValidationErrors(validationErr.Errors))
		case errors.Is(err, workflow.ErrInvalidKind):
			_ = respond.Error(w, http.StatusBadRequest,
				dto.NewError(dto.CodeValidationError, "unknown entity kind"))
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

	err = respond.JSON(w, http.StatusCreated, dto.FromDomain(entity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
