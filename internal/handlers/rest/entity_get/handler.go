package entity_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"tms/internal/dto"
	"tms/internal/entities"
	"tms/internal/handlers/rest/respond"
	"tms/internal/repository"
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
	vars := mux.Vars(r)
	kind := entities.EntityKind(vars["kind"])
	id := vars["id"]

	entity, err := h.service.Get(r.Context(), id, kind)
	if err != nil {
		switch {
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
