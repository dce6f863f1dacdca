package ping_get

import (
	"net/http"

	"tms/internal/dto"
	"tms/internal/handlers/rest/respond"
	"tms/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := respond.JSON(w, http.StatusOK, dto.PingResponse{Message: "pong"})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
