package hrevent

import (
	"net/http"
	"strconv"

	"github.com/Pavan812100/jml-hybrid/internal/shared/apperror"
	"github.com/Pavan812100/jml-hybrid/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("hrevent.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hrevent.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("hr event request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Process(c *gin.Context) {
	h.logger.Debug("http process hr event")

	var req HrEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http process hr event bind failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Process(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) List(c *gin.Context) {
	// limit <= 0 jatuh ke default dari config (di service)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	h.logger.Debug("http list hr events", zap.Int("limit", limit))

	resp, err := h.service.List(c.Request.Context(), limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
