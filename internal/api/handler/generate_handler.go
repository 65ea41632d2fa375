package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkworks/contentforge/internal/api/metrics"
	"github.com/inkworks/contentforge/internal/core/domain"
	"github.com/inkworks/contentforge/internal/core/ports"
)

type generateRequest struct {
	Topic  string `json:"topic"  validate:"required"`
	Style  string `json:"style"  validate:"required"`
	Length string `json:"length" validate:"omitempty,oneof=short medium long"`
}

type generateResponse struct {
	Success bool                    `json:"success"`
	Data    domain.GeneratedContent `json:"data"`
}

// GenerateHandler handles content generation requests.
type GenerateHandler struct {
	service ports.GenerationService
}

func NewGenerateHandler(service ports.GenerationService) *GenerateHandler {
	return &GenerateHandler{service: service}
}

// Generate drafts a blog post for the given topic and style.
//
// @Summary      Generate post content
// @Tags         generate
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateRequest  true  "Generation parameters"
// @Success      200   {object}  generateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /generate [post]
func (h *GenerateHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Please provide topic and style")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	content, err := h.service.Generate(c.Request().Context(), ports.GenerateInput{
		Topic:  req.Topic,
		Style:  req.Style,
		Length: req.Length,
	})
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.GenerationRequestsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.GenerationRequestsTotal.WithLabelValues("ok").Inc()

	return c.JSON(http.StatusOK, generateResponse{Success: true, Data: *content})
}
