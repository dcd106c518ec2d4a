package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/trainmeet/internal/delivery/http/middleware"
	"github.com/trainmeet/internal/pkg/errors"
	"github.com/trainmeet/internal/pkg/utils"
	"github.com/trainmeet/internal/pkg/validator"
	"github.com/trainmeet/internal/usecase"
	"github.com/trainmeet/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - JSON API для поиска маршрутов
type RouteHandler struct {
	plannerUC *usecase.RoutePlannerUseCase
	logger    *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(plannerUC *usecase.RoutePlannerUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		plannerUC: plannerUC,
		logger:    logger,
	}
}

// PlanRoutes godoc
// @Summary Plan rail routes to a common destination
// @Description Geocodes every departure place and the destination, then asks the Directions API for the rail itinerary arriving by the given time. Places without a route are returned with found=false.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.PlanRequest true "Departure places separated by ';', destination and arrival time (DD.MM.YYYY-HH:MM)"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlanResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *RouteHandler) PlanRoutes(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.plannerUC.Plan(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	requestID := middleware.GetRequestID(c)
	result.RequestID = requestID

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     len(result.Routes),
		Found:     result.FoundCount(),
		RequestID: requestID,
		TimeMSec:  float64(time.Since(start).Microseconds()) / 1000,
	})
}
