package handler

import (
	"bytes"
	"embed"
	stderrors "errors"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/trainmeet/internal/config"
	"github.com/trainmeet/internal/delivery/http/middleware"
	"github.com/trainmeet/internal/pkg/errors"
	"github.com/trainmeet/internal/pkg/timestamp"
	"github.com/trainmeet/internal/pkg/validator"
	"github.com/trainmeet/internal/usecase"
	"github.com/trainmeet/internal/usecase/dto"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageTitle   = "TrainMeet"
	noRouteText = "No route found."
)

// PageData - данные для шаблона страницы
type PageData struct {
	Title           string
	Form            dto.PlanRequest
	MaxArrivalChars int
	Warning         string
	NoRouteText     string
	Routes          []dto.RouteResponse
}

// PageHandler - хендлер HTML формы и страницы результатов
type PageHandler struct {
	plannerUC *usecase.RoutePlannerUseCase
	defaults  config.FormConfig
	templates *template.Template
	logger    *zap.Logger
}

// NewPageHandler - создание нового PageHandler
func NewPageHandler(plannerUC *usecase.RoutePlannerUseCase, defaults config.FormConfig, logger *zap.Logger) (*PageHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		plannerUC: plannerUC,
		defaults:  defaults,
		templates: tmpl,
		logger:    logger,
	}, nil
}

// Index renders the empty form filled with the configured defaults.
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, h.newPage(dto.PlanRequest{
		StartLocations: h.defaults.StartLocations,
		Destination:    h.defaults.Destination,
		ArrivalTime:    h.defaults.ArrivalTime,
	}))
}

// Submit plans the routes for the posted form. Invalid input of any kind
// renders the same generic warning above the form.
func (h *PageHandler) Submit(c *fiber.Ctx) error {
	var req dto.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		page := h.newPage(req)
		page.Warning = errors.ErrInvalidInput.Message
		return h.render(c, fiber.StatusBadRequest, page)
	}

	page := h.newPage(req)

	if err := validator.Validate(&req); err != nil {
		page.Warning = errors.ErrInvalidInput.Message
		return h.render(c, fiber.StatusBadRequest, page)
	}

	result, err := h.plannerUC.Plan(c.UserContext(), req)
	if err != nil {
		if !stderrors.Is(err, errors.ErrInvalidInput) {
			h.logger.Error("Route planning failed",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Error(err))
			return err
		}
		page.Warning = errors.ErrInvalidInput.Message
		return h.render(c, fiber.StatusBadRequest, page)
	}

	page.Routes = result.Routes
	return h.render(c, fiber.StatusOK, page)
}

func (h *PageHandler) newPage(form dto.PlanRequest) PageData {
	return PageData{
		Title:           pageTitle,
		Form:            form,
		MaxArrivalChars: timestamp.MaxLength,
		NoRouteText:     noRouteText,
	}
}

// render executes the page into a buffer so a failing template never leaves a
// half written page behind.
func (h *PageHandler) render(c *fiber.Ctx, status int, data PageData) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "index.html", data); err != nil {
		h.logger.Error("Failed to render page",
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err))
		return err
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}
