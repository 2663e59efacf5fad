package handler

import (
	"github.com/fadilmartias/recruit-admin/internal/usecase"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	uc usecase.ReportUsecaseInterface
}

func NewReportHandler(uc usecase.ReportUsecaseInterface) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func (h *ReportHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/reports/summary", h.Summary)
	r.Get("/dashboard", h.Dashboard)
}

func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.UserContext())
	if err != nil {
		return util.HandleError(c, err, "failed to build summary")
	}
	return ok(c, fiber.StatusOK, "Success get summary", out)
}

func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return util.HandleError(c, err, "failed to build dashboard")
	}
	return ok(c, fiber.StatusOK, "Success get dashboard", out)
}
