package handler

import (
	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/usecase"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	fields          usecase.EvaluationFieldUsecaseInterface
	statuses        usecase.StatusUsecaseInterface
	roles           usecase.RoleUsecaseInterface
	displays        usecase.DisplaySettingUsecaseInterface
	cards           usecase.DashboardCardUsecaseInterface
	applicantFields usecase.ApplicantFieldUsecaseInterface
}

func NewSettingsHandler(
	fields usecase.EvaluationFieldUsecaseInterface,
	statuses usecase.StatusUsecaseInterface,
	roles usecase.RoleUsecaseInterface,
	displays usecase.DisplaySettingUsecaseInterface,
	cards usecase.DashboardCardUsecaseInterface,
	applicantFields usecase.ApplicantFieldUsecaseInterface,
) *SettingsHandler {
	return &SettingsHandler{
		fields:          fields,
		statuses:        statuses,
		roles:           roles,
		displays:        displays,
		cards:           cards,
		applicantFields: applicantFields,
	}
}

func (h *SettingsHandler) RegisterRoutes(r fiber.Router) {
	s := r.Group("/settings")

	s.Get("/evaluation-fields", h.ListFields)
	s.Post("/evaluation-fields", h.CreateField)
	s.Put("/evaluation-fields/:id", h.UpdateField)
	s.Patch("/evaluation-fields/:id/toggle", h.ToggleField)
	s.Delete("/evaluation-fields/:id", h.DeleteField)

	s.Get("/statuses", h.ListStatuses)
	s.Post("/statuses", h.CreateStatus)
	s.Put("/statuses/:id", h.UpdateStatus)
	s.Delete("/statuses/:id", h.DeleteStatus)

	s.Get("/roles", h.ListRoles)
	s.Post("/roles", h.CreateRole)
	s.Put("/roles/:id", h.UpdateRole)
	s.Delete("/roles/:id", h.DeleteRole)

	s.Get("/display", h.ListDisplays)
	s.Get("/display/:page", h.GetDisplay)
	s.Put("/display/:page", h.PutDisplay)

	s.Get("/dashboard-cards", h.ListCards)
	s.Post("/dashboard-cards", h.CreateCard)
	s.Put("/dashboard-cards/:id", h.UpdateCard)
	s.Delete("/dashboard-cards/:id", h.DeleteCard)

	s.Get("/applicant-fields", h.ListApplicantFields)
	s.Post("/applicant-fields", h.CreateApplicantField)
	s.Put("/applicant-fields/:id", h.UpdateApplicantField)
	s.Delete("/applicant-fields/:id", h.DeleteApplicantField)
}

func ok(c *fiber.Ctx, code int, message string, data any) error {
	return util.SuccessResponse(c, util.SuccessResponseFormat{Code: code, Message: message, Data: data})
}

// evaluation fields

func (h *SettingsHandler) ListFields(c *fiber.Ctx) error {
	out, err := h.fields.List(c.UserContext())
	if err != nil {
		return util.HandleError(c, err, "failed to list evaluation fields")
	}
	return ok(c, fiber.StatusOK, "Success get evaluation fields", out)
}

func (h *SettingsHandler) CreateField(c *fiber.Ctx) error {
	var req dto.EvaluationFieldRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid evaluation field")
	}
	out, err := h.fields.Create(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, "evaluation field")
	}
	return ok(c, fiber.StatusCreated, "Success create evaluation field", out)
}

func (h *SettingsHandler) UpdateField(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid evaluation field id")
	}
	var req dto.EvaluationFieldRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid evaluation field")
	}
	out, err := h.fields.Update(c.UserContext(), id, req)
	if err != nil {
		return util.HandleError(c, err, "evaluation field")
	}
	return ok(c, fiber.StatusOK, "Success update evaluation field", out)
}

func (h *SettingsHandler) ToggleField(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid evaluation field id")
	}
	out, err := h.fields.Toggle(c.UserContext(), id)
	if err != nil {
		return util.HandleError(c, err, "evaluation field")
	}
	return ok(c, fiber.StatusOK, "Success toggle evaluation field", out)
}

func (h *SettingsHandler) DeleteField(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid evaluation field id")
	}
	out, err := h.fields.Delete(c.UserContext(), id)
	if err != nil {
		return util.HandleError(c, err, "evaluation field")
	}
	return ok(c, fiber.StatusOK, "Success delete evaluation field", out)
}

// statuses

func (h *SettingsHandler) ListStatuses(c *fiber.Ctx) error {
	out, err := h.statuses.List(c.UserContext())
	if err != nil {
		return util.HandleError(c, err, "failed to list statuses")
	}
	return ok(c, fiber.StatusOK, "Success get statuses", out)
}

func (h *SettingsHandler) CreateStatus(c *fiber.Ctx) error {
	var req dto.StatusSettingRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid status")
	}
	out, err := h.statuses.Create(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, "status")
	}
	return ok(c, fiber.StatusCreated, "Success create status", out)
}

func (h *SettingsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid status id")
	}
	var req dto.StatusSettingRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid status")
	}
	out, err := h.statuses.Update(c.UserContext(), id, req)
	if err != nil {
		return util.HandleError(c, err, "status")
	}
	return ok(c, fiber.StatusOK, "Success update status", out)
}

func (h *SettingsHandler) DeleteStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid status id")
	}
	if err := h.statuses.Delete(c.UserContext(), id); err != nil {
		return util.HandleError(c, err, "status")
	}
	return ok(c, fiber.StatusOK, "Success delete status", nil)
}

// roles

func (h *SettingsHandler) ListRoles(c *fiber.Ctx) error {
	out, err := h.roles.List(c.UserContext())
	if err != nil {
		return util.HandleError(c, err, "failed to list roles")
	}
	return ok(c, fiber.StatusOK, "Success get roles", out)
}

func (h *SettingsHandler) CreateRole(c *fiber.Ctx) error {
	var req dto.RoleRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid role")
	}
	out, err := h.roles.Create(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, "role")
	}
	return ok(c, fiber.StatusCreated, "Success create role", out)
}

func (h *SettingsHandler) UpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid role id")
	}
	var req dto.RoleRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid role")
	}
	out, err := h.roles.Update(c.UserContext(), id, req)
	if err != nil {
		return util.HandleError(c, err, "role")
	}
	return ok(c, fiber.StatusOK, "Success update role", out)
}

func (h *SettingsHandler) DeleteRole(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid role id")
	}
	if err := h.roles.Delete(c.UserContext(), id); err != nil {
		return util.HandleError(c, err, "role")
	}
	return ok(c, fiber.StatusOK, "Success delete role", nil)
}

// display settings

func (h *SettingsHandler) ListDisplays(c *fiber.Ctx) error {
	out, err := h.displays.List(c.UserContext())
	if err != nil {
		return util.HandleError(c, err, "failed to list display settings")
	}
	return ok(c, fiber.StatusOK, "Success get display settings", out)
}

func (h *SettingsHandler) GetDisplay(c *fiber.Ctx) error {
	out, err := h.displays.Get(c.UserContext(), c.Params("page"))
	if err != nil {
		return util.HandleError(c, err, "failed to get display settings")
	}
	return ok(c, fiber.StatusOK, "Success get display settings", out)
}

func (h *SettingsHandler) PutDisplay(c *fiber.Ctx) error {
	var req dto.DisplaySettingRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid display settings")
	}
	out, err := h.displays.Put(c.UserContext(), c.Params("page"), req)
	if err != nil {
		return util.HandleError(c, err, "failed to save display settings")
	}
	return ok(c, fiber.StatusOK, "Success save display settings", out)
}

// dashboard cards

func (h *SettingsHandler) ListCards(c *fiber.Ctx) error {
	out, err := h.cards.List(c.UserContext())
	if err != nil {
		return util.HandleError(c, err, "failed to list dashboard cards")
	}
	return ok(c, fiber.StatusOK, "Success get dashboard cards", out)
}

func (h *SettingsHandler) CreateCard(c *fiber.Ctx) error {
	var req dto.DashboardCardRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid dashboard card")
	}
	out, err := h.cards.Create(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, "dashboard card")
	}
	return ok(c, fiber.StatusCreated, "Success create dashboard card", out)
}

func (h *SettingsHandler) UpdateCard(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid dashboard card id")
	}
	var req dto.DashboardCardRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid dashboard card")
	}
	out, err := h.cards.Update(c.UserContext(), id, req)
	if err != nil {
		return util.HandleError(c, err, "dashboard card")
	}
	return ok(c, fiber.StatusOK, "Success update dashboard card", out)
}

func (h *SettingsHandler) DeleteCard(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid dashboard card id")
	}
	if err := h.cards.Delete(c.UserContext(), id); err != nil {
		return util.HandleError(c, err, "dashboard card")
	}
	return ok(c, fiber.StatusOK, "Success delete dashboard card", nil)
}

// applicant fields

func (h *SettingsHandler) ListApplicantFields(c *fiber.Ctx) error {
	out, err := h.applicantFields.List(c.UserContext())
	if err != nil {
		return util.HandleError(c, err, "failed to list applicant fields")
	}
	return ok(c, fiber.StatusOK, "Success get applicant fields", out)
}

func (h *SettingsHandler) CreateApplicantField(c *fiber.Ctx) error {
	var req dto.ApplicantFieldRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid applicant field")
	}
	out, err := h.applicantFields.Create(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, "applicant field")
	}
	return ok(c, fiber.StatusCreated, "Success create applicant field", out)
}

func (h *SettingsHandler) UpdateApplicantField(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid applicant field id")
	}
	var req dto.ApplicantFieldRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid applicant field")
	}
	out, err := h.applicantFields.Update(c.UserContext(), id, req)
	if err != nil {
		return util.HandleError(c, err, "applicant field")
	}
	return ok(c, fiber.StatusOK, "Success update applicant field", out)
}

func (h *SettingsHandler) DeleteApplicantField(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid applicant field id")
	}
	if err := h.applicantFields.Delete(c.UserContext(), id); err != nil {
		return util.HandleError(c, err, "applicant field")
	}
	return ok(c, fiber.StatusOK, "Success delete applicant field", nil)
}
