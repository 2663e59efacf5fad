package handler

import (
	"time"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/usecase"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/gofiber/fiber/v2"
)

type ApplicantHandler struct {
	uc  usecase.ApplicantUsecaseInterface
	now func() time.Time
}

func NewApplicantHandler(uc usecase.ApplicantUsecaseInterface) *ApplicantHandler {
	return &ApplicantHandler{uc: uc, now: time.Now}
}

func (h *ApplicantHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/applicants", h.List)
	r.Get("/applicants/past", h.Past)
	r.Post("/applicants", h.Register)
	r.Get("/applicants/:id", h.Get)
	r.Put("/applicants/:id", h.Update)
	r.Patch("/applicants/:id/status", h.UpdateStatus)
	r.Put("/applicants/:id/interview", h.Schedule)
	r.Delete("/applicants/:id", h.Delete)
	r.Get("/interviews", h.Interviews)
}

func filterFromQuery(c *fiber.Ctx) dto.ApplicantFilter {
	return dto.ApplicantFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Position: c.Query("position"),
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 0),
	}
}

func (h *ApplicantHandler) List(c *fiber.Ctx) error {
	rows, page, err := h.uc.List(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return util.HandleError(c, err, "failed to list applicants")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get applicants",
		Data:       rows,
		Pagination: page,
	})
}

func (h *ApplicantHandler) Past(c *fiber.Ctx) error {
	rows, err := h.uc.Past(c.UserContext(), filterFromQuery(c))
	if err != nil {
		return util.HandleError(c, err, "failed to list past applicants")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get past applicants",
		Data:    rows,
	})
}

func (h *ApplicantHandler) Register(c *fiber.Ctx) error {
	var req dto.CreateApplicantRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid applicant")
	}
	a, err := h.uc.Register(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, "failed to register applicant")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success register applicant",
		Data:    a,
	})
}

func (h *ApplicantHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid applicant id")
	}
	a, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return util.HandleError(c, err, "applicant")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get applicant",
		Data:    a,
	})
}

func (h *ApplicantHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid applicant id")
	}
	var req dto.UpdateApplicantRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid applicant")
	}
	a, err := h.uc.Update(c.UserContext(), id, req)
	if err != nil {
		return util.HandleError(c, err, "applicant")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update applicant",
		Data:    a,
	})
}

func (h *ApplicantHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid applicant id")
	}
	var req dto.UpdateStatusRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid status")
	}
	a, err := h.uc.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return util.HandleError(c, err, "applicant")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update applicant status",
		Data:    a,
	})
}

func (h *ApplicantHandler) Schedule(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid applicant id")
	}
	var req dto.ScheduleInterviewRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid interview")
	}
	a, err := h.uc.Schedule(c.UserContext(), id, req.InterviewDate)
	if err != nil {
		return util.HandleError(c, err, "applicant")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success schedule interview",
		Data:    a,
	})
}

func (h *ApplicantHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid applicant id")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return util.HandleError(c, err, "applicant")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete applicant",
	})
}

func (h *ApplicantHandler) Interviews(c *fiber.Ctx) error {
	out, err := h.uc.Interviews(c.UserContext(), h.now())
	if err != nil {
		return util.HandleError(c, err, "failed to list interviews")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get interviews",
		Data:    out,
	})
}
