package handler

import (
	"time"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/middleware"
	"github.com/fadilmartias/recruit-admin/internal/usecase"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/gofiber/fiber/v2"
)

type EvaluationHandler struct {
	uc usecase.EvaluationUsecaseInterface
}

func NewEvaluationHandler(uc usecase.EvaluationUsecaseInterface) *EvaluationHandler {
	return &EvaluationHandler{uc: uc}
}

func (h *EvaluationHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/evaluations/preview", h.Preview)
	r.Get("/evaluations/:id", h.Get)
	r.Post("/applicants/:id/evaluations", middleware.RateLimiter(5, 10*time.Second), h.Submit)
	r.Get("/applicants/:id/evaluations", h.ListByApplicant)
}

func (h *EvaluationHandler) Preview(c *fiber.Ctx) error {
	var req dto.PreviewRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid ratings")
	}
	res, err := h.uc.Preview(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, "failed to preview score")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success preview score",
		Data:    dto.NewScoreDTO(res),
	})
}

func (h *EvaluationHandler) Submit(c *fiber.Ctx) error {
	applicantID, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid applicant id")
	}
	var req dto.SubmitEvaluationRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid evaluation")
	}
	out, err := h.uc.Submit(c.UserContext(), applicantID, middleware.ActorID(c), req)
	if err != nil {
		return util.HandleError(c, err, "failed to submit evaluation")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success submit evaluation",
		Data:    out,
	})
}

func (h *EvaluationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid evaluation id")
	}
	e, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return util.HandleError(c, err, "evaluation")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get evaluation",
		Data:    e,
	})
}

func (h *EvaluationHandler) ListByApplicant(c *fiber.Ctx) error {
	applicantID, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid applicant id")
	}
	rows, err := h.uc.ListByApplicant(c.UserContext(), applicantID)
	if err != nil {
		return util.HandleError(c, err, "applicant")
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get evaluations",
		Data:    rows,
	})
}
