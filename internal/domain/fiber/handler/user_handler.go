package handler

import (
	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/usecase"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	uc usecase.UserUsecaseInterface
}

func NewUserHandler(uc usecase.UserUsecaseInterface) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/users", h.List)
	r.Post("/users", h.Create)
	r.Get("/users/:id", h.Get)
	r.Put("/users/:id", h.Update)
	r.Delete("/users/:id", h.Delete)
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return util.HandleError(c, err, "failed to list users")
	}
	return ok(c, fiber.StatusOK, "Success get users", out)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid user id")
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return util.HandleError(c, err, "user")
	}
	return ok(c, fiber.StatusOK, "Success get user", out)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid user")
	}
	out, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return util.HandleError(c, err, "user")
	}
	return ok(c, fiber.StatusCreated, "Success create user", out)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid user id")
	}
	var req dto.UpdateUserRequest
	if err := util.ParseBody(c, &req); err != nil {
		return util.HandleError(c, err, "invalid user")
	}
	out, err := h.uc.Update(c.UserContext(), id, req)
	if err != nil {
		return util.HandleError(c, err, "user")
	}
	return ok(c, fiber.StatusOK, "Success update user", out)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return util.HandleError(c, err, "invalid user id")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return util.HandleError(c, err, "user")
	}
	return ok(c, fiber.StatusOK, "Success delete user", nil)
}
