package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/repository"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

type RoleUsecaseInterface interface {
	List(ctx context.Context) ([]model.Role, error)
	Create(ctx context.Context, req dto.RoleRequest) (*model.Role, error)
	Update(ctx context.Context, id uuid.UUID, req dto.RoleRequest) (*model.Role, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoleUsecase struct {
	roles repository.RoleRepositoryInterface
	users repository.UserRepositoryInterface
}

func NewRoleUsecase(roles repository.RoleRepositoryInterface, users repository.UserRepositoryInterface) *RoleUsecase {
	return &RoleUsecase{roles: roles, users: users}
}

func (uc *RoleUsecase) List(ctx context.Context) ([]model.Role, error) {
	return uc.roles.List(ctx)
}

func (uc *RoleUsecase) Create(ctx context.Context, req dto.RoleRequest) (*model.Role, error) {
	r := &model.Role{
		RoleKey:  settingsKey(req.RoleKey, req.RoleName, "role"),
		IsActive: true,
	}
	if err := applyRoleRequest(r, req); err != nil {
		return nil, err
	}
	if err := uc.roles.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update never renames the key; users reference roles by it.
func (uc *RoleUsecase) Update(ctx context.Context, id uuid.UUID, req dto.RoleRequest) (*model.Role, error) {
	r, err := uc.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyRoleRequest(r, req); err != nil {
		return nil, err
	}
	if err := uc.roles.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *RoleUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	r, err := uc.roles.FindByID(ctx, id)
	if err != nil {
		return err
	}
	users, err := uc.users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Role == r.RoleKey {
			return util.NewFormError(
				fmt.Sprintf("role %s is still assigned to users", r.RoleKey),
				map[string]string{"role_key": "in_use"},
			)
		}
	}
	return uc.roles.Delete(ctx, id)
}

func applyRoleRequest(r *model.Role, req dto.RoleRequest) error {
	if err := req.Permissions.Validate(); err != nil {
		return invalidSettings("permissions", err)
	}
	r.RoleName = strings.TrimSpace(req.RoleName)
	r.Description = req.Description
	r.Permissions = datatypes.NewJSONType(req.Permissions.Normalize())
	if req.IsActive != nil {
		r.IsActive = *req.IsActive
	}
	return nil
}

type UserUsecaseInterface interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserUsecase struct {
	users repository.UserRepositoryInterface
	roles repository.RoleRepositoryInterface
	log   *zap.Logger
	cost  int
}

func NewUserUsecase(users repository.UserRepositoryInterface, roles repository.RoleRepositoryInterface, log *zap.Logger) *UserUsecase {
	return &UserUsecase{users: users, roles: roles, log: log, cost: bcrypt.DefaultCost}
}

func (uc *UserUsecase) List(ctx context.Context) ([]model.User, error) {
	return uc.users.List(ctx)
}

func (uc *UserUsecase) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return uc.users.FindByID(ctx, id)
}

func (uc *UserUsecase) Create(ctx context.Context, req dto.CreateUserRequest) (*model.User, error) {
	if err := uc.checkRole(ctx, req.Role); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:         req.Role,
		PasswordHash: string(hash),
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.log.Info("user created", zap.String("user_id", u.ID.String()), zap.String("role", u.Role))
	return u, nil
}

func (uc *UserUsecase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateUserRequest) (*model.User, error) {
	u, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		u.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Role != nil && *req.Role != u.Role {
		if err := uc.checkRole(ctx, *req.Role); err != nil {
			return nil, err
		}
		u.Role = *req.Role
	}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), uc.cost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *UserUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.users.Delete(ctx, id)
}

func (uc *UserUsecase) checkRole(ctx context.Context, key string) error {
	_, err := uc.roles.FindByKey(ctx, key)
	if errors.Is(err, util.ErrNotFound) {
		return util.NewFormError(fmt.Sprintf("unknown role %q", key), map[string]string{"role": "exists"})
	}
	return err
}
