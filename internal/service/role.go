package service

import (
	"errors"

	"community-scheduler-backend/internal/database/models"
	apperrors "community-scheduler-backend/internal/errors"
	"community-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleService handles business logic for roles
type RoleService struct {
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo repository.RoleRepositoryInterface) *RoleService {
	return &RoleService{
		roleRepo:  roleRepo,
		validator: validator.New(),
	}
}

// CreateRoleRequest represents the payload for creating a role
type CreateRoleRequest struct {
	Name                         string          `json:"name" validate:"required,min=1,max=100"`
	Type                         models.RoleType `json:"type" validate:"required"`
	WeeklyScheduleCreatorDefault bool            `json:"weeklyScheduleCreatorDefault"`
	AreTasksVisibleInPrints      bool            `json:"areTasksVisibleInPrints"`
	AssignedTasksGroupName       string          `json:"assignedTasksGroupName" validate:"max=100"`
}

// UpdateRoleRequest represents the payload for updating a role
type UpdateRoleRequest struct {
	Name                         *string          `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Type                         *models.RoleType `json:"type,omitempty"`
	WeeklyScheduleCreatorDefault *bool            `json:"weeklyScheduleCreatorDefault,omitempty"`
	AreTasksVisibleInPrints      *bool            `json:"areTasksVisibleInPrints,omitempty"`
	AssignedTasksGroupName       *string          `json:"assignedTasksGroupName,omitempty" validate:"omitempty,max=100"`
}

// RoleSortOrderUpdate is one entry of a bulk sort order update
type RoleSortOrderUpdate struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	SortOrder int64     `json:"sortOrder" validate:"gte=0"`
}

// RoleVisibilityUpdate is one entry of a bulk print visibility update
type RoleVisibilityUpdate struct {
	ID                      uuid.UUID `json:"id" validate:"required"`
	AreTasksVisibleInPrints bool      `json:"areTasksVisibleInPrints"`
}

// CreateRole creates a new role. The sort order is assigned automatically:
// one past the highest existing order within the role's type.
func (s *RoleService) CreateRole(req *CreateRoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "unknown role type")
	}

	exists, err := s.roleRepo.ExistsByName(req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrRoleExists
	}

	maxOrder, err := s.roleRepo.MaxSortOrderForType(req.Type)
	if err != nil {
		return nil, err
	}

	role := &models.Role{
		Name:                         req.Name,
		Type:                         req.Type,
		SortOrder:                    maxOrder + 1,
		WeeklyScheduleCreatorDefault: req.WeeklyScheduleCreatorDefault,
		AreTasksVisibleInPrints:      req.AreTasksVisibleInPrints,
		AssignedTasksGroupName:       req.AssignedTasksGroupName,
	}
	if err := s.roleRepo.Create(role); err != nil {
		return nil, err
	}

	resp := toRoleResponse(role)
	return &resp, nil
}

// GetRole retrieves a role by ID
func (s *RoleService) GetRole(id uuid.UUID) (*RoleResponse, error) {
	role, err := s.roleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}
	resp := toRoleResponse(role)
	return &resp, nil
}

// GetRoleByName retrieves a role by its unique name
func (s *RoleService) GetRoleByName(name string) (*RoleResponse, error) {
	role, err := s.roleRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}
	resp := toRoleResponse(role)
	return &resp, nil
}

// ListRoles retrieves all roles, optionally filtered by type, ordered by
// sort order
func (s *RoleService) ListRoles(roleType *models.RoleType) ([]RoleResponse, error) {
	var (
		roles []models.Role
		err   error
	)
	if roleType != nil {
		if !roleType.IsValid() {
			return nil, apperrors.NewValidationError("type", "unknown role type")
		}
		roles, err = s.roleRepo.GetByType(*roleType)
	} else {
		roles, err = s.roleRepo.GetAll()
	}
	if err != nil {
		return nil, err
	}
	return toRoleResponses(roles), nil
}

// UpdateRole updates a role. SYSTEM roles accept only display metadata
// changes; their name and type are fixed.
func (s *RoleService) UpdateRole(id uuid.UUID, req *UpdateRoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	role, err := s.roleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}

	if role.IsSystem() && (req.Name != nil || req.Type != nil) {
		return nil, apperrors.ErrSystemRoleImmutable
	}

	if req.Name != nil && *req.Name != role.Name {
		exists, err := s.roleRepo.ExistsByName(*req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrRoleExists
		}
		role.Name = *req.Name
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, apperrors.NewValidationError("type", "unknown role type")
		}
		role.Type = *req.Type
	}
	if req.WeeklyScheduleCreatorDefault != nil {
		role.WeeklyScheduleCreatorDefault = *req.WeeklyScheduleCreatorDefault
	}
	if req.AreTasksVisibleInPrints != nil {
		role.AreTasksVisibleInPrints = *req.AreTasksVisibleInPrints
	}
	if req.AssignedTasksGroupName != nil {
		role.AssignedTasksGroupName = *req.AssignedTasksGroupName
	}

	if err := s.roleRepo.Update(role); err != nil {
		return nil, err
	}

	resp := toRoleResponse(role)
	return &resp, nil
}

// UpdateSortOrders applies a bulk sort order update to roles
func (s *RoleService) UpdateSortOrders(updates []RoleSortOrderUpdate) error {
	for i := range updates {
		if err := s.validator.Struct(&updates[i]); err != nil {
			return apperrors.NewValidationError("", err.Error())
		}
	}
	for _, upd := range updates {
		role, err := s.roleRepo.GetByID(upd.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRoleNotFound
			}
			return err
		}
		role.SortOrder = upd.SortOrder
		if err := s.roleRepo.Update(role); err != nil {
			return err
		}
	}
	return nil
}

// UpdateVisibilities applies a bulk print visibility update to roles
func (s *RoleService) UpdateVisibilities(updates []RoleVisibilityUpdate) error {
	for _, upd := range updates {
		role, err := s.roleRepo.GetByID(upd.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrRoleNotFound
			}
			return err
		}
		role.AreTasksVisibleInPrints = upd.AreTasksVisibleInPrints
		if err := s.roleRepo.Update(role); err != nil {
			return err
		}
	}
	return nil
}

// DeleteRole deletes a role. SYSTEM roles are never deletable; other roles
// are refused while any task or user still references them.
func (s *RoleService) DeleteRole(id uuid.UUID) error {
	role, err := s.roleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return err
	}

	if role.IsSystem() {
		return apperrors.ErrSystemRoleImmutable
	}

	taskRefs, err := s.roleRepo.CountTaskReferences(role.ID)
	if err != nil {
		return err
	}
	if taskRefs > 0 {
		return apperrors.NewReferencedError("role", "tasks")
	}

	userRefs, err := s.roleRepo.CountUserReferences(role.ID)
	if err != nil {
		return err
	}
	if userRefs > 0 {
		return apperrors.NewReferencedError("role", "users")
	}

	return s.roleRepo.Delete(role.ID)
}
