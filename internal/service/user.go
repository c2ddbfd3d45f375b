package service

import (
	"errors"

	"community-scheduler-backend/internal/database/models"
	apperrors "community-scheduler-backend/internal/errors"
	"community-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	userRepo  repository.UserRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, roleRepo repository.RoleRepositoryInterface) *UserService {
	return &UserService{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		validator: validator.New(),
	}
}

// CreateUserRequest represents the payload for creating a user
type CreateUserRequest struct {
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"omitempty,min=8,max=72"`
	Name      string   `json:"name" validate:"required,min=1,max=100"`
	Surname   string   `json:"surname" validate:"required,min=1,max=100"`
	EntryDate string   `json:"entryDate" validate:"omitempty"`
	RoleNames []string `json:"roleNames"`
}

// UpdateUserRequest represents the payload for updating a user
type UpdateUserRequest struct {
	Email     *string  `json:"email,omitempty" validate:"omitempty,email"`
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Surname   *string  `json:"surname,omitempty" validate:"omitempty,min=1,max=100"`
	EntryDate *string  `json:"entryDate,omitempty"`
	RoleNames []string `json:"roleNames,omitempty"`
	Enabled   *bool    `json:"enabled,omitempty"`
}

// CreateUser creates a new user with the given roles. A provided password is
// bcrypt-hashed and marks the account as LOCAL; without one the account can
// only sign in through an external provider.
func (s *UserService) CreateUser(req *CreateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUserExists
	}

	roles, err := s.resolveRoles(req.RoleNames)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Surname:  req.Surname,
		Provider: models.AuthProviderGoogle,
		Enabled:  true,
		Roles:    roles,
	}
	if req.EntryDate != "" {
		entryDate, err := parseISODate("entryDate", req.EntryDate)
		if err != nil {
			return nil, err
		}
		user.EntryDate = entryDate
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
		user.Provider = models.AuthProviderLocal
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// GetUserByEmail retrieves a user by email
func (s *UserService) GetUserByEmail(email string) (*UserResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ListUsers retrieves all users ordered by surname
func (s *UserService) ListUsers() ([]UserResponse, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out, nil
}

// UpdateUser updates a user's profile, roles or enabled flag
func (s *UserService) UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrUserExists
		}
		user.Email = *req.Email
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Surname != nil {
		user.Surname = *req.Surname
	}
	if req.EntryDate != nil {
		entryDate, err := parseISODate("entryDate", *req.EntryDate)
		if err != nil {
			return nil, err
		}
		user.EntryDate = entryDate
	}
	if req.RoleNames != nil {
		roles, err := s.resolveRoles(req.RoleNames)
		if err != nil {
			return nil, err
		}
		user.Roles = roles
	}
	if req.Enabled != nil {
		user.Enabled = *req.Enabled
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// DeleteUser deletes a user
func (s *UserService) DeleteUser(id uuid.UUID) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}
	return s.userRepo.Delete(id)
}

func (s *UserService) resolveRoles(names []string) ([]models.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	roles, err := s.roleRepo.GetByNames(names)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(names) {
		return nil, apperrors.NewValidationError("roleNames", "one or more role names do not exist")
	}
	return roles, nil
}
