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

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo  repository.TaskRepositoryInterface
	roleRepo  repository.RoleRepositoryInterface
	validator *validator.Validate
}

// NewTaskService creates a new task service
func NewTaskService(taskRepo repository.TaskRepositoryInterface, roleRepo repository.RoleRepositoryInterface) *TaskService {
	return &TaskService{
		taskRepo:  taskRepo,
		roleRepo:  roleRepo,
		validator: validator.New(),
	}
}

// CreateTaskRequest represents the payload for creating a task
type CreateTaskRequest struct {
	Name                             string             `json:"name" validate:"required,min=1,max=100"`
	NameAbbrev                       string             `json:"nameAbbrev" validate:"max=20"`
	ParticipantsLimit                int                `json:"participantsLimit" validate:"required,min=1"`
	Permanent                        bool               `json:"permanent"`
	AllowedRoleNames                 []string           `json:"allowedRoleNames" validate:"required,min=1"`
	SupervisorRoleName               string             `json:"supervisorRoleName" validate:"required"`
	DaysOfWeek                       []models.DayOfWeek `json:"daysOfWeek" validate:"required,min=1"`
	SortOrder                        int64              `json:"sortOrder" validate:"gte=0"`
	VisibleInObstacleFormForUserRole bool               `json:"visibleInObstacleFormForUserRole"`
}

// UpdateTaskRequest represents the payload for updating a task
type UpdateTaskRequest struct {
	Name                             *string            `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	NameAbbrev                       *string            `json:"nameAbbrev,omitempty" validate:"omitempty,max=20"`
	ParticipantsLimit                *int               `json:"participantsLimit,omitempty" validate:"omitempty,min=1"`
	Permanent                        *bool              `json:"permanent,omitempty"`
	AllowedRoleNames                 []string           `json:"allowedRoleNames,omitempty"`
	SupervisorRoleName               *string            `json:"supervisorRoleName,omitempty"`
	DaysOfWeek                       []models.DayOfWeek `json:"daysOfWeek,omitempty"`
	SortOrder                        *int64             `json:"sortOrder,omitempty" validate:"omitempty,gte=0"`
	VisibleInObstacleFormForUserRole *bool              `json:"visibleInObstacleFormForUserRole,omitempty"`
}

// CreateTask creates a new task. The supervisor role is resolved among
// SUPERVISOR roles and is always included in the allowed set, so supervisors
// can stand in for the tasks they oversee.
func (s *TaskService) CreateTask(req *CreateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := validateDaysOfWeek(req.DaysOfWeek); err != nil {
		return nil, err
	}

	supervisor, err := s.roleRepo.GetByNameAndType(req.SupervisorRoleName, models.RoleTypeSupervisor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("supervisor role")
		}
		return nil, err
	}

	allowed, err := s.resolveAllowedRoles(req.AllowedRoleNames, supervisor)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:                             req.Name,
		NameAbbrev:                       req.NameAbbrev,
		ParticipantsLimit:                req.ParticipantsLimit,
		Permanent:                        req.Permanent,
		SupervisorRoleID:                 supervisor.ID,
		SupervisorRole:                   *supervisor,
		AllowedRoles:                     allowed,
		DaysOfWeek:                       normalizeDaysOfWeek(req.DaysOfWeek),
		SortOrder:                        req.SortOrder,
		VisibleInObstacleFormForUserRole: req.VisibleInObstacleFormForUserRole,
	}
	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

// GetTask retrieves a task by ID
func (s *TaskService) GetTask(id uuid.UUID) (*TaskResponse, error) {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	resp := toTaskResponse(task)
	return &resp, nil
}

// ListTasks retrieves all tasks ordered by sort order
func (s *TaskService) ListTasks() ([]TaskResponse, error) {
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

// ListTasksBySupervisorRole retrieves the tasks supervised by the named role
func (s *TaskService) ListTasksBySupervisorRole(roleName string) ([]TaskResponse, error) {
	if _, err := s.roleRepo.GetByName(roleName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, err
	}
	tasks, err := s.taskRepo.GetBySupervisorRoleName(roleName)
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

// ListTasksVisibleInObstacleForm retrieves tasks plain users may cite in
// obstacle requests
func (s *TaskService) ListTasksVisibleInObstacleForm() ([]TaskResponse, error) {
	tasks, err := s.taskRepo.GetVisibleInObstacleForm()
	if err != nil {
		return nil, err
	}
	return toTaskResponses(tasks), nil
}

// UpdateTask updates a task
func (s *TaskService) UpdateTask(id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.NameAbbrev != nil {
		task.NameAbbrev = *req.NameAbbrev
	}
	if req.ParticipantsLimit != nil {
		task.ParticipantsLimit = *req.ParticipantsLimit
	}
	if req.Permanent != nil {
		task.Permanent = *req.Permanent
	}
	if req.SupervisorRoleName != nil {
		supervisor, err := s.roleRepo.GetByNameAndType(*req.SupervisorRoleName, models.RoleTypeSupervisor)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewNotFoundError("supervisor role")
			}
			return nil, err
		}
		task.SupervisorRoleID = supervisor.ID
		task.SupervisorRole = *supervisor
	}
	if req.AllowedRoleNames != nil {
		allowed, err := s.resolveAllowedRoles(req.AllowedRoleNames, &task.SupervisorRole)
		if err != nil {
			return nil, err
		}
		task.AllowedRoles = allowed
	}
	if req.DaysOfWeek != nil {
		if err := validateDaysOfWeek(req.DaysOfWeek); err != nil {
			return nil, err
		}
		task.DaysOfWeek = normalizeDaysOfWeek(req.DaysOfWeek)
	}
	if req.SortOrder != nil {
		task.SortOrder = *req.SortOrder
	}
	if req.VisibleInObstacleFormForUserRole != nil {
		task.VisibleInObstacleFormForUserRole = *req.VisibleInObstacleFormForUserRole
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, err
	}

	resp := toTaskResponse(task)
	return &resp, nil
}

// DeleteTask deletes a task. The delete is refused while schedules, obstacles
// or conflicts still reference the task.
func (s *TaskService) DeleteTask(id uuid.UUID) error {
	task, err := s.taskRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return err
	}

	scheduleRefs, err := s.taskRepo.CountScheduleReferences(task.ID)
	if err != nil {
		return err
	}
	if scheduleRefs > 0 {
		return apperrors.NewReferencedError("task", "schedules")
	}

	obstacleRefs, err := s.taskRepo.CountObstacleReferences(task.ID)
	if err != nil {
		return err
	}
	if obstacleRefs > 0 {
		return apperrors.NewReferencedError("task", "obstacles")
	}

	conflictRefs, err := s.taskRepo.CountConflictReferences(task.ID)
	if err != nil {
		return err
	}
	if conflictRefs > 0 {
		return apperrors.NewReferencedError("task", "conflicts")
	}

	return s.taskRepo.Delete(task.ID)
}

// resolveAllowedRoles looks up the named roles and guarantees the supervisor
// role is part of the result
func (s *TaskService) resolveAllowedRoles(names []string, supervisor *models.Role) ([]models.Role, error) {
	roles, err := s.roleRepo.GetByNames(names)
	if err != nil {
		return nil, err
	}
	if len(roles) != len(names) {
		return nil, apperrors.NewValidationError("allowedRoleNames", "one or more role names do not exist")
	}
	for _, r := range roles {
		if r.ID == supervisor.ID {
			return roles, nil
		}
	}
	return append(roles, *supervisor), nil
}

// validateDaysOfWeek rejects unknown day identifiers and duplicates
func validateDaysOfWeek(days []models.DayOfWeek) error {
	seen := make(map[models.DayOfWeek]bool, len(days))
	for _, d := range days {
		if !d.IsValid() {
			return apperrors.NewValidationError("daysOfWeek", "unknown day of week: "+string(d))
		}
		if seen[d] {
			return apperrors.NewValidationError("daysOfWeek", "duplicate day of week: "+string(d))
		}
		seen[d] = true
	}
	return nil
}

// normalizeDaysOfWeek returns the days in canonical Monday-to-Sunday order
func normalizeDaysOfWeek(days []models.DayOfWeek) []models.DayOfWeek {
	present := make(map[models.DayOfWeek]bool, len(days))
	for _, d := range days {
		present[d] = true
	}
	out := make([]models.DayOfWeek, 0, len(days))
	for _, d := range models.AllDaysOfWeek {
		if present[d] {
			out = append(out, d)
		}
	}
	return out
}
