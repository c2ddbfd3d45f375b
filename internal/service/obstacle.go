package service

import (
	"errors"
	"time"

	"community-scheduler-backend/internal/database/models"
	apperrors "community-scheduler-backend/internal/errors"
	"community-scheduler-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObstacleService handles the obstacle request lifecycle
type ObstacleService struct {
	obstacleRepo repository.ObstacleRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	taskRepo     repository.TaskRepositoryInterface
	scheduleRepo repository.ScheduleRepositoryInterface
	validator    *validator.Validate
	now          func() time.Time
}

// NewObstacleService creates a new obstacle service
func NewObstacleService(
	obstacleRepo repository.ObstacleRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	scheduleRepo repository.ScheduleRepositoryInterface,
) *ObstacleService {
	return &ObstacleService{
		obstacleRepo: obstacleRepo,
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		scheduleRepo: scheduleRepo,
		validator:    validator.New(),
		now:          time.Now,
	}
}

// CreateObstacleRequest represents the payload for submitting an obstacle
type CreateObstacleRequest struct {
	UserID               uuid.UUID   `json:"userId" validate:"required"`
	TaskIDs              []uuid.UUID `json:"taskIds" validate:"required,min=1"`
	FromDate             string      `json:"fromDate" validate:"required"`
	ToDate               string      `json:"toDate" validate:"required"`
	ApplicantDescription string      `json:"applicantDescription" validate:"max=2000"`
}

// PatchObstacleRequest represents a supervisor's decision on an obstacle
type PatchObstacleRequest struct {
	Status          models.ObstacleStatus `json:"status" validate:"required"`
	RecipientAnswer string                `json:"recipientAnswer" validate:"max=2000"`
}

// ObstacleCountResponse reports how many obstacles sit in a status
type ObstacleCountResponse struct {
	Status models.ObstacleStatus `json:"status"`
	Count  int64                 `json:"count"`
}

// CreateObstacle submits a new obstacle request. It always enters the
// AWAITING state regardless of the payload. The applicant is the caller;
// filing on behalf of another user takes a supervisor.
func (s *ObstacleService) CreateObstacle(callerID uuid.UUID, req *CreateObstacleRequest) (*ObstacleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	fromDate, err := parseISODate("fromDate", req.FromDate)
	if err != nil {
		return nil, err
	}
	toDate, err := parseISODate("toDate", req.ToDate)
	if err != nil {
		return nil, err
	}
	if toDate.Before(fromDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	caller, err := s.userRepo.GetByID(callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if req.UserID != callerID {
		if !caller.IsSupervisor() {
			return nil, apperrors.ErrNotSupervisor
		}
		if _, err := s.userRepo.GetByID(req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, err
		}
	}

	tasks := make([]models.Task, 0, len(req.TaskIDs))
	seen := make(map[uuid.UUID]bool, len(req.TaskIDs))
	for _, taskID := range req.TaskIDs {
		if seen[taskID] {
			continue
		}
		seen[taskID] = true
		task, err := s.taskRepo.GetByID(taskID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTaskNotFound
			}
			return nil, err
		}
		tasks = append(tasks, *task)
	}

	obstacle := &models.Obstacle{
		UserID:               req.UserID,
		FromDate:             fromDate,
		ToDate:               toDate,
		ApplicantDescription: req.ApplicantDescription,
		Status:               models.ObstacleStatusAwaiting,
		Tasks:                tasks,
	}
	if err := s.obstacleRepo.Create(obstacle); err != nil {
		return nil, err
	}

	created, err := s.obstacleRepo.GetByID(obstacle.ID)
	if err != nil {
		return nil, err
	}
	resp := toObstacleResponse(created)
	return &resp, nil
}

// GetObstacle retrieves an obstacle by ID
func (s *ObstacleService) GetObstacle(id uuid.UUID) (*ObstacleResponse, error) {
	obstacle, err := s.obstacleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObstacleNotFound
		}
		return nil, err
	}
	resp := toObstacleResponse(obstacle)
	return &resp, nil
}

// ListObstacles retrieves all obstacles, upcoming first
func (s *ObstacleService) ListObstacles() ([]ObstacleResponse, error) {
	obstacles, err := s.obstacleRepo.GetAll(s.today())
	if err != nil {
		return nil, err
	}
	return toObstacleResponses(obstacles), nil
}

// ListObstaclesByUser retrieves a user's obstacles, upcoming first
func (s *ObstacleService) ListObstaclesByUser(userID uuid.UUID) ([]ObstacleResponse, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	obstacles, err := s.obstacleRepo.GetByUserID(userID, s.today())
	if err != nil {
		return nil, err
	}
	return toObstacleResponses(obstacles), nil
}

// ListObstaclesByTask retrieves the obstacles listing a task
func (s *ObstacleService) ListObstaclesByTask(taskID uuid.UUID) ([]ObstacleResponse, error) {
	if _, err := s.taskRepo.GetByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	obstacles, err := s.obstacleRepo.GetByTaskID(taskID)
	if err != nil {
		return nil, err
	}
	return toObstacleResponses(obstacles), nil
}

// CountObstaclesByStatus counts obstacles in the given status
func (s *ObstacleService) CountObstaclesByStatus(status models.ObstacleStatus) (*ObstacleCountResponse, error) {
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", "unknown obstacle status")
	}
	count, err := s.obstacleRepo.CountByStatus(status)
	if err != nil {
		return nil, err
	}
	return &ObstacleCountResponse{Status: status, Count: count}, nil
}

// PatchObstacle applies a supervisor's decision. Only AWAITING obstacles can
// be decided; APPROVED and REJECTED are terminal. Approving removes the
// applicant's existing schedule entries for the covered tasks and dates.
func (s *ObstacleService) PatchObstacle(id uuid.UUID, recipientID uuid.UUID, req *PatchObstacleRequest) (*ObstacleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Status != models.ObstacleStatusApproved && req.Status != models.ObstacleStatusRejected {
		return nil, apperrors.NewValidationError("status", "decision must be APPROVED or REJECTED")
	}

	recipient, err := s.userRepo.GetByID(recipientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	if !recipient.IsSupervisor() {
		return nil, apperrors.ErrNotSupervisor
	}

	obstacle, err := s.obstacleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrObstacleNotFound
		}
		return nil, err
	}
	if obstacle.Status.IsTerminal() {
		return nil, apperrors.NewStateTransitionError("obstacle",
			"already decided as "+string(obstacle.Status))
	}

	obstacle.Status = req.Status
	obstacle.RecipientAnswer = req.RecipientAnswer
	obstacle.RecipientUserID = &recipient.ID
	if err := s.obstacleRepo.Update(obstacle); err != nil {
		return nil, err
	}

	// An approved obstacle invalidates any assignment it overlaps.
	if req.Status == models.ObstacleStatusApproved {
		for _, task := range obstacle.Tasks {
			err := s.scheduleRepo.DeleteForUserTaskBetween(
				obstacle.UserID, task.ID, obstacle.FromDate, obstacle.ToDate)
			if err != nil {
				return nil, err
			}
		}
	}

	updated, err := s.obstacleRepo.GetByID(obstacle.ID)
	if err != nil {
		return nil, err
	}
	resp := toObstacleResponse(updated)
	return &resp, nil
}

// DeleteObstacle withdraws an obstacle. Only the applicant may withdraw, and
// only while the request is still AWAITING.
func (s *ObstacleService) DeleteObstacle(id uuid.UUID, callerID uuid.UUID) error {
	obstacle, err := s.obstacleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrObstacleNotFound
		}
		return err
	}
	if obstacle.UserID != callerID {
		return apperrors.ErrNotApplicant
	}
	if obstacle.Status.IsTerminal() {
		return apperrors.NewStateTransitionError("obstacle",
			"already decided as "+string(obstacle.Status))
	}
	return s.obstacleRepo.Delete(obstacle.ID)
}

func (s *ObstacleService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func toObstacleResponses(obstacles []models.Obstacle) []ObstacleResponse {
	out := make([]ObstacleResponse, len(obstacles))
	for i := range obstacles {
		out[i] = toObstacleResponse(&obstacles[i])
	}
	return out
}
