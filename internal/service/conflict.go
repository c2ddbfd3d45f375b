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

// ConflictService handles business logic for task conflicts
type ConflictService struct {
	conflictRepo repository.ConflictRepositoryInterface
	taskRepo     repository.TaskRepositoryInterface
	validator    *validator.Validate
}

// NewConflictService creates a new conflict service
func NewConflictService(conflictRepo repository.ConflictRepositoryInterface, taskRepo repository.TaskRepositoryInterface) *ConflictService {
	return &ConflictService{
		conflictRepo: conflictRepo,
		taskRepo:     taskRepo,
		validator:    validator.New(),
	}
}

// CreateConflictRequest represents the payload for creating a conflict
type CreateConflictRequest struct {
	Task1ID    uuid.UUID          `json:"task1Id" validate:"required"`
	Task2ID    uuid.UUID          `json:"task2Id" validate:"required"`
	DaysOfWeek []models.DayOfWeek `json:"daysOfWeek" validate:"required,min=1"`
}

// UpdateConflictRequest represents the payload for updating a conflict
type UpdateConflictRequest struct {
	Task1ID    *uuid.UUID         `json:"task1Id,omitempty"`
	Task2ID    *uuid.UUID         `json:"task2Id,omitempty"`
	DaysOfWeek []models.DayOfWeek `json:"daysOfWeek,omitempty"`
}

// CreateConflict declares two tasks mutually exclusive on the given days.
// The pair is unordered: a registered (A, B) blocks (B, A) as well.
func (s *ConflictService) CreateConflict(req *CreateConflictRequest) (*ConflictResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Task1ID == req.Task2ID {
		return nil, apperrors.ErrSameTasksForConflict
	}
	if err := validateDaysOfWeek(req.DaysOfWeek); err != nil {
		return nil, err
	}

	for _, taskID := range []uuid.UUID{req.Task1ID, req.Task2ID} {
		if _, err := s.taskRepo.GetByID(taskID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTaskNotFound
			}
			return nil, err
		}
	}

	exists, err := s.conflictRepo.ExistsForPair(req.Task1ID, req.Task2ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrConflictExists
	}

	conflict := &models.Conflict{
		Task1ID:    req.Task1ID,
		Task2ID:    req.Task2ID,
		DaysOfWeek: normalizeDaysOfWeek(req.DaysOfWeek),
	}
	if err := s.conflictRepo.Create(conflict); err != nil {
		return nil, err
	}

	created, err := s.conflictRepo.GetByID(conflict.ID)
	if err != nil {
		return nil, err
	}
	resp := toConflictResponse(created)
	return &resp, nil
}

// GetConflict retrieves a conflict by ID
func (s *ConflictService) GetConflict(id uuid.UUID) (*ConflictResponse, error) {
	conflict, err := s.conflictRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConflictNotFound
		}
		return nil, err
	}
	resp := toConflictResponse(conflict)
	return &resp, nil
}

// ListConflicts retrieves all conflicts
func (s *ConflictService) ListConflicts() ([]ConflictResponse, error) {
	conflicts, err := s.conflictRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]ConflictResponse, len(conflicts))
	for i := range conflicts {
		out[i] = toConflictResponse(&conflicts[i])
	}
	return out, nil
}

// UpdateConflict updates a conflict's task pair or active days
func (s *ConflictService) UpdateConflict(id uuid.UUID, req *UpdateConflictRequest) (*ConflictResponse, error) {
	conflict, err := s.conflictRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConflictNotFound
		}
		return nil, err
	}

	task1ID := conflict.Task1ID
	task2ID := conflict.Task2ID
	if req.Task1ID != nil {
		task1ID = *req.Task1ID
	}
	if req.Task2ID != nil {
		task2ID = *req.Task2ID
	}
	if task1ID == task2ID {
		return nil, apperrors.ErrSameTasksForConflict
	}

	if task1ID != conflict.Task1ID || task2ID != conflict.Task2ID {
		for _, taskID := range []uuid.UUID{task1ID, task2ID} {
			if _, err := s.taskRepo.GetByID(taskID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, apperrors.ErrTaskNotFound
				}
				return nil, err
			}
		}
		others, err := s.conflictRepo.GetForPair(task1ID, task2ID)
		if err != nil {
			return nil, err
		}
		for _, other := range others {
			if other.ID != conflict.ID {
				return nil, apperrors.ErrConflictExists
			}
		}
		conflict.Task1ID = task1ID
		conflict.Task2ID = task2ID
	}

	if req.DaysOfWeek != nil {
		if err := validateDaysOfWeek(req.DaysOfWeek); err != nil {
			return nil, err
		}
		conflict.DaysOfWeek = normalizeDaysOfWeek(req.DaysOfWeek)
	}

	if err := s.conflictRepo.Update(conflict); err != nil {
		return nil, err
	}

	updated, err := s.conflictRepo.GetByID(conflict.ID)
	if err != nil {
		return nil, err
	}
	resp := toConflictResponse(updated)
	return &resp, nil
}

// DeleteConflict deletes a conflict
func (s *ConflictService) DeleteConflict(id uuid.UUID) error {
	if _, err := s.conflictRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrConflictNotFound
		}
		return err
	}
	return s.conflictRepo.Delete(id)
}
