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

// SpecialDateService handles business logic for special dates
type SpecialDateService struct {
	specialDateRepo repository.SpecialDateRepositoryInterface
	validator       *validator.Validate
}

// NewSpecialDateService creates a new special date service
func NewSpecialDateService(specialDateRepo repository.SpecialDateRepositoryInterface) *SpecialDateService {
	return &SpecialDateService{
		specialDateRepo: specialDateRepo,
		validator:       validator.New(),
	}
}

// CreateSpecialDateRequest represents the payload for creating a special date
type CreateSpecialDateRequest struct {
	Date string                 `json:"date" validate:"required"`
	Type models.SpecialDateType `json:"type" validate:"required"`
}

// CreateSpecialDate marks a calendar date as special
func (s *SpecialDateService) CreateSpecialDate(req *CreateSpecialDateRequest) (*SpecialDateResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "unknown special date type")
	}

	date, err := parseISODate("date", req.Date)
	if err != nil {
		return nil, err
	}

	exists, err := s.specialDateRepo.ExistsForDateAndType(date, req.Type)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrSpecialDateExists
	}

	specialDate := &models.SpecialDate{Date: date, Type: req.Type}
	if err := s.specialDateRepo.Create(specialDate); err != nil {
		return nil, err
	}

	resp := toSpecialDateResponse(specialDate)
	return &resp, nil
}

// ListSpecialDates retrieves all special dates ordered by date
func (s *SpecialDateService) ListSpecialDates() ([]SpecialDateResponse, error) {
	specialDates, err := s.specialDateRepo.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]SpecialDateResponse, len(specialDates))
	for i := range specialDates {
		out[i] = toSpecialDateResponse(&specialDates[i])
	}
	return out, nil
}

// DeleteSpecialDate removes a special date marker
func (s *SpecialDateService) DeleteSpecialDate(id uuid.UUID) error {
	if _, err := s.specialDateRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSpecialDateNotFound
		}
		return err
	}
	return s.specialDateRepo.Delete(id)
}
