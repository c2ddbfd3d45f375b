package repository

import (
	"time"

	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SpecialDateRepository handles database operations for special dates
type SpecialDateRepository struct {
	db *gorm.DB
}

// NewSpecialDateRepository creates a new special date repository
func NewSpecialDateRepository(db *gorm.DB) *SpecialDateRepository {
	return &SpecialDateRepository{db: db}
}

// Create creates a new special date
func (r *SpecialDateRepository) Create(specialDate *models.SpecialDate) error {
	return r.db.Create(specialDate).Error
}

// GetByID retrieves a special date by ID
func (r *SpecialDateRepository) GetByID(id uuid.UUID) (*models.SpecialDate, error) {
	var specialDate models.SpecialDate
	err := r.db.First(&specialDate, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &specialDate, nil
}

// GetAll retrieves all special dates ordered by date
func (r *SpecialDateRepository) GetAll() ([]models.SpecialDate, error) {
	var specialDates []models.SpecialDate
	err := r.db.Order("date ASC, id ASC").Find(&specialDates).Error
	return specialDates, err
}

// GetInRange retrieves special dates within [from, to]
func (r *SpecialDateRepository) GetInRange(from, to time.Time) ([]models.SpecialDate, error) {
	var specialDates []models.SpecialDate
	err := r.db.Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC, id ASC").Find(&specialDates).Error
	return specialDates, err
}

// ExistsForDateAndType checks whether the date already carries the type
func (r *SpecialDateRepository) ExistsForDateAndType(date time.Time, dateType models.SpecialDateType) (bool, error) {
	var count int64
	err := r.db.Model(&models.SpecialDate{}).
		Where("date = ? AND type = ?", date, dateType).Count(&count).Error
	return count > 0, err
}

// Delete deletes a special date
func (r *SpecialDateRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SpecialDate{}, "id = ?", id).Error
}
