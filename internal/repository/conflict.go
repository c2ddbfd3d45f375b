package repository

import (
	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConflictRepository handles database operations for task conflicts
type ConflictRepository struct {
	db *gorm.DB
}

// NewConflictRepository creates a new conflict repository
func NewConflictRepository(db *gorm.DB) *ConflictRepository {
	return &ConflictRepository{db: db}
}

// Create creates a new conflict
func (r *ConflictRepository) Create(conflict *models.Conflict) error {
	return r.db.Create(conflict).Error
}

// GetByID retrieves a conflict by ID with tasks preloaded
func (r *ConflictRepository) GetByID(id uuid.UUID) (*models.Conflict, error) {
	var conflict models.Conflict
	err := r.db.Preload("Task1").Preload("Task2").First(&conflict, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &conflict, nil
}

// GetAll retrieves all conflicts with tasks preloaded
func (r *ConflictRepository) GetAll() ([]models.Conflict, error) {
	var conflicts []models.Conflict
	err := r.db.Preload("Task1").Preload("Task2").Order("id ASC").Find(&conflicts).Error
	return conflicts, err
}

// ExistsForPair checks whether a conflict for the unordered task pair exists
func (r *ConflictRepository) ExistsForPair(task1ID, task2ID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Conflict{}).
		Where("(task1_id = ? AND task2_id = ?) OR (task1_id = ? AND task2_id = ?)",
			task1ID, task2ID, task2ID, task1ID).
		Count(&count).Error
	return count > 0, err
}

// GetForPair retrieves conflicts for the unordered task pair
func (r *ConflictRepository) GetForPair(task1ID, task2ID uuid.UUID) ([]models.Conflict, error) {
	var conflicts []models.Conflict
	err := r.db.
		Where("(task1_id = ? AND task2_id = ?) OR (task1_id = ? AND task2_id = ?)",
			task1ID, task2ID, task2ID, task1ID).
		Find(&conflicts).Error
	return conflicts, err
}

// Update updates a conflict
func (r *ConflictRepository) Update(conflict *models.Conflict) error {
	return r.db.Omit("Task1", "Task2").Save(conflict).Error
}

// Delete deletes a conflict
func (r *ConflictRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Conflict{}, "id = ?", id).Error
}
