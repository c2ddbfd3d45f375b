package repository

import (
	"time"

	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ObstacleRepository handles database operations for obstacles
type ObstacleRepository struct {
	db *gorm.DB
}

// NewObstacleRepository creates a new obstacle repository
func NewObstacleRepository(db *gorm.DB) *ObstacleRepository {
	return &ObstacleRepository{db: db}
}

// Create creates a new obstacle with its task association
func (r *ObstacleRepository) Create(obstacle *models.Obstacle) error {
	return r.db.Create(obstacle).Error
}

// GetByID retrieves an obstacle by ID with associations preloaded
func (r *ObstacleRepository) GetByID(id uuid.UUID) (*models.Obstacle, error) {
	var obstacle models.Obstacle
	err := r.db.Preload("User.Roles").Preload("RecipientUser").Preload("Tasks").
		First(&obstacle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &obstacle, nil
}

// GetAll retrieves all obstacles, future-first then past, each group ordered
// latest-first. Mirrors the ordering the admin obstacle table expects.
func (r *ObstacleRepository) GetAll(today time.Time) ([]models.Obstacle, error) {
	// Each Find gets its own statement; chaining both onto one builder would
	// stack the date conditions.
	var future, past []models.Obstacle
	err := r.db.Preload("User.Roles").Preload("RecipientUser").Preload("Tasks").
		Where("from_date > ?", today).
		Order("from_date DESC, to_date DESC").Find(&future).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Preload("User.Roles").Preload("RecipientUser").Preload("Tasks").
		Where("from_date <= ?", today).
		Order("to_date DESC").Find(&past).Error
	if err != nil {
		return nil, err
	}
	return append(future, past...), nil
}

// GetByUserID retrieves all obstacles of a user, future-first then past
func (r *ObstacleRepository) GetByUserID(userID uuid.UUID, today time.Time) ([]models.Obstacle, error) {
	var future, past []models.Obstacle
	err := r.db.Preload("User.Roles").Preload("RecipientUser").Preload("Tasks").
		Where("user_id = ? AND from_date > ?", userID, today).
		Order("from_date DESC, to_date DESC").Find(&future).Error
	if err != nil {
		return nil, err
	}
	err = r.db.Preload("User.Roles").Preload("RecipientUser").Preload("Tasks").
		Where("user_id = ? AND from_date <= ?", userID, today).
		Order("to_date DESC").Find(&past).Error
	if err != nil {
		return nil, err
	}
	return append(future, past...), nil
}

// GetByTaskID retrieves all obstacles listing the task
func (r *ObstacleRepository) GetByTaskID(taskID uuid.UUID) ([]models.Obstacle, error) {
	var obstacles []models.Obstacle
	err := r.db.Preload("User.Roles").Preload("RecipientUser").Preload("Tasks").
		Joins("JOIN obstacle_tasks ON obstacle_tasks.obstacle_id = obstacles.id").
		Where("obstacle_tasks.task_id = ?", taskID).Find(&obstacles).Error
	return obstacles, err
}

// GetApprovedForUserTaskDate retrieves APPROVED obstacles of the user that
// list the task and span the date
func (r *ObstacleRepository) GetApprovedForUserTaskDate(userID, taskID uuid.UUID, date time.Time) ([]models.Obstacle, error) {
	var obstacles []models.Obstacle
	err := r.db.Preload("Tasks").
		Joins("JOIN obstacle_tasks ON obstacle_tasks.obstacle_id = obstacles.id").
		Where("obstacles.user_id = ? AND obstacle_tasks.task_id = ? AND obstacles.status = ?",
			userID, taskID, models.ObstacleStatusApproved).
		Where("obstacles.from_date <= ? AND obstacles.to_date >= ?", date, date).
		Find(&obstacles).Error
	return obstacles, err
}

// GetApprovedInRange retrieves all APPROVED obstacles overlapping [from, to],
// with tasks preloaded. Used to build generation snapshots.
func (r *ObstacleRepository) GetApprovedInRange(from, to time.Time) ([]models.Obstacle, error) {
	var obstacles []models.Obstacle
	err := r.db.Preload("Tasks").
		Where("status = ? AND from_date <= ? AND to_date >= ?", models.ObstacleStatusApproved, to, from).
		Find(&obstacles).Error
	return obstacles, err
}

// CountByStatus counts obstacles in the given status
func (r *ObstacleRepository) CountByStatus(status models.ObstacleStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Obstacle{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Update updates an obstacle
func (r *ObstacleRepository) Update(obstacle *models.Obstacle) error {
	return r.db.Omit("Tasks", "User", "RecipientUser").Save(obstacle).Error
}

// Delete deletes an obstacle
func (r *ObstacleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Obstacle{}, "id = ?", id).Error
}
