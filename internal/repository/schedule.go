package repository

import (
	"time"

	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleRepository handles database operations for schedule entries
type ScheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create creates a new schedule entry
func (r *ScheduleRepository) Create(schedule *models.Schedule) error {
	return r.db.Create(schedule).Error
}

// GetByID retrieves a schedule entry by ID with associations preloaded
func (r *ScheduleRepository) GetByID(id uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.db.Preload("Task.AllowedRoles").Preload("Task.SupervisorRole").Preload("User.Roles").
		First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetAll retrieves all schedule entries ordered by date
func (r *ScheduleRepository) GetAll() ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("Task.AllowedRoles").Preload("Task.SupervisorRole").Preload("User.Roles").
		Order("date ASC, id ASC").Find(&schedules).Error
	return schedules, err
}

// GetFromDate retrieves schedule entries on or after the date
func (r *ScheduleRepository) GetFromDate(date time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("Task.AllowedRoles").Preload("Task.SupervisorRole").Preload("User.Roles").
		Where("date >= ?", date).Order("date ASC, id ASC").Find(&schedules).Error
	return schedules, err
}

// GetByUserID retrieves all schedule entries for a user
func (r *ScheduleRepository) GetByUserID(userID uuid.UUID) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("Task.AllowedRoles").Preload("Task.SupervisorRole").Preload("User.Roles").
		Where("user_id = ?", userID).Order("date ASC, id ASC").Find(&schedules).Error
	return schedules, err
}

// GetByUserAndDate retrieves a user's entries on one date
func (r *ScheduleRepository) GetByUserAndDate(userID uuid.UUID, date time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("Task").
		Where("user_id = ? AND date = ?", userID, date).Find(&schedules).Error
	return schedules, err
}

// GetByUserAndDateBetween retrieves a user's entries within [from, to]
func (r *ScheduleRepository) GetByUserAndDateBetween(userID uuid.UUID, from, to time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("Task").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC, id ASC").Find(&schedules).Error
	return schedules, err
}

// GetByDateBetween retrieves all entries within [from, to]
func (r *ScheduleRepository) GetByDateBetween(from, to time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.Preload("Task.AllowedRoles").Preload("Task.SupervisorRole").Preload("User.Roles").
		Where("date BETWEEN ? AND ?", from, to).
		Order("date ASC, id ASC").Find(&schedules).Error
	return schedules, err
}

// ExistsForUserTaskDate checks the (user, task, date) uniqueness constraint
func (r *ScheduleRepository) ExistsForUserTaskDate(userID, taskID uuid.UUID, date time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Schedule{}).
		Where("user_id = ? AND task_id = ? AND date = ?", userID, taskID, date).
		Count(&count).Error
	return count > 0, err
}

// CountForTaskAndDate counts entries for a task on a date (capacity check)
func (r *ScheduleRepository) CountForTaskAndDate(taskID uuid.UUID, date time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Schedule{}).
		Where("task_id = ? AND date = ?", taskID, date).Count(&count).Error
	return count, err
}

// CountForUserAndTaskBetween counts a user's entries for a task within [from, to]
func (r *ScheduleRepository) CountForUserAndTaskBetween(userID, taskID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Schedule{}).
		Where("user_id = ? AND task_id = ? AND date BETWEEN ? AND ?", userID, taskID, from, to).
		Count(&count).Error
	return count, err
}

// LastCompletionDate returns the most recent date strictly before upTo on
// which the user performed the task
func (r *ScheduleRepository) LastCompletionDate(userID, taskID uuid.UUID, upTo time.Time) (*time.Time, error) {
	var schedule models.Schedule
	err := r.db.Where("user_id = ? AND task_id = ? AND date < ?", userID, taskID, upTo).
		Order("date DESC").First(&schedule).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &schedule.Date, nil
}

// CountDistinctWeeksForTask counts distinct weeks (Monday-keyed) in which the
// task was scheduled at all, from the given date
func (r *ScheduleRepository) CountDistinctWeeksForTask(taskID uuid.UUID, from time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Schedule{}).
		Where("task_id = ? AND date >= ?", taskID, from).
		Distinct("date_trunc('week', date)").Count(&count).Error
	return count, err
}

// CountDistinctWeeksForUserTask counts distinct weeks in which the user was
// assigned at least once to the task, from the given date
func (r *ScheduleRepository) CountDistinctWeeksForUserTask(userID, taskID uuid.UUID, from time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Schedule{}).
		Where("user_id = ? AND task_id = ? AND date >= ?", userID, taskID, from).
		Distinct("date_trunc('week', date)").Count(&count).Error
	return count, err
}

// Update updates a schedule entry
func (r *ScheduleRepository) Update(schedule *models.Schedule) error {
	return r.db.Omit("Task", "User").Save(schedule).Error
}

// Delete deletes a schedule entry
func (r *ScheduleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Schedule{}, "id = ?", id).Error
}

// DeleteForUserTaskBetween removes a user's entries for a task within
// [from, to]. Used when an obstacle is approved over existing assignments.
func (r *ScheduleRepository) DeleteForUserTaskBetween(userID, taskID uuid.UUID, from, to time.Time) error {
	return r.db.Where("user_id = ? AND task_id = ? AND date BETWEEN ? AND ?", userID, taskID, from, to).
		Delete(&models.Schedule{}).Error
}

// ReplaceGeneratedWeek deletes the generated entries of a week and inserts
// the replacement set in one transaction
func (r *ScheduleRepository) ReplaceGeneratedWeek(weekStart, weekEnd time.Time, entries []models.Schedule) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("generated = ? AND date BETWEEN ? AND ?", true, weekStart, weekEnd).
			Delete(&models.Schedule{}).Error; err != nil {
			return err
		}
		for i := range entries {
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
