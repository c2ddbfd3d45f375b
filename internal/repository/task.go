package repository

import (
	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task with its allowed-roles association
func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// GetByID retrieves a task by ID with its roles preloaded
func (r *TaskRepository) GetByID(id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.Preload("AllowedRoles").Preload("SupervisorRole").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetAll retrieves all tasks ordered by sort order, roles preloaded
func (r *TaskRepository) GetAll() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("AllowedRoles").Preload("SupervisorRole").
		Order("sort_order ASC, id ASC").Find(&tasks).Error
	return tasks, err
}

// GetBySupervisorRoleName retrieves tasks supervised by the named role
func (r *TaskRepository) GetBySupervisorRoleName(roleName string) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("AllowedRoles").Preload("SupervisorRole").
		Joins("JOIN roles ON roles.id = tasks.supervisor_role_id").
		Where("roles.name = ?", roleName).
		Order("tasks.sort_order ASC, tasks.id ASC").Find(&tasks).Error
	return tasks, err
}

// GetVisibleInObstacleForm retrieves tasks shown to plain users in the
// obstacle submission form
func (r *TaskRepository) GetVisibleInObstacleForm() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Preload("AllowedRoles").Preload("SupervisorRole").
		Where("visible_in_obstacle_form_for_user_role = ?", true).
		Order("sort_order ASC, id ASC").Find(&tasks).Error
	return tasks, err
}

// Update updates a task and replaces its allowed-roles association
func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("AllowedRoles").Save(task).Error; err != nil {
			return err
		}
		return tx.Model(task).Association("AllowedRoles").Replace(task.AllowedRoles)
	})
}

// Delete deletes a task
func (r *TaskRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Task{}, "id = ?", id).Error
}

// CountScheduleReferences counts schedule entries for the task
func (r *TaskRepository) CountScheduleReferences(taskID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Schedule{}).Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}

// CountObstacleReferences counts obstacles listing the task
func (r *TaskRepository) CountObstacleReferences(taskID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Table("obstacle_tasks").Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}

// CountConflictReferences counts conflicts involving the task
func (r *TaskRepository) CountConflictReferences(taskID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Conflict{}).
		Where("task1_id = ? OR task2_id = ?", taskID, taskID).Count(&count).Error
	return count, err
}
