package repository

import (
	"time"

	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	Create(role *models.Role) error
	GetByID(id uuid.UUID) (*models.Role, error)
	GetByName(name string) (*models.Role, error)
	GetByNameAndType(name string, roleType models.RoleType) (*models.Role, error)
	GetAll() ([]models.Role, error)
	GetByType(roleType models.RoleType) ([]models.Role, error)
	GetByNames(names []string) ([]models.Role, error)
	ExistsByName(name string) (bool, error)
	MaxSortOrderForType(roleType models.RoleType) (int64, error)
	Update(role *models.Role) error
	Delete(id uuid.UUID) error
	CountTaskReferences(roleID uuid.UUID) (int64, error)
	CountUserReferences(roleID uuid.UUID) (int64, error)
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(task *models.Task) error
	GetByID(id uuid.UUID) (*models.Task, error)
	GetAll() ([]models.Task, error)
	GetBySupervisorRoleName(roleName string) ([]models.Task, error)
	GetVisibleInObstacleForm() ([]models.Task, error)
	Update(task *models.Task) error
	Delete(id uuid.UUID) error
	CountScheduleReferences(taskID uuid.UUID) (int64, error)
	CountObstacleReferences(taskID uuid.UUID) (int64, error)
	CountConflictReferences(taskID uuid.UUID) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	GetEnabled() ([]models.User, error)
	ExistsByEmail(email string) (bool, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// ConflictRepositoryInterface defines the interface for conflict repository operations
type ConflictRepositoryInterface interface {
	Create(conflict *models.Conflict) error
	GetByID(id uuid.UUID) (*models.Conflict, error)
	GetAll() ([]models.Conflict, error)
	ExistsForPair(task1ID, task2ID uuid.UUID) (bool, error)
	GetForPair(task1ID, task2ID uuid.UUID) ([]models.Conflict, error)
	Update(conflict *models.Conflict) error
	Delete(id uuid.UUID) error
}

// ObstacleRepositoryInterface defines the interface for obstacle repository operations
type ObstacleRepositoryInterface interface {
	Create(obstacle *models.Obstacle) error
	GetByID(id uuid.UUID) (*models.Obstacle, error)
	GetAll(today time.Time) ([]models.Obstacle, error)
	GetByUserID(userID uuid.UUID, today time.Time) ([]models.Obstacle, error)
	GetByTaskID(taskID uuid.UUID) ([]models.Obstacle, error)
	GetApprovedForUserTaskDate(userID, taskID uuid.UUID, date time.Time) ([]models.Obstacle, error)
	GetApprovedInRange(from, to time.Time) ([]models.Obstacle, error)
	CountByStatus(status models.ObstacleStatus) (int64, error)
	Update(obstacle *models.Obstacle) error
	Delete(id uuid.UUID) error
}

// ScheduleRepositoryInterface defines the interface for schedule repository operations
type ScheduleRepositoryInterface interface {
	Create(schedule *models.Schedule) error
	GetByID(id uuid.UUID) (*models.Schedule, error)
	GetAll() ([]models.Schedule, error)
	GetFromDate(date time.Time) ([]models.Schedule, error)
	GetByUserID(userID uuid.UUID) ([]models.Schedule, error)
	GetByUserAndDate(userID uuid.UUID, date time.Time) ([]models.Schedule, error)
	GetByUserAndDateBetween(userID uuid.UUID, from, to time.Time) ([]models.Schedule, error)
	GetByDateBetween(from, to time.Time) ([]models.Schedule, error)
	ExistsForUserTaskDate(userID, taskID uuid.UUID, date time.Time) (bool, error)
	CountForTaskAndDate(taskID uuid.UUID, date time.Time) (int64, error)
	CountForUserAndTaskBetween(userID, taskID uuid.UUID, from, to time.Time) (int64, error)
	LastCompletionDate(userID, taskID uuid.UUID, upTo time.Time) (*time.Time, error)
	CountDistinctWeeksForTask(taskID uuid.UUID, from time.Time) (int64, error)
	CountDistinctWeeksForUserTask(userID, taskID uuid.UUID, from time.Time) (int64, error)
	Update(schedule *models.Schedule) error
	Delete(id uuid.UUID) error
	DeleteForUserTaskBetween(userID, taskID uuid.UUID, from, to time.Time) error
	ReplaceGeneratedWeek(weekStart, weekEnd time.Time, entries []models.Schedule) error
}

// SpecialDateRepositoryInterface defines the interface for special date repository operations
type SpecialDateRepositoryInterface interface {
	Create(specialDate *models.SpecialDate) error
	GetByID(id uuid.UUID) (*models.SpecialDate, error)
	GetAll() ([]models.SpecialDate, error)
	GetInRange(from, to time.Time) ([]models.SpecialDate, error)
	ExistsForDateAndType(date time.Time, dateType models.SpecialDateType) (bool, error)
	Delete(id uuid.UUID) error
}

// WeekRevisionRepositoryInterface defines the interface for week revision operations
type WeekRevisionRepositoryInterface interface {
	Get(weekStart time.Time) (*models.WeekRevision, error)
	Bump(weekStart time.Time, expected int64) (int64, bool, error)
}
