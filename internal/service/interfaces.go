package service

import (
	"context"

	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// RoleServiceInterface defines the contract for role operations
type RoleServiceInterface interface {
	CreateRole(req *CreateRoleRequest) (*RoleResponse, error)
	GetRole(id uuid.UUID) (*RoleResponse, error)
	GetRoleByName(name string) (*RoleResponse, error)
	ListRoles(roleType *models.RoleType) ([]RoleResponse, error)
	UpdateRole(id uuid.UUID, req *UpdateRoleRequest) (*RoleResponse, error)
	UpdateSortOrders(updates []RoleSortOrderUpdate) error
	UpdateVisibilities(updates []RoleVisibilityUpdate) error
	DeleteRole(id uuid.UUID) error
}

// TaskServiceInterface defines the contract for task operations
type TaskServiceInterface interface {
	CreateTask(req *CreateTaskRequest) (*TaskResponse, error)
	GetTask(id uuid.UUID) (*TaskResponse, error)
	ListTasks() ([]TaskResponse, error)
	ListTasksBySupervisorRole(roleName string) ([]TaskResponse, error)
	ListTasksVisibleInObstacleForm() ([]TaskResponse, error)
	UpdateTask(id uuid.UUID, req *UpdateTaskRequest) (*TaskResponse, error)
	DeleteTask(id uuid.UUID) error
}

// UserServiceInterface defines the contract for user operations
type UserServiceInterface interface {
	CreateUser(req *CreateUserRequest) (*UserResponse, error)
	GetUser(id uuid.UUID) (*UserResponse, error)
	GetUserByEmail(email string) (*UserResponse, error)
	ListUsers() ([]UserResponse, error)
	UpdateUser(id uuid.UUID, req *UpdateUserRequest) (*UserResponse, error)
	DeleteUser(id uuid.UUID) error
}

// ConflictServiceInterface defines the contract for conflict operations
type ConflictServiceInterface interface {
	CreateConflict(req *CreateConflictRequest) (*ConflictResponse, error)
	GetConflict(id uuid.UUID) (*ConflictResponse, error)
	ListConflicts() ([]ConflictResponse, error)
	UpdateConflict(id uuid.UUID, req *UpdateConflictRequest) (*ConflictResponse, error)
	DeleteConflict(id uuid.UUID) error
}

// ObstacleServiceInterface defines the contract for the obstacle lifecycle
type ObstacleServiceInterface interface {
	CreateObstacle(callerID uuid.UUID, req *CreateObstacleRequest) (*ObstacleResponse, error)
	GetObstacle(id uuid.UUID) (*ObstacleResponse, error)
	ListObstacles() ([]ObstacleResponse, error)
	ListObstaclesByUser(userID uuid.UUID) ([]ObstacleResponse, error)
	ListObstaclesByTask(taskID uuid.UUID) ([]ObstacleResponse, error)
	CountObstaclesByStatus(status models.ObstacleStatus) (*ObstacleCountResponse, error)
	PatchObstacle(id uuid.UUID, recipientID uuid.UUID, req *PatchObstacleRequest) (*ObstacleResponse, error)
	DeleteObstacle(id uuid.UUID, callerID uuid.UUID) error
}

// ScheduleServiceInterface defines the contract for schedule operations
type ScheduleServiceInterface interface {
	CreateSchedule(req *CreateScheduleRequest) (*ScheduleResponse, error)
	AssignWeek(req *WeekAssignmentRequest) ([]ScheduleResponse, error)
	UnassignWeek(req *WeekAssignmentRequest) error
	GetSchedule(id uuid.UUID) (*ScheduleResponse, error)
	ListSchedulesInWeek(fromDate, toDate string) ([]ScheduleResponse, error)
	ListSchedulesByUser(userID uuid.UUID) ([]ScheduleResponse, error)
	DeleteSchedule(id uuid.UUID) error
	GetWeekRevision(weekStart string) (*WeekRevisionResponse, error)
	GenerateWeek(ctx context.Context, req *GenerateWeekRequest) (*GenerationResponse, error)
	ListAvailableTasks(userID uuid.UUID) ([]TaskResponse, error)
	GetUserDependencies(userID uuid.UUID, fromDate, toDate string) ([]UserTaskDependency, error)
	GetUserDependenciesDaily(userID uuid.UUID, fromDate, toDate string) ([]UserTaskDependencyDaily, error)
	GetWeekShortInfoByUsers(fromDate, toDate string) ([]UserShortInfo, error)
	GetWeekShortInfoByTasks(fromDate, toDate string) ([]TaskShortInfo, error)
}

// StatisticsServiceInterface defines the contract for statistics queries
type StatisticsServiceInterface interface {
	GetUserStatistics(userID uuid.UUID) (*UserStatisticsResponse, error)
}

// SpecialDateServiceInterface defines the contract for special date operations
type SpecialDateServiceInterface interface {
	CreateSpecialDate(req *CreateSpecialDateRequest) (*SpecialDateResponse, error)
	ListSpecialDates() ([]SpecialDateResponse, error)
	DeleteSpecialDate(id uuid.UUID) error
}
