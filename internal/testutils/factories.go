package testutils

import (
	"time"

	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a test Role with default values
func (f *RoleFactory) Create() *models.Role {
	id := uuid.New()
	return &models.Role{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique suffix keeps the name index happy across inserts
		Name:                    "reader-" + id.String()[:8],
		Type:                    models.RoleTypeTaskPerformer,
		SortOrder:               1,
		AreTasksVisibleInPrints: true,
	}
}

// WithName sets a custom name for the role
func (f *RoleFactory) WithName(name string) *models.Role {
	role := f.Create()
	role.Name = name
	return role
}

// WithType sets a custom type for the role
func (f *RoleFactory) WithType(roleType models.RoleType) *models.Role {
	role := f.Create()
	role.Type = roleType
	return role
}

// Supervisor creates a supervisor role
func (f *RoleFactory) Supervisor() *models.Role {
	role := f.Create()
	role.Name = "supervisor-" + role.ID.String()[:8]
	role.Type = models.RoleTypeSupervisor
	role.AssignedTasksGroupName = "Supervised duties"
	return role
}

// System creates an application-managed role
func (f *RoleFactory) System() *models.Role {
	role := f.Create()
	role.Name = "system-" + role.ID.String()[:8]
	role.Type = models.RoleTypeSystem
	return role
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() *models.Task {
	id := uuid.New()
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:                             "Refectory reading " + id.String()[:8],
		NameAbbrev:                       "RR",
		ParticipantsLimit:                1,
		SupervisorRoleID:                 uuid.New(),
		SortOrder:                        1,
		VisibleInObstacleFormForUserRole: true,
		DaysOfWeek:                       []models.DayOfWeek{models.Monday, models.Wednesday, models.Friday},
	}
}

// WithSupervisorRole sets the supervisor role for the task
func (f *TaskFactory) WithSupervisorRole(roleID uuid.UUID) *models.Task {
	task := f.Create()
	task.SupervisorRoleID = roleID
	return task
}

// WithDays sets the eligible days for the task
func (f *TaskFactory) WithDays(days ...models.DayOfWeek) *models.Task {
	task := f.Create()
	task.DaysOfWeek = days
	return task
}

// WithAllowedRoles sets the allowed roles for the task
func (f *TaskFactory) WithAllowedRoles(roles ...models.Role) *models.Task {
	task := f.Create()
	task.AllowedRoles = roles
	return task
}

// Permanent creates a task whose assignee carries over week to week
func (f *TaskFactory) Permanent() *models.Task {
	task := f.Create()
	task.Permanent = true
	return task
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     "user-" + id.String()[:8] + "@test.com",
		Name:      "John",
		Surname:   "Doe",
		EntryDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Provider:  models.AuthProviderGoogle,
		Enabled:   true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRoles sets the roles for the user
func (f *UserFactory) WithRoles(roles ...models.Role) *models.User {
	user := f.Create()
	user.Roles = roles
	return user
}

// Disabled creates a user excluded from scheduling
func (f *UserFactory) Disabled() *models.User {
	user := f.Create()
	user.Enabled = false
	return user
}

// ObstacleFactory provides methods to create test Obstacle data
type ObstacleFactory struct{}

// NewObstacleFactory creates a new ObstacleFactory
func NewObstacleFactory() *ObstacleFactory {
	return &ObstacleFactory{}
}

// Create creates a test Obstacle with default values (awaiting review)
func (f *ObstacleFactory) Create() *models.Obstacle {
	return &models.Obstacle{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:               uuid.New(),
		FromDate:             time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ToDate:               time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		ApplicantDescription: "travel",
		Status:               models.ObstacleStatusAwaiting,
	}
}

// WithUser sets the applicant for the obstacle
func (f *ObstacleFactory) WithUser(userID uuid.UUID) *models.Obstacle {
	obstacle := f.Create()
	obstacle.UserID = userID
	return obstacle
}

// WithRange sets the date range for the obstacle
func (f *ObstacleFactory) WithRange(from, to time.Time) *models.Obstacle {
	obstacle := f.Create()
	obstacle.FromDate = from
	obstacle.ToDate = to
	return obstacle
}

// WithTasks sets the blocked tasks for the obstacle
func (f *ObstacleFactory) WithTasks(tasks ...models.Task) *models.Obstacle {
	obstacle := f.Create()
	obstacle.Tasks = tasks
	return obstacle
}

// Approved creates an obstacle already decided by a supervisor
func (f *ObstacleFactory) Approved(recipientID uuid.UUID) *models.Obstacle {
	obstacle := f.Create()
	obstacle.Status = models.ObstacleStatusApproved
	obstacle.RecipientUserID = &recipientID
	obstacle.RecipientAnswer = "approved"
	return obstacle
}

// ConflictFactory provides methods to create test Conflict data
type ConflictFactory struct{}

// NewConflictFactory creates a new ConflictFactory
func NewConflictFactory() *ConflictFactory {
	return &ConflictFactory{}
}

// Create creates a test Conflict with default values
func (f *ConflictFactory) Create() *models.Conflict {
	return &models.Conflict{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Task1ID:    uuid.New(),
		Task2ID:    uuid.New(),
		DaysOfWeek: []models.DayOfWeek{models.Monday},
	}
}

// WithTasks sets the conflicting pair
func (f *ConflictFactory) WithTasks(task1ID, task2ID uuid.UUID) *models.Conflict {
	conflict := f.Create()
	conflict.Task1ID = task1ID
	conflict.Task2ID = task2ID
	return conflict
}

// WithDays sets the days the conflict applies on
func (f *ConflictFactory) WithDays(days ...models.DayOfWeek) *models.Conflict {
	conflict := f.Create()
	conflict.DaysOfWeek = days
	return conflict
}

// ScheduleFactory provides methods to create test Schedule data
type ScheduleFactory struct{}

// NewScheduleFactory creates a new ScheduleFactory
func NewScheduleFactory() *ScheduleFactory {
	return &ScheduleFactory{}
}

// Create creates a test Schedule with default values
func (f *ScheduleFactory) Create() *models.Schedule {
	return &models.Schedule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TaskID: uuid.New(),
		UserID: uuid.New(),
		Date:   time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
}

// For sets the assignment triple
func (f *ScheduleFactory) For(userID, taskID uuid.UUID, date time.Time) *models.Schedule {
	schedule := f.Create()
	schedule.UserID = userID
	schedule.TaskID = taskID
	schedule.Date = date
	return schedule
}

// Generated marks the entry as produced by a generation run
func (f *ScheduleFactory) Generated(userID, taskID uuid.UUID, date time.Time) *models.Schedule {
	schedule := f.For(userID, taskID, date)
	schedule.Generated = true
	return schedule
}

// SpecialDateFactory provides methods to create test SpecialDate data
type SpecialDateFactory struct{}

// NewSpecialDateFactory creates a new SpecialDateFactory
func NewSpecialDateFactory() *SpecialDateFactory {
	return &SpecialDateFactory{}
}

// Feast creates a FEAST date, excluded from generation
func (f *SpecialDateFactory) Feast(date time.Time) *models.SpecialDate {
	return &models.SpecialDate{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Date: date,
		Type: models.SpecialDateTypeFeast,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Role        *RoleFactory
	Task        *TaskFactory
	User        *UserFactory
	Obstacle    *ObstacleFactory
	Conflict    *ConflictFactory
	Schedule    *ScheduleFactory
	SpecialDate *SpecialDateFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Role:        NewRoleFactory(),
		Task:        NewTaskFactory(),
		User:        NewUserFactory(),
		Obstacle:    NewObstacleFactory(),
		Conflict:    NewConflictFactory(),
		Schedule:    NewScheduleFactory(),
		SpecialDate: NewSpecialDateFactory(),
	}
}

// CreateSchedulableHierarchy creates a supervisor role, a performer role, a
// task allowing both and a user holding the performer role.
func (fs *FactorySet) CreateSchedulableHierarchy() (*models.Role, *models.Role, *models.Task, *models.User) {
	supervisor := fs.Role.Supervisor()
	performer := fs.Role.Create()

	task := fs.Task.WithSupervisorRole(supervisor.ID)
	task.AllowedRoles = []models.Role{*performer, *supervisor}

	user := fs.User.WithRoles(*performer)

	return supervisor, performer, task, user
}
