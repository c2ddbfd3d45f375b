package service

import (
	"time"

	"community-scheduler-backend/internal/database/models"
	apperrors "community-scheduler-backend/internal/errors"

	"github.com/google/uuid"
)

const isoDate = "2006-01-02"

// RoleResponse is the wire shape of a role
type RoleResponse struct {
	ID                           uuid.UUID       `json:"id"`
	Name                         string          `json:"name"`
	Type                         models.RoleType `json:"type"`
	SortOrder                    int64           `json:"sortOrder"`
	WeeklyScheduleCreatorDefault bool            `json:"weeklyScheduleCreatorDefault"`
	AreTasksVisibleInPrints      bool            `json:"areTasksVisibleInPrints"`
	AssignedTasksGroupName       string          `json:"assignedTasksGroupName"`
}

// TaskResponse is the wire shape of a task
type TaskResponse struct {
	ID                               uuid.UUID          `json:"id"`
	Name                             string             `json:"name"`
	NameAbbrev                       string             `json:"nameAbbrev"`
	ParticipantsLimit                int                `json:"participantsLimit"`
	Permanent                        bool               `json:"permanent"`
	AllowedRoles                     []RoleResponse     `json:"allowedRoles"`
	SupervisorRole                   RoleResponse       `json:"supervisorRole"`
	DaysOfWeek                       []models.DayOfWeek `json:"daysOfWeek"`
	SortOrder                        int64              `json:"sortOrder"`
	VisibleInObstacleFormForUserRole bool               `json:"visibleInObstacleFormForUserRole"`
}

// UserResponse is the wire shape of a user
type UserResponse struct {
	ID        uuid.UUID           `json:"id"`
	Email     string              `json:"email"`
	Name      string              `json:"name"`
	Surname   string              `json:"surname"`
	EntryDate string              `json:"entryDate"`
	Roles     []RoleResponse      `json:"roles"`
	Provider  models.AuthProvider `json:"provider"`
	Enabled   bool                `json:"enabled"`
}

// ObstacleResponse is the wire shape of an obstacle
type ObstacleResponse struct {
	ID                   uuid.UUID             `json:"id"`
	User                 UserResponse          `json:"user"`
	Tasks                []TaskResponse        `json:"tasks"`
	FromDate             string                `json:"fromDate"`
	ToDate               string                `json:"toDate"`
	ApplicantDescription string                `json:"applicantDescription"`
	Status               models.ObstacleStatus `json:"status"`
	RecipientAnswer      string                `json:"recipientAnswer"`
	RecipientUser        *UserResponse         `json:"recipientUser,omitempty"`
}

// ConflictResponse is the wire shape of a conflict
type ConflictResponse struct {
	ID         uuid.UUID          `json:"id"`
	Task1      TaskResponse       `json:"task1"`
	Task2      TaskResponse       `json:"task2"`
	DaysOfWeek []models.DayOfWeek `json:"daysOfWeek"`
}

// ScheduleResponse is the wire shape of a schedule entry
type ScheduleResponse struct {
	ID        uuid.UUID    `json:"id"`
	Task      TaskResponse `json:"task"`
	User      UserResponse `json:"user"`
	Date      string       `json:"date"`
	Generated bool         `json:"generated"`
}

// SpecialDateResponse is the wire shape of a special date
type SpecialDateResponse struct {
	ID   uuid.UUID              `json:"id"`
	Date string                 `json:"date"`
	Type models.SpecialDateType `json:"type"`
}

func toRoleResponse(role *models.Role) RoleResponse {
	return RoleResponse{
		ID:                           role.ID,
		Name:                         role.Name,
		Type:                         role.Type,
		SortOrder:                    role.SortOrder,
		WeeklyScheduleCreatorDefault: role.WeeklyScheduleCreatorDefault,
		AreTasksVisibleInPrints:      role.AreTasksVisibleInPrints,
		AssignedTasksGroupName:       role.AssignedTasksGroupName,
	}
}

func toRoleResponses(roles []models.Role) []RoleResponse {
	out := make([]RoleResponse, len(roles))
	for i := range roles {
		out[i] = toRoleResponse(&roles[i])
	}
	return out
}

func toTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:                               task.ID,
		Name:                             task.Name,
		NameAbbrev:                       task.NameAbbrev,
		ParticipantsLimit:                task.ParticipantsLimit,
		Permanent:                        task.Permanent,
		AllowedRoles:                     toRoleResponses(task.AllowedRoles),
		SupervisorRole:                   toRoleResponse(&task.SupervisorRole),
		DaysOfWeek:                       task.DaysOfWeek,
		SortOrder:                        task.SortOrder,
		VisibleInObstacleFormForUserRole: task.VisibleInObstacleFormForUserRole,
	}
}

func toTaskResponses(tasks []models.Task) []TaskResponse {
	out := make([]TaskResponse, len(tasks))
	for i := range tasks {
		out[i] = toTaskResponse(&tasks[i])
	}
	return out
}

func toUserResponse(user *models.User) UserResponse {
	entryDate := ""
	if !user.EntryDate.IsZero() {
		entryDate = user.EntryDate.Format(isoDate)
	}
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Surname:   user.Surname,
		EntryDate: entryDate,
		Roles:     toRoleResponses(user.Roles),
		Provider:  user.Provider,
		Enabled:   user.Enabled,
	}
}

func toObstacleResponse(obstacle *models.Obstacle) ObstacleResponse {
	resp := ObstacleResponse{
		ID:                   obstacle.ID,
		User:                 toUserResponse(&obstacle.User),
		Tasks:                toTaskResponses(obstacle.Tasks),
		FromDate:             obstacle.FromDate.Format(isoDate),
		ToDate:               obstacle.ToDate.Format(isoDate),
		ApplicantDescription: obstacle.ApplicantDescription,
		Status:               obstacle.Status,
		RecipientAnswer:      obstacle.RecipientAnswer,
	}
	if obstacle.RecipientUser != nil {
		recipient := toUserResponse(obstacle.RecipientUser)
		resp.RecipientUser = &recipient
	}
	return resp
}

func toConflictResponse(conflict *models.Conflict) ConflictResponse {
	return ConflictResponse{
		ID:         conflict.ID,
		Task1:      toTaskResponse(&conflict.Task1),
		Task2:      toTaskResponse(&conflict.Task2),
		DaysOfWeek: conflict.DaysOfWeek,
	}
}

func toScheduleResponse(schedule *models.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:        schedule.ID,
		Task:      toTaskResponse(&schedule.Task),
		User:      toUserResponse(&schedule.User),
		Date:      schedule.Date.Format(isoDate),
		Generated: schedule.Generated,
	}
}

func toSpecialDateResponse(specialDate *models.SpecialDate) SpecialDateResponse {
	return SpecialDateResponse{
		ID:   specialDate.ID,
		Date: specialDate.Date.Format(isoDate),
		Type: specialDate.Type,
	}
}

func parseISODate(field, value string) (time.Time, error) {
	t, err := time.Parse(isoDate, value)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
