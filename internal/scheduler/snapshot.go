// Package scheduler implements the weekly schedule generation engine. It is
// deliberately pure: callers assemble a consistent Snapshot of the catalog,
// obstacle and history state, and Generate produces assignments, advisory
// infos and under-capacity warnings without touching storage. Concurrent
// generation runs therefore never observe half-applied transitions.
package scheduler

import (
	"time"

	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// NeverAssigned is the lastAssignedWeeksAgo value for a user who has never
// performed the task.
const NeverAssigned = 1 << 30

// UserTaskKey identifies a (user, task) pair in history maps
type UserTaskKey struct {
	UserID uuid.UUID
	TaskID uuid.UUID
}

// UserTaskHistory is the per-pair slice of historical statistics the
// fairness rule ranks on
type UserTaskHistory struct {
	// LastAssigned is the most recent date the user performed the task,
	// strictly before the generated week. Nil when never.
	LastAssigned *time.Time
	// AssignsInLastYear counts assignments in the 365 days before the week.
	AssignsInLastYear int
	// WeeklyAssignsFromStatsDate counts distinct weeks since the statistics
	// epoch in which the user was assigned at least once to the task.
	WeeklyAssignsFromStatsDate int
}

// Snapshot is one consistent view of everything generation reads
type Snapshot struct {
	// WeekStart is the Monday of the target week.
	WeekStart time.Time
	// Users are the enabled users with roles preloaded.
	Users []models.User
	// Tasks are all tasks with allowed roles preloaded.
	Tasks []models.Task
	// Conflicts are all declared task conflicts.
	Conflicts []models.Conflict
	// Obstacles are the APPROVED obstacles overlapping the week, tasks
	// preloaded.
	Obstacles []models.Obstacle
	// PriorWeek are the assignments of week W-1, used for permanent-task
	// carryover.
	PriorWeek []models.Schedule
	// Manual are the target week's manual entries. They survive generation,
	// so the engine seats around them and never re-emits them.
	Manual []models.Schedule
	// History carries the fairness statistics per (user, task).
	History map[UserTaskKey]UserTaskHistory
	// SuppressedDates are calendar dates excluded from generation
	// (FEAST special dates), keyed by ISO date.
	SuppressedDates map[string]bool
}

// Assignment is one generated (task, user, date) entry
type Assignment struct {
	TaskID uuid.UUID
	UserID uuid.UUID
	Date   time.Time
}

// Warning reports a task slot the engine could not fill. Under-capacity is
// advisory, never fatal.
type Warning struct {
	TaskID   uuid.UUID
	TaskName string
	Date     time.Time
	Assigned int
	Limit    int
}

// TaskInfo is the per-(user, task, day) feasibility advisory
type TaskInfo struct {
	TaskID                     uuid.UUID
	TaskName                   string
	Date                       time.Time
	LastAssignedWeeksAgo       int
	WeeklyAssignsFromStatsDate int
	HasRoleForTheTask          bool
	IsInConflict               bool
	HasObstacle                bool
	AssignedToTheTask          bool
	Visible                    bool
}

// Result is the output of one generation run
type Result struct {
	Assignments []Assignment
	Warnings    []Warning
	// Infos maps each user to the advisory rows for every task and day of
	// the week, in task order then day order.
	Infos map[uuid.UUID][]TaskInfo
}

// WeeksBetween returns how many whole weeks separate the Mondays of the two
// dates. Used for lastAssignedWeeksAgo.
func WeeksBetween(earlier, later time.Time) int {
	a := models.WeekStartOf(earlier)
	b := models.WeekStartOf(later)
	return int(b.Sub(a).Hours() / (24 * 7))
}
