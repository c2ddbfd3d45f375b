package scheduler

import (
	"context"
	"sort"
	"time"

	"community-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
)

// Engine generates weekly schedules from snapshots
type Engine struct{}

// NewEngine creates a new engine
func NewEngine() *Engine {
	return &Engine{}
}

// state tracks the partial assignment during one run
type state struct {
	snap *Snapshot
	// perUserDay holds the tasks a user already carries on a date.
	perUserDay map[uuid.UUID]map[string][]uuid.UUID
	// perTaskDay counts assignments per task per date.
	perTaskDay  map[uuid.UUID]map[string]int
	assignments []Assignment
	usersByID   map[uuid.UUID]*models.User
	tasksByID   map[uuid.UUID]*models.Task
}

// Generate produces the schedule for snap.WeekStart's week. It is
// deterministic: the same snapshot yields byte-identical output. Cancellation
// via ctx discards all partial output.
func (e *Engine) Generate(ctx context.Context, snap *Snapshot) (*Result, error) {
	st := newState(snap)

	// Manual entries already occupy their slots. Seating them first makes the
	// duplicate, capacity and conflict checks see them without re-emitting
	// what storage already holds.
	for i := range snap.Manual {
		m := &snap.Manual[i]
		st.seed(m.TaskID, m.UserID, m.Date)
	}

	tasks := sortedTasks(snap.Tasks)
	days := weekDays(snap.WeekStart)

	// Permanent tasks first: prior-week assignees keep their task unless a
	// blocker applies this week.
	for _, task := range tasks {
		if !task.Permanent {
			continue
		}
		if err := ctxErr(ctx); err != nil {
			return nil, err
		}
		e.carryOver(st, task, days)
	}

	// Fairness fill for every open slot.
	var warnings []Warning
	for _, task := range tasks {
		if err := ctxErr(ctx); err != nil {
			return nil, err
		}
		for _, day := range days {
			if snap.SuppressedDates[isoDate(day)] {
				continue
			}
			if !task.OccursOn(models.DayOfWeekFromTime(day)) {
				continue
			}
			for st.count(task.ID, day) < task.ParticipantsLimit {
				candidate := e.pickCandidate(st, task, day)
				if candidate == nil {
					warnings = append(warnings, Warning{
						TaskID:   task.ID,
						TaskName: task.Name,
						Date:     day,
						Assigned: st.count(task.ID, day),
						Limit:    task.ParticipantsLimit,
					})
					break
				}
				st.assign(task.ID, candidate.ID, day)
			}
		}
	}

	infos := e.buildInfos(st, tasks, days)

	return &Result{
		Assignments: st.assignments,
		Warnings:    warnings,
		Infos:       infos,
	}, nil
}

// carryOver re-applies the prior week's assignments for a permanent task,
// per eligible day, skipping days a blocker makes infeasible.
func (e *Engine) carryOver(st *state, task models.Task, days []time.Time) {
	assignees := priorAssignees(st.snap.PriorWeek, task.ID)
	for _, userID := range assignees {
		user, ok := st.usersByID[userID]
		if !ok || !user.Enabled {
			continue
		}
		if !task.AllowsAnyRole(user.Roles) {
			continue
		}
		for _, day := range days {
			if st.snap.SuppressedDates[isoDate(day)] {
				continue
			}
			if !task.OccursOn(models.DayOfWeekFromTime(day)) {
				continue
			}
			if st.count(task.ID, day) >= task.ParticipantsLimit {
				continue
			}
			if e.hasObstacle(st.snap, userID, task.ID, day) {
				continue
			}
			if e.inConflict(st, userID, task.ID, day) {
				continue
			}
			st.assign(task.ID, userID, day)
		}
	}
}

// pickCandidate returns the best feasible user for (task, day), or nil.
// Selection: largest lastAssignedWeeksAgo, then fewest assigns in the last
// year, then smallest id. Stable and auditable.
func (e *Engine) pickCandidate(st *state, task models.Task, day time.Time) *models.User {
	var best *models.User
	var bestWeeks, bestYear int
	for i := range st.snap.Users {
		user := &st.snap.Users[i]
		if !e.feasible(st, user, task, day) {
			continue
		}
		weeks, year := e.fairness(st.snap, user.ID, task.ID)
		if best == nil ||
			weeks > bestWeeks ||
			(weeks == bestWeeks && year < bestYear) ||
			(weeks == bestWeeks && year == bestYear && user.ID.String() < best.ID.String()) {
			best = user
			bestWeeks = weeks
			bestYear = year
		}
	}
	return best
}

func (e *Engine) feasible(st *state, user *models.User, task models.Task, day time.Time) bool {
	if !user.Enabled {
		return false
	}
	if !task.AllowsAnyRole(user.Roles) {
		return false
	}
	if st.assignedTo(user.ID, task.ID, day) {
		return false
	}
	if e.hasObstacle(st.snap, user.ID, task.ID, day) {
		return false
	}
	if e.inConflict(st, user.ID, task.ID, day) {
		return false
	}
	return true
}

func (e *Engine) fairness(snap *Snapshot, userID, taskID uuid.UUID) (weeksAgo, assignsInYear int) {
	h, ok := snap.History[UserTaskKey{UserID: userID, TaskID: taskID}]
	if !ok || h.LastAssigned == nil {
		return NeverAssigned, h.AssignsInLastYear
	}
	return WeeksBetween(*h.LastAssigned, snap.WeekStart), h.AssignsInLastYear
}

// hasObstacle reports whether an approved obstacle blocks (user, task, day)
func (e *Engine) hasObstacle(snap *Snapshot, userID, taskID uuid.UUID, day time.Time) bool {
	for i := range snap.Obstacles {
		o := &snap.Obstacles[i]
		if o.UserID == userID && o.Blocks(taskID, day) {
			return true
		}
	}
	return false
}

// inConflict reports whether assigning the task would pair it with another
// task the user already carries that day, under a conflict active on that
// day of week.
func (e *Engine) inConflict(st *state, userID, taskID uuid.UUID, day time.Time) bool {
	dow := models.DayOfWeekFromTime(day)
	for _, otherID := range st.tasksOn(userID, day) {
		for i := range st.snap.Conflicts {
			c := &st.snap.Conflicts[i]
			if c.Involves(taskID, otherID) && c.AppliesOn(dow) {
				return true
			}
		}
	}
	return false
}

// buildInfos computes the per-(user, task, day) advisory matrix over the
// final assignment set.
func (e *Engine) buildInfos(st *state, tasks []models.Task, days []time.Time) map[uuid.UUID][]TaskInfo {
	infos := make(map[uuid.UUID][]TaskInfo, len(st.snap.Users))
	for i := range st.snap.Users {
		user := &st.snap.Users[i]
		var rows []TaskInfo
		for _, task := range tasks {
			weeks, _ := e.fairness(st.snap, user.ID, task.ID)
			h := st.snap.History[UserTaskKey{UserID: user.ID, TaskID: task.ID}]
			hasRole := task.AllowsAnyRole(user.Roles)
			for _, day := range days {
				if !task.OccursOn(models.DayOfWeekFromTime(day)) {
					continue
				}
				rows = append(rows, TaskInfo{
					TaskID:                     task.ID,
					TaskName:                   task.Name,
					Date:                       day,
					LastAssignedWeeksAgo:       weeks,
					WeeklyAssignsFromStatsDate: h.WeeklyAssignsFromStatsDate,
					HasRoleForTheTask:          hasRole,
					IsInConflict:               e.inConflict(st, user.ID, task.ID, day),
					HasObstacle:                e.hasObstacle(st.snap, user.ID, task.ID, day),
					AssignedToTheTask:          st.assignedTo(user.ID, task.ID, day),
					Visible:                    hasRole,
				})
			}
		}
		infos[user.ID] = rows
	}
	return infos
}

// ---- state helpers ----

func newState(snap *Snapshot) *state {
	st := &state{
		snap:       snap,
		perUserDay: make(map[uuid.UUID]map[string][]uuid.UUID),
		perTaskDay: make(map[uuid.UUID]map[string]int),
		usersByID:  make(map[uuid.UUID]*models.User, len(snap.Users)),
		tasksByID:  make(map[uuid.UUID]*models.Task, len(snap.Tasks)),
	}
	for i := range snap.Users {
		st.usersByID[snap.Users[i].ID] = &snap.Users[i]
	}
	for i := range snap.Tasks {
		st.tasksByID[snap.Tasks[i].ID] = &snap.Tasks[i]
	}
	return st
}

// seed records an occupied slot without emitting an assignment for it.
func (st *state) seed(taskID, userID uuid.UUID, day time.Time) {
	key := isoDate(day)
	if st.perUserDay[userID] == nil {
		st.perUserDay[userID] = make(map[string][]uuid.UUID)
	}
	st.perUserDay[userID][key] = append(st.perUserDay[userID][key], taskID)
	if st.perTaskDay[taskID] == nil {
		st.perTaskDay[taskID] = make(map[string]int)
	}
	st.perTaskDay[taskID][key]++
}

func (st *state) assign(taskID, userID uuid.UUID, day time.Time) {
	st.seed(taskID, userID, day)
	st.assignments = append(st.assignments, Assignment{TaskID: taskID, UserID: userID, Date: day})
}

func (st *state) count(taskID uuid.UUID, day time.Time) int {
	return st.perTaskDay[taskID][isoDate(day)]
}

func (st *state) tasksOn(userID uuid.UUID, day time.Time) []uuid.UUID {
	return st.perUserDay[userID][isoDate(day)]
}

func (st *state) assignedTo(userID, taskID uuid.UUID, day time.Time) bool {
	for _, id := range st.tasksOn(userID, day) {
		if id == taskID {
			return true
		}
	}
	return false
}

// ---- pure helpers ----

func sortedTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SortOrder != out[j].SortOrder {
			return out[i].SortOrder < out[j].SortOrder
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

func weekDays(weekStart time.Time) []time.Time {
	days := make([]time.Time, 7)
	for i := 0; i < 7; i++ {
		days[i] = weekStart.AddDate(0, 0, i)
	}
	return days
}

// priorAssignees returns the distinct users assigned to the task in the
// prior week, in id order for determinism.
func priorAssignees(prior []models.Schedule, taskID uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var out []uuid.UUID
	for i := range prior {
		if prior[i].TaskID == taskID && !seen[prior[i].UserID] {
			seen[prior[i].UserID] = true
			out = append(out, prior[i].UserID)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func ctxErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
