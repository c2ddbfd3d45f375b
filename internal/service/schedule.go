package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"community-scheduler-backend/internal/database/models"
	apperrors "community-scheduler-backend/internal/errors"
	"community-scheduler-backend/internal/repository"
	"community-scheduler-backend/internal/scheduler"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleService handles manual schedule edits, whole-week assignment and
// generation of weekly schedules
type ScheduleService struct {
	scheduleRepo    repository.ScheduleRepositoryInterface
	userRepo        repository.UserRepositoryInterface
	taskRepo        repository.TaskRepositoryInterface
	conflictRepo    repository.ConflictRepositoryInterface
	obstacleRepo    repository.ObstacleRepositoryInterface
	specialDateRepo repository.SpecialDateRepositoryInterface
	weekRevRepo     repository.WeekRevisionRepositoryInterface
	engine          *scheduler.Engine
	validator       *validator.Validate
	statsDate       time.Time
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	scheduleRepo repository.ScheduleRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	conflictRepo repository.ConflictRepositoryInterface,
	obstacleRepo repository.ObstacleRepositoryInterface,
	specialDateRepo repository.SpecialDateRepositoryInterface,
	weekRevRepo repository.WeekRevisionRepositoryInterface,
	engine *scheduler.Engine,
	statsDate time.Time,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepo:    scheduleRepo,
		userRepo:        userRepo,
		taskRepo:        taskRepo,
		conflictRepo:    conflictRepo,
		obstacleRepo:    obstacleRepo,
		specialDateRepo: specialDateRepo,
		weekRevRepo:     weekRevRepo,
		engine:          engine,
		validator:       validator.New(),
		statsDate:       statsDate,
	}
}

// CreateScheduleRequest represents the payload for one manual assignment
type CreateScheduleRequest struct {
	UserID          uuid.UUID `json:"userId" validate:"required"`
	TaskID          uuid.UUID `json:"taskId" validate:"required"`
	Date            string    `json:"date" validate:"required"`
	IgnoreConflicts bool      `json:"ignoreConflicts"`
}

// WeekAssignmentRequest represents a whole-week manual assignment or removal
type WeekAssignmentRequest struct {
	UserID          uuid.UUID `json:"userId" validate:"required"`
	TaskID          uuid.UUID `json:"taskId" validate:"required"`
	FromDate        string    `json:"fromDate" validate:"required"`
	ToDate          string    `json:"toDate" validate:"required"`
	IgnoreConflicts bool      `json:"ignoreConflicts"`
}

// GenerateWeekRequest represents a schedule generation trigger
type GenerateWeekRequest struct {
	WeekStart string `json:"weekStart" validate:"required"`
	// Revision is the week revision the caller last read. Generation is
	// refused when the week changed since.
	Revision int64 `json:"revision" validate:"gte=0"`
}

// GenerationWarning reports one slot the generator could not fill
type GenerationWarning struct {
	TaskName string `json:"taskName"`
	Date     string `json:"date"`
	Assigned int    `json:"assigned"`
	Limit    int    `json:"limit"`
}

// GenerationResponse is the outcome of one generation run
type GenerationResponse struct {
	WeekStart   string              `json:"weekStart"`
	Revision    int64               `json:"revision"`
	Assignments []ScheduleResponse  `json:"assignments"`
	Warnings    []GenerationWarning `json:"warnings"`
}

// WeekRevisionResponse reports the current revision of a schedule week
type WeekRevisionResponse struct {
	WeekStart string `json:"weekStart"`
	Revision  int64  `json:"revision"`
}

// UserTaskDependency is the week-level feasibility summary of one task for
// one user, shown in the schedule creator view
type UserTaskDependency struct {
	TaskID                     uuid.UUID `json:"taskId"`
	TaskName                   string    `json:"taskName"`
	LastAssignedWeeksAgo       int       `json:"lastAssignedWeeksAgo"`
	WeeklyAssignsFromStatsDate int       `json:"numberOfWeeklyAssignsFromStatsDate"`
	HasRoleForTheTask          bool      `json:"hasRoleForTheTask"`
	IsInConflict               bool      `json:"isInConflict"`
	HasObstacle                bool      `json:"hasObstacle"`
	AssignedToTheTask          bool      `json:"assignedToTheTask"`
	Visible                    bool      `json:"visible"`
}

// UserTaskDependencyDaily is the day-level variant of UserTaskDependency.
// Each condition widens to the day-of-week identifiers on which it holds
// within the week.
type UserTaskDependencyDaily struct {
	TaskID                     uuid.UUID `json:"taskId"`
	TaskName                   string    `json:"taskName"`
	LastAssignedWeeksAgo       int       `json:"lastAssignedWeeksAgo"`
	WeeklyAssignsFromStatsDate int       `json:"numberOfWeeklyAssignsFromStatsDate"`
	HasRoleForTheTask          bool      `json:"hasRoleForTheTask"`
	IsInConflict               []string  `json:"isInConflict"`
	HasObstacle                []string  `json:"hasObstacle"`
	AssignedToTheTask          []string  `json:"assignedToTheTask"`
	Visible                    bool      `json:"visible"`
}

// UserShortInfo summarizes one user's week as compact task strings, grouped
// under the supervising role's name. Groups and the strings inside follow
// role sort order, then task sort order.
type UserShortInfo struct {
	UserID       uuid.UUID           `json:"userId"`
	UserName     string              `json:"userName"`
	GroupedTasks map[string][]string `json:"groupedTasksInfoStrings"`
}

// TaskShortInfo summarizes one task's week: who performs it on each day
type TaskShortInfo struct {
	TaskID    uuid.UUID           `json:"taskId"`
	TaskName  string              `json:"taskName"`
	GroupName string              `json:"groupName"`
	ByDay     map[string][]string `json:"usersByDay"`
}

// CreateSchedule creates one manual assignment after the full validation
// chain: enabled user, task day, role fit, obstacle, duplicate, capacity,
// and conflicts unless explicitly overridden.
func (s *ScheduleService) CreateSchedule(req *CreateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	date, err := parseISODate("date", req.Date)
	if err != nil {
		return nil, err
	}

	user, task, err := s.loadUserAndTask(req.UserID, req.TaskID)
	if err != nil {
		return nil, err
	}
	if err := s.validateAssignment(user, task, date, req.IgnoreConflicts); err != nil {
		return nil, err
	}

	schedule := &models.Schedule{
		TaskID: task.ID,
		UserID: user.ID,
		Date:   date,
	}
	if err := s.scheduleRepo.Create(schedule); err != nil {
		return nil, err
	}

	created, err := s.scheduleRepo.GetByID(schedule.ID)
	if err != nil {
		return nil, err
	}
	resp := toScheduleResponse(created)
	return &resp, nil
}

// AssignWeek assigns the user to the task on every task day of the week.
// The period must run Monday through Sunday.
func (s *ScheduleService) AssignWeek(req *WeekAssignmentRequest) ([]ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	weekStart, err := s.parseWeek(req.FromDate, req.ToDate)
	if err != nil {
		return nil, err
	}

	user, task, err := s.loadUserAndTask(req.UserID, req.TaskID)
	if err != nil {
		return nil, err
	}

	days := taskDaysInWeek(task, weekStart)
	if len(days) == 0 {
		return nil, apperrors.ErrTaskNotOnDay
	}
	for _, day := range days {
		if err := s.validateAssignment(user, task, day, req.IgnoreConflicts); err != nil {
			return nil, err
		}
	}

	out := make([]ScheduleResponse, 0, len(days))
	for _, day := range days {
		schedule := &models.Schedule{TaskID: task.ID, UserID: user.ID, Date: day}
		if err := s.scheduleRepo.Create(schedule); err != nil {
			return nil, err
		}
		created, err := s.scheduleRepo.GetByID(schedule.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, toScheduleResponse(created))
	}
	return out, nil
}

// UnassignWeek removes the user's entries for the task across the week.
// The period must run Monday through Sunday.
func (s *ScheduleService) UnassignWeek(req *WeekAssignmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}
	weekStart, err := s.parseWeek(req.FromDate, req.ToDate)
	if err != nil {
		return err
	}
	user, task, err := s.loadUserAndTask(req.UserID, req.TaskID)
	if err != nil {
		return err
	}
	return s.scheduleRepo.DeleteForUserTaskBetween(user.ID, task.ID, weekStart, weekStart.AddDate(0, 0, 6))
}

// GetSchedule retrieves a schedule entry by ID
func (s *ScheduleService) GetSchedule(id uuid.UUID) (*ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, err
	}
	resp := toScheduleResponse(schedule)
	return &resp, nil
}

// ListSchedulesInWeek retrieves all entries of one Monday-to-Sunday week
func (s *ScheduleService) ListSchedulesInWeek(fromDate, toDate string) ([]ScheduleResponse, error) {
	weekStart, err := s.parseWeek(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	schedules, err := s.scheduleRepo.GetByDateBetween(weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	return toScheduleResponses(schedules), nil
}

// ListSchedulesByUser retrieves all entries for a user
func (s *ScheduleService) ListSchedulesByUser(userID uuid.UUID) ([]ScheduleResponse, error) {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	schedules, err := s.scheduleRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return toScheduleResponses(schedules), nil
}

// DeleteSchedule removes one assignment
func (s *ScheduleService) DeleteSchedule(id uuid.UUID) error {
	if _, err := s.scheduleRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScheduleNotFound
		}
		return err
	}
	return s.scheduleRepo.Delete(id)
}

// GetWeekRevision returns the week's current revision, creating it on first
// read so the client always has a value to hand back
func (s *ScheduleService) GetWeekRevision(weekStart string) (*WeekRevisionResponse, error) {
	start, err := s.parseWeekStart(weekStart)
	if err != nil {
		return nil, err
	}
	rev, err := s.weekRevRepo.Get(start)
	if err != nil {
		return nil, err
	}
	return &WeekRevisionResponse{
		WeekStart: rev.WeekStart.Format(isoDate),
		Revision:  rev.Revision,
	}, nil
}

// GenerateWeek produces the schedule for one week and replaces the week's
// previously generated entries. Manual entries survive. The caller states
// the week revision it generated against; a concurrent change rejects the
// run with a version conflict.
func (s *ScheduleService) GenerateWeek(ctx context.Context, req *GenerateWeekRequest) (*GenerationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	weekStart, err := s.parseWeekStart(req.WeekStart)
	if err != nil {
		return nil, err
	}

	current, err := s.weekRevRepo.Get(weekStart)
	if err != nil {
		return nil, err
	}
	if current.Revision != req.Revision {
		return nil, apperrors.NewVersionConflictError("schedule week", req.Revision, current.Revision)
	}

	snap, err := s.buildSnapshot(weekStart)
	if err != nil {
		return nil, err
	}

	result, err := s.engine.Generate(ctx, snap)
	if err != nil {
		return nil, err
	}

	weekEnd := weekStart.AddDate(0, 0, 6)
	entries := make([]models.Schedule, len(result.Assignments))
	for i, a := range result.Assignments {
		entries[i] = models.Schedule{
			TaskID:    a.TaskID,
			UserID:    a.UserID,
			Date:      a.Date,
			Generated: true,
		}
	}
	if err := s.scheduleRepo.ReplaceGeneratedWeek(weekStart, weekEnd, entries); err != nil {
		return nil, err
	}

	newRev, ok, err := s.weekRevRepo.Bump(weekStart, req.Revision)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewVersionConflictError("schedule week", req.Revision, req.Revision+1)
	}

	stored, err := s.scheduleRepo.GetByDateBetween(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	warnings := make([]GenerationWarning, len(result.Warnings))
	for i, w := range result.Warnings {
		warnings[i] = GenerationWarning{
			TaskName: w.TaskName,
			Date:     w.Date.Format(isoDate),
			Assigned: w.Assigned,
			Limit:    w.Limit,
		}
	}

	return &GenerationResponse{
		WeekStart:   weekStart.Format(isoDate),
		Revision:    newRev,
		Assignments: toScheduleResponses(stored),
		Warnings:    warnings,
	}, nil
}

// ListAvailableTasks retrieves the tasks the user's roles allow
func (s *ScheduleService) ListAvailableTasks(userID uuid.UUID) ([]TaskResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}
	var out []TaskResponse
	for i := range tasks {
		if tasks[i].AllowsAnyRole(user.Roles) {
			out = append(out, toTaskResponse(&tasks[i]))
		}
	}
	return out, nil
}

// GetUserDependencies computes the week-level feasibility of every task for
// the user, against the stored schedule of that week
func (s *ScheduleService) GetUserDependencies(userID uuid.UUID, fromDate, toDate string) ([]UserTaskDependency, error) {
	weekStart, err := s.parseWeek(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}
	weekEnd := weekStart.AddDate(0, 0, 6)
	userWeek, err := s.scheduleRepo.GetByUserAndDateBetween(userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	obstacles, err := s.obstacleRepo.GetApprovedInRange(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	conflicts, err := s.conflictRepo.GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]UserTaskDependency, 0, len(tasks))
	for i := range tasks {
		task := &tasks[i]

		last, err := s.scheduleRepo.LastCompletionDate(userID, task.ID, weekStart)
		if err != nil {
			return nil, err
		}
		lastWeeksAgo := scheduler.NeverAssigned
		if last != nil {
			lastWeeksAgo = scheduler.WeeksBetween(*last, weekStart)
		}

		weeklyAssigns, err := s.scheduleRepo.CountDistinctWeeksForUserTask(userID, task.ID, s.statsDate)
		if err != nil {
			return nil, err
		}

		hasRole := task.AllowsAnyRole(user.Roles)
		dep := UserTaskDependency{
			TaskID:                     task.ID,
			TaskName:                   task.Name,
			LastAssignedWeeksAgo:       lastWeeksAgo,
			WeeklyAssignsFromStatsDate: int(weeklyAssigns),
			HasRoleForTheTask:          hasRole,
			HasObstacle:                userHasObstacleInWeek(obstacles, userID, task, weekStart),
			AssignedToTheTask:          userAssignedToTask(userWeek, task.ID),
			IsInConflict:               userInConflictInWeek(userWeek, conflicts, task, weekStart),
			Visible:                    hasRole,
		}
		out = append(out, dep)
	}
	return out, nil
}

// GetUserDependenciesDaily computes the same feasibility view day by day:
// for every task, the days of the week on which a conflict, an obstacle or an
// existing assignment applies to the user.
func (s *ScheduleService) GetUserDependenciesDaily(userID uuid.UUID, fromDate, toDate string) ([]UserTaskDependencyDaily, error) {
	weekStart, err := s.parseWeek(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}
	weekEnd := weekStart.AddDate(0, 0, 6)
	userWeek, err := s.scheduleRepo.GetByUserAndDateBetween(userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	obstacles, err := s.obstacleRepo.GetApprovedInRange(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	conflicts, err := s.conflictRepo.GetAll()
	if err != nil {
		return nil, err
	}

	out := make([]UserTaskDependencyDaily, 0, len(tasks))
	for i := range tasks {
		task := &tasks[i]

		last, err := s.scheduleRepo.LastCompletionDate(userID, task.ID, weekStart)
		if err != nil {
			return nil, err
		}
		lastWeeksAgo := scheduler.NeverAssigned
		if last != nil {
			lastWeeksAgo = scheduler.WeeksBetween(*last, weekStart)
		}

		weeklyAssigns, err := s.scheduleRepo.CountDistinctWeeksForUserTask(userID, task.ID, s.statsDate)
		if err != nil {
			return nil, err
		}

		var conflictDays, obstacleDays, assignedDays []string
		for d := 0; d < 7; d++ {
			day := weekStart.AddDate(0, 0, d)
			dow := models.DayOfWeekFromTime(day)
			if !task.OccursOn(dow) {
				continue
			}
			if userInConflictOnDay(userWeek, conflicts, task.ID, day) {
				conflictDays = append(conflictDays, string(dow))
			}
			if userHasObstacleOnDay(obstacles, userID, task.ID, day) {
				obstacleDays = append(obstacleDays, string(dow))
			}
			if userAssignedOnDay(userWeek, task.ID, day) {
				assignedDays = append(assignedDays, string(dow))
			}
		}

		hasRole := task.AllowsAnyRole(user.Roles)
		out = append(out, UserTaskDependencyDaily{
			TaskID:                     task.ID,
			TaskName:                   task.Name,
			LastAssignedWeeksAgo:       lastWeeksAgo,
			WeeklyAssignsFromStatsDate: int(weeklyAssigns),
			HasRoleForTheTask:          hasRole,
			IsInConflict:               conflictDays,
			HasObstacle:                obstacleDays,
			AssignedToTheTask:          assignedDays,
			Visible:                    hasRole,
		})
	}
	return out, nil
}

// GetWeekShortInfoByUsers summarizes the week per user, one compact string
// per task, grouped by the task's supervising role. A task held on all its
// days collapses to its abbreviation.
func (s *ScheduleService) GetWeekShortInfoByUsers(fromDate, toDate string) ([]UserShortInfo, error) {
	weekStart, err := s.parseWeek(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	schedules, err := s.scheduleRepo.GetByDateBetween(weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}

	type userAgg struct {
		user  *models.User
		tasks map[uuid.UUID]*taskDays
	}
	byUser := make(map[uuid.UUID]*userAgg)
	var order []uuid.UUID
	for i := range schedules {
		entry := &schedules[i]
		agg, ok := byUser[entry.UserID]
		if !ok {
			agg = &userAgg{user: &entry.User, tasks: make(map[uuid.UUID]*taskDays)}
			byUser[entry.UserID] = agg
			order = append(order, entry.UserID)
		}
		td, ok := agg.tasks[entry.TaskID]
		if !ok {
			td = &taskDays{task: &entry.Task}
			agg.tasks[entry.TaskID] = td
		}
		td.days = append(td.days, models.DayOfWeekFromTime(entry.Date))
	}

	sort.Slice(order, func(i, j int) bool {
		a, b := byUser[order[i]].user, byUser[order[j]].user
		if a.Surname != b.Surname {
			return a.Surname < b.Surname
		}
		return a.Name < b.Name
	})

	out := make([]UserShortInfo, 0, len(order))
	for _, userID := range order {
		agg := byUser[userID]
		var taskIDs []uuid.UUID
		for id := range agg.tasks {
			taskIDs = append(taskIDs, id)
		}
		sort.Slice(taskIDs, func(i, j int) bool {
			a, b := agg.tasks[taskIDs[i]].task, agg.tasks[taskIDs[j]].task
			if a.SupervisorRole.SortOrder != b.SupervisorRole.SortOrder {
				return a.SupervisorRole.SortOrder < b.SupervisorRole.SortOrder
			}
			if a.SortOrder != b.SortOrder {
				return a.SortOrder < b.SortOrder
			}
			return a.ID.String() < b.ID.String()
		})
		grouped := make(map[string][]string, len(taskIDs))
		for _, id := range taskIDs {
			td := agg.tasks[id]
			grouped[td.task.SupervisorRole.Name] = append(grouped[td.task.SupervisorRole.Name], td.shortInfo())
		}
		out = append(out, UserShortInfo{
			UserID:       userID,
			UserName:     agg.user.FullName(),
			GroupedTasks: grouped,
		})
	}
	return out, nil
}

// GetWeekShortInfoByTasks summarizes the week per task: who performs it on
// each day, grouped under the supervisor role's print group name
func (s *ScheduleService) GetWeekShortInfoByTasks(fromDate, toDate string) ([]TaskShortInfo, error) {
	weekStart, err := s.parseWeek(fromDate, toDate)
	if err != nil {
		return nil, err
	}
	schedules, err := s.scheduleRepo.GetByDateBetween(weekStart, weekStart.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}

	byTask := make(map[uuid.UUID]map[string][]string)
	for i := range schedules {
		entry := &schedules[i]
		if byTask[entry.TaskID] == nil {
			byTask[entry.TaskID] = make(map[string][]string)
		}
		day := string(models.DayOfWeekFromTime(entry.Date))
		byTask[entry.TaskID][day] = append(byTask[entry.TaskID][day], entry.User.FullName())
	}

	var out []TaskShortInfo
	for i := range tasks {
		task := &tasks[i]
		days, ok := byTask[task.ID]
		if !ok {
			continue
		}
		for _, names := range days {
			sort.Strings(names)
		}
		out = append(out, TaskShortInfo{
			TaskID:    task.ID,
			TaskName:  task.Name,
			GroupName: task.SupervisorRole.AssignedTasksGroupName,
			ByDay:     days,
		})
	}
	return out, nil
}

// ---- validation chain ----

func (s *ScheduleService) loadUserAndTask(userID, taskID uuid.UUID) (*models.User, *models.Task, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, err
	}
	task, err := s.taskRepo.GetByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.ErrTaskNotFound
		}
		return nil, nil, err
	}
	return user, task, nil
}

func (s *ScheduleService) validateAssignment(user *models.User, task *models.Task, date time.Time, ignoreConflicts bool) error {
	if !user.Enabled {
		return apperrors.ErrUserDisabled
	}
	if !task.OccursOn(models.DayOfWeekFromTime(date)) {
		return apperrors.ErrTaskNotOnDay
	}
	if !task.AllowsAnyRole(user.Roles) {
		return apperrors.ErrRoleNotAllowedForTask
	}

	blocking, err := s.obstacleRepo.GetApprovedForUserTaskDate(user.ID, task.ID, date)
	if err != nil {
		return err
	}
	if len(blocking) > 0 {
		return apperrors.ErrUserHasApprovedObstacle
	}

	exists, err := s.scheduleRepo.ExistsForUserTaskDate(user.ID, task.ID, date)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.ErrScheduleExists
	}

	count, err := s.scheduleRepo.CountForTaskAndDate(task.ID, date)
	if err != nil {
		return err
	}
	if count >= int64(task.ParticipantsLimit) {
		return apperrors.NewValidationError("date",
			fmt.Sprintf("task %q already has %d participants on %s", task.Name, count, date.Format(isoDate)))
	}

	if !ignoreConflicts {
		if err := s.checkConflicts(user.ID, task.ID, date); err != nil {
			return err
		}
	}
	return nil
}

func (s *ScheduleService) checkConflicts(userID, taskID uuid.UUID, date time.Time) error {
	sameDay, err := s.scheduleRepo.GetByUserAndDate(userID, date)
	if err != nil {
		return err
	}
	dow := models.DayOfWeekFromTime(date)
	for i := range sameDay {
		conflicts, err := s.conflictRepo.GetForPair(taskID, sameDay[i].TaskID)
		if err != nil {
			return err
		}
		for j := range conflicts {
			if conflicts[j].AppliesOn(dow) {
				return apperrors.ErrScheduleInConflict
			}
		}
	}
	return nil
}

// ---- snapshot assembly ----

// buildSnapshot loads one consistent view of everything a generation run
// reads: the catalog, the week's approved obstacles and manual entries, the
// prior week for permanence and the fairness history.
func (s *ScheduleService) buildSnapshot(weekStart time.Time) (*scheduler.Snapshot, error) {
	weekEnd := weekStart.AddDate(0, 0, 6)

	users, err := s.userRepo.GetEnabled()
	if err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.GetAll()
	if err != nil {
		return nil, err
	}
	conflicts, err := s.conflictRepo.GetAll()
	if err != nil {
		return nil, err
	}
	obstacles, err := s.obstacleRepo.GetApprovedInRange(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	priorWeek, err := s.scheduleRepo.GetByDateBetween(weekStart.AddDate(0, 0, -7), weekStart.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}

	// Manual entries of the target week survive regeneration, so the engine
	// has to seat around them.
	currentWeek, err := s.scheduleRepo.GetByDateBetween(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	var manual []models.Schedule
	for i := range currentWeek {
		if !currentWeek[i].Generated {
			manual = append(manual, currentWeek[i])
		}
	}

	suppressed := make(map[string]bool)
	specialDates, err := s.specialDateRepo.GetInRange(weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	for i := range specialDates {
		if specialDates[i].Type == models.SpecialDateTypeFeast {
			suppressed[specialDates[i].Date.Format(isoDate)] = true
		}
	}

	history := make(map[scheduler.UserTaskKey]scheduler.UserTaskHistory)
	yearAgo := weekStart.AddDate(0, 0, -365)
	for i := range users {
		for j := range tasks {
			key := scheduler.UserTaskKey{UserID: users[i].ID, TaskID: tasks[j].ID}

			last, err := s.scheduleRepo.LastCompletionDate(users[i].ID, tasks[j].ID, weekStart)
			if err != nil {
				return nil, err
			}
			inYear, err := s.scheduleRepo.CountForUserAndTaskBetween(
				users[i].ID, tasks[j].ID, yearAgo, weekStart.AddDate(0, 0, -1))
			if err != nil {
				return nil, err
			}
			weekly, err := s.scheduleRepo.CountDistinctWeeksForUserTask(users[i].ID, tasks[j].ID, s.statsDate)
			if err != nil {
				return nil, err
			}

			history[key] = scheduler.UserTaskHistory{
				LastAssigned:               last,
				AssignsInLastYear:          int(inYear),
				WeeklyAssignsFromStatsDate: int(weekly),
			}
		}
	}

	return &scheduler.Snapshot{
		WeekStart:       weekStart,
		Users:           users,
		Tasks:           tasks,
		Conflicts:       conflicts,
		Obstacles:       obstacles,
		PriorWeek:       priorWeek,
		Manual:          manual,
		History:         history,
		SuppressedDates: suppressed,
	}, nil
}

// ---- helpers ----

func (s *ScheduleService) parseWeekStart(value string) (time.Time, error) {
	start, err := parseISODate("weekStart", value)
	if err != nil {
		return time.Time{}, err
	}
	if models.DayOfWeekFromTime(start) != models.Monday {
		return time.Time{}, apperrors.ErrWeekNotMondayToSunday
	}
	return start, nil
}

// parseWeek validates a Monday-to-Sunday period and returns its Monday
func (s *ScheduleService) parseWeek(fromValue, toValue string) (time.Time, error) {
	from, err := parseISODate("fromDate", fromValue)
	if err != nil {
		return time.Time{}, err
	}
	to, err := parseISODate("toDate", toValue)
	if err != nil {
		return time.Time{}, err
	}
	if models.DayOfWeekFromTime(from) != models.Monday || !to.Equal(from.AddDate(0, 0, 6)) {
		return time.Time{}, apperrors.ErrWeekNotMondayToSunday
	}
	return from, nil
}

func taskDaysInWeek(task *models.Task, weekStart time.Time) []time.Time {
	var days []time.Time
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		if task.OccursOn(models.DayOfWeekFromTime(day)) {
			days = append(days, day)
		}
	}
	return days
}

func userAssignedToTask(entries []models.Schedule, taskID uuid.UUID) bool {
	for i := range entries {
		if entries[i].TaskID == taskID {
			return true
		}
	}
	return false
}

func userHasObstacleOnDay(obstacles []models.Obstacle, userID, taskID uuid.UUID, day time.Time) bool {
	for i := range obstacles {
		if obstacles[i].UserID == userID && obstacles[i].Blocks(taskID, day) {
			return true
		}
	}
	return false
}

func userHasObstacleInWeek(obstacles []models.Obstacle, userID uuid.UUID, task *models.Task, weekStart time.Time) bool {
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		if !task.OccursOn(models.DayOfWeekFromTime(day)) {
			continue
		}
		if userHasObstacleOnDay(obstacles, userID, task.ID, day) {
			return true
		}
	}
	return false
}

func userAssignedOnDay(entries []models.Schedule, taskID uuid.UUID, day time.Time) bool {
	for i := range entries {
		if entries[i].TaskID == taskID && entries[i].Date.Equal(day) {
			return true
		}
	}
	return false
}

func userInConflictOnDay(userWeek []models.Schedule, conflicts []models.Conflict, taskID uuid.UUID, day time.Time) bool {
	dow := models.DayOfWeekFromTime(day)
	for i := range userWeek {
		if !userWeek[i].Date.Equal(day) {
			continue
		}
		for j := range conflicts {
			if conflicts[j].Involves(taskID, userWeek[i].TaskID) && conflicts[j].AppliesOn(dow) {
				return true
			}
		}
	}
	return false
}

func userInConflictInWeek(userWeek []models.Schedule, conflicts []models.Conflict, task *models.Task, weekStart time.Time) bool {
	for i := range userWeek {
		dow := models.DayOfWeekFromTime(userWeek[i].Date)
		if !task.OccursOn(dow) {
			continue
		}
		for j := range conflicts {
			if conflicts[j].Involves(task.ID, userWeek[i].TaskID) && conflicts[j].AppliesOn(dow) {
				return true
			}
		}
	}
	return false
}

// taskDays collects the days one user carries one task across a week
type taskDays struct {
	task *models.Task
	days []models.DayOfWeek
}

// shortInfo renders "abbrev (MONDAY, FRIDAY)"; a task held on all of its
// days collapses to the bare abbreviation
func (td *taskDays) shortInfo() string {
	label := td.task.NameAbbrev
	if label == "" {
		label = td.task.Name
	}
	if len(td.days) >= len(td.task.DaysOfWeek) {
		return label
	}
	present := make(map[models.DayOfWeek]bool, len(td.days))
	for _, d := range td.days {
		present[d] = true
	}
	var parts []string
	for _, d := range models.AllDaysOfWeek {
		if present[d] {
			parts = append(parts, string(d))
		}
	}
	return label + " (" + strings.Join(parts, ", ") + ")"
}

func toScheduleResponses(schedules []models.Schedule) []ScheduleResponse {
	out := make([]ScheduleResponse, len(schedules))
	for i := range schedules {
		out[i] = toScheduleResponse(&schedules[i])
	}
	return out
}
