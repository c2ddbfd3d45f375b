package service

import (
	"errors"
	"time"

	apperrors "community-scheduler-backend/internal/errors"
	"community-scheduler-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatisticsService computes per-user workload statistics
type StatisticsService struct {
	scheduleRepo repository.ScheduleRepositoryInterface
	userRepo     repository.UserRepositoryInterface
	taskRepo     repository.TaskRepositoryInterface
	statsDate    time.Time
	now          func() time.Time
}

// NewStatisticsService creates a new statistics service. statsDate is the
// epoch from which the "current period" rates are counted.
func NewStatisticsService(
	scheduleRepo repository.ScheduleRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	taskRepo repository.TaskRepositoryInterface,
	statsDate time.Time,
) *StatisticsService {
	return &StatisticsService{
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		taskRepo:     taskRepo,
		statsDate:    statsDate,
		now:          time.Now,
	}
}

// UserTaskStatistics is one row of a user's statistics: their standing for a
// single task
type UserTaskStatistics struct {
	TaskName       string `json:"taskName"`
	TaskAbbrev     string `json:"taskAbbrev"`
	LastAssignment string `json:"lastAssignmentDate"`
	// NormalizedOccurrencesFromStatsDate is the share of the task's active
	// weeks since the statistics epoch in which the user carried it.
	NormalizedOccurrencesFromStatsDate float64 `json:"normalizedOccurrencesFromStatsDate"`
	// NormalizedOccurrencesAllTime is the same share over the full history.
	NormalizedOccurrencesAllTime float64 `json:"normalizedOccurrencesAllTime"`
}

// UserStatisticsResponse is the full statistics view for one user
type UserStatisticsResponse struct {
	UserID   uuid.UUID            `json:"userId"`
	UserName string               `json:"userName"`
	Tasks    []UserTaskStatistics `json:"tasks"`
}

// allTimeEpoch bounds the "all time" window; anything earlier predates the
// community's records.
var allTimeEpoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// GetUserStatistics computes the user's standing for every task, in task
// sort order. Tasks the task has never been scheduled for yield a zero rate
// rather than an error.
func (s *StatisticsService) GetUserStatistics(userID uuid.UUID) (*UserStatisticsResponse, error) {
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

	upTo := s.now().UTC()
	rows := make([]UserTaskStatistics, 0, len(tasks))
	for i := range tasks {
		task := &tasks[i]

		last, err := s.scheduleRepo.LastCompletionDate(userID, task.ID, upTo)
		if err != nil {
			return nil, err
		}

		fromStats, err := s.normalizedRate(userID, task.ID, s.statsDate)
		if err != nil {
			return nil, err
		}
		allTime, err := s.normalizedRate(userID, task.ID, allTimeEpoch)
		if err != nil {
			return nil, err
		}

		row := UserTaskStatistics{
			TaskName:                           task.Name,
			TaskAbbrev:                         task.NameAbbrev,
			NormalizedOccurrencesFromStatsDate: fromStats,
			NormalizedOccurrencesAllTime:       allTime,
		}
		if last != nil {
			row.LastAssignment = last.Format(isoDate)
		}
		rows = append(rows, row)
	}

	return &UserStatisticsResponse{
		UserID:   user.ID,
		UserName: user.FullName(),
		Tasks:    rows,
	}, nil
}

// normalizedRate divides the user's active weeks for the task by the task's
// own active weeks, both counted from the given date
func (s *StatisticsService) normalizedRate(userID, taskID uuid.UUID, from time.Time) (float64, error) {
	taskWeeks, err := s.scheduleRepo.CountDistinctWeeksForTask(taskID, from)
	if err != nil {
		return 0, err
	}
	if taskWeeks == 0 {
		return 0, nil
	}
	userWeeks, err := s.scheduleRepo.CountDistinctWeeksForUserTask(userID, taskID, from)
	if err != nil {
		return 0, err
	}
	return float64(userWeeks) / float64(taskWeeks), nil
}
