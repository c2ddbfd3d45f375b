package repository

import (
	"time"

	"community-scheduler-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WeekRevisionRepository handles the optimistic concurrency revisions kept
// per schedule week
type WeekRevisionRepository struct {
	db *gorm.DB
}

// NewWeekRevisionRepository creates a new week revision repository
func NewWeekRevisionRepository(db *gorm.DB) *WeekRevisionRepository {
	return &WeekRevisionRepository{db: db}
}

// Get returns the revision for the week, creating the row at revision 0 on
// first access
func (r *WeekRevisionRepository) Get(weekStart time.Time) (*models.WeekRevision, error) {
	rev := models.WeekRevision{WeekStart: weekStart}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "week_start"}},
		DoNothing: true,
	}).Create(&rev).Error
	if err != nil {
		return nil, err
	}
	var out models.WeekRevision
	if err := r.db.First(&out, "week_start = ?", weekStart).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// Bump atomically increments the week's revision when the stored value still
// matches expected. Returns the new revision, or (0, false, nil) when the
// expectation failed.
func (r *WeekRevisionRepository) Bump(weekStart time.Time, expected int64) (int64, bool, error) {
	res := r.db.Model(&models.WeekRevision{}).
		Where("week_start = ? AND revision = ?", weekStart, expected).
		Update("revision", gorm.Expr("revision + 1"))
	if res.Error != nil {
		return 0, false, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, false, nil
	}
	return expected + 1, true, nil
}
