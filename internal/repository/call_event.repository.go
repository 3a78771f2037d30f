package repository

import (
	"context"
	"time"

	"github.com/brokerdesk/carrier-sales-api/internal/model"
	"github.com/brokerdesk/carrier-sales-api/pkg/sqlite"
)

// cutoffLayout renders window cutoffs the way sqlite's datetime() emits
// instants, so both sides of the comparison are chronological values.
const cutoffLayout = "2006-01-02 15:04:05"

type CallEventRepository struct {
	*sqlite.DB
}

func NewCallEventRepository(db *sqlite.DB) *CallEventRepository {
	return &CallEventRepository{
		db,
	}
}

// Append inserts one event and commits. The id comes back assigned by
// storage; nothing is ever updated or deleted here.
func (r *CallEventRepository) Append(ctx context.Context, ev *model.CallEvent) (*model.CallEvent, error) {
	entity := toCallEventEntity(ev)

	if err := r.Session(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCallEventModel(entity), nil
}

// Recent returns events newest first: timestamp descending, ties broken by
// id descending so same-timestamp events come back latest-inserted first.
func (r *CallEventRepository) Recent(ctx context.Context, limit int) ([]*model.CallEvent, error) {
	var entities []*CallEventEntity
	err := r.Session(ctx).
		Order("datetime(ts) DESC, id DESC").
		Limit(limit).
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return toCallEventModels(entities), nil
}

// GroupCount is one grouped-count row; Key carries the COALESCE'd group
// value, with NULLs bucketed under model.NoneBucket.
type GroupCount struct {
	Key   string `gorm:"column:k"`
	Count int    `gorm:"column:c"`
}

// DayGroupCount is one date+outcome count row of the per-day aggregation.
type DayGroupCount struct {
	Date    string `gorm:"column:d"`
	Outcome string `gorm:"column:outc"`
	Count   int    `gorm:"column:c"`
}

func (r *CallEventRepository) CountByOutcome(ctx context.Context, since time.Time) ([]GroupCount, error) {
	return r.countGrouped(ctx, "outcome", since)
}

func (r *CallEventRepository) CountBySentiment(ctx context.Context, since time.Time) ([]GroupCount, error) {
	return r.countGrouped(ctx, "sentiment", since)
}

func (r *CallEventRepository) countGrouped(ctx context.Context, column string, since time.Time) ([]GroupCount, error) {
	var rows []GroupCount
	err := r.Session(ctx).Raw(`
		SELECT COALESCE(`+column+`, ?) AS k, COUNT(*) AS c
		FROM call_events
		WHERE datetime(ts) >= ?
		GROUP BY k
	`, model.NoneBucket, since.UTC().Format(cutoffLayout)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// CountByDayAndOutcome returns date/outcome/count rows ascending by date,
// feeding the by_day pivot. Dates without events simply do not appear.
func (r *CallEventRepository) CountByDayAndOutcome(ctx context.Context, since time.Time) ([]DayGroupCount, error) {
	var rows []DayGroupCount
	err := r.Session(ctx).Raw(`
		SELECT date(ts) AS d, COALESCE(outcome, ?) AS outc, COUNT(*) AS c
		FROM call_events
		WHERE datetime(ts) >= ?
		GROUP BY d, outc
		ORDER BY d ASC
	`, model.NoneBucket, since.UTC().Format(cutoffLayout)).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
