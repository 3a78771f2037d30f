package services

import (
	"context"
	"time"

	"github.com/brokerdesk/carrier-sales-api/internal/model"
	"github.com/brokerdesk/carrier-sales-api/internal/repository"
)

type CallEventRepository interface {
	Append(ctx context.Context, ev *model.CallEvent) (*model.CallEvent, error)
	Recent(ctx context.Context, limit int) ([]*model.CallEvent, error)
	CountByOutcome(ctx context.Context, since time.Time) ([]repository.GroupCount, error)
	CountBySentiment(ctx context.Context, since time.Time) ([]repository.GroupCount, error)
	CountByDayAndOutcome(ctx context.Context, since time.Time) ([]repository.DayGroupCount, error)
}

type CallService struct {
	eventRepo CallEventRepository
	now       func() time.Time
}

func NewCallService(eventRepo CallEventRepository) *CallService {
	return &CallService{
		eventRepo: eventRepo,
		now:       time.Now,
	}
}

// Append logs one call outcome. The timestamp is caller-supplied; a missing
// one falls back to the current instant. Outcome and sentiment are stored
// as-is, the documented enumerations are not enforced here.
func (s *CallService) Append(ctx context.Context, ev model.CallEvent) (*model.CallEvent, error) {
	if ev.TS == "" {
		ev.TS = s.now().UTC().Format(time.RFC3339)
	}
	return s.eventRepo.Append(ctx, &ev)
}

func (s *CallService) Recent(ctx context.Context, limit int) ([]*model.CallEvent, error) {
	return s.eventRepo.Recent(ctx, limit)
}

// Summarize aggregates events of the trailing days-day window into outcome
// counts, sentiment counts and a sparse per-day pivot.
func (s *CallService) Summarize(ctx context.Context, days int) (*model.CallAnalytics, error) {
	since := s.now().UTC().AddDate(0, 0, -days)

	outcomes, err := s.eventRepo.CountByOutcome(ctx, since)
	if err != nil {
		return nil, err
	}
	sentiments, err := s.eventRepo.CountBySentiment(ctx, since)
	if err != nil {
		return nil, err
	}
	daily, err := s.eventRepo.CountByDayAndOutcome(ctx, since)
	if err != nil {
		return nil, err
	}

	analytics := &model.CallAnalytics{
		OutcomeCounts:   make(map[string]int, len(outcomes)),
		SentimentCounts: make(map[string]int, len(sentiments)),
		ByDay:           pivotByDay(daily),
	}
	for _, row := range outcomes {
		analytics.OutcomeCounts[row.Key] = row.Count
	}
	for _, row := range sentiments {
		analytics.SentimentCounts[row.Key] = row.Count
	}
	return analytics, nil
}

// pivotByDay folds flat date/outcome/count rows into one bucket per calendar
// date. Rows arrive ordered ascending by date, so buckets keep that order.
// Days without events never get a bucket and outcomes that did not occur on a
// day never get a key.
func pivotByDay(rows []repository.DayGroupCount) []model.DayOutcomeCounts {
	byDate := make(map[string]int, len(rows)) // date -> index into out
	out := make([]model.DayOutcomeCounts, 0, len(rows))

	for _, row := range rows {
		idx, ok := byDate[row.Date]
		if !ok {
			idx = len(out)
			byDate[row.Date] = idx
			out = append(out, model.DayOutcomeCounts{
				Date:   row.Date,
				Counts: make(map[string]int),
			})
		}
		out[idx].Counts[row.Outcome] = row.Count
	}
	return out
}
