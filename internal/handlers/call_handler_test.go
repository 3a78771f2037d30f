package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/brokerdesk/carrier-sales-api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCallService struct {
	mock.Mock
}

func (m *MockCallService) Append(ctx context.Context, ev model.CallEvent) (*model.CallEvent, error) {
	args := m.Called(ctx, ev)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CallEvent), args.Error(1)
}

func (m *MockCallService) Recent(ctx context.Context, limit int) ([]*model.CallEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CallEvent), args.Error(1)
}

func (m *MockCallService) Summarize(ctx context.Context, days int) (*model.CallAnalytics, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CallAnalytics), args.Error(1)
}

func TestCallHandler_LogCallSummary(t *testing.T) {
	t.Run("logged event answers ok", func(t *testing.T) {
		svc := new(MockCallService)
		handler := NewCallHandler(svc)

		outcome := model.OutcomeAgreed
		ev := model.CallEvent{TS: "2025-08-27T15:00:00", Outcome: &outcome}
		body, _ := json.Marshal(ev)
		svc.On("Append", mock.Anything, ev).Return(&model.CallEvent{ID: 7, TS: ev.TS, Outcome: &outcome}, nil)

		ctx := setupTestContext("POST", "/events/call-summary", body)
		handler.LogCallSummary(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"ok":true}`, string(ctx.Response.Body()))
		svc.AssertExpectations(t)
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		svc := new(MockCallService)
		handler := NewCallHandler(svc)

		ctx := setupTestContext("POST", "/events/call-summary", []byte("nope"))
		handler.LogCallSummary(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
		svc.AssertNotCalled(t, "Append")
	})
}

func TestCallHandler_RecentCalls(t *testing.T) {
	t.Run("default limit is 25", func(t *testing.T) {
		svc := new(MockCallService)
		handler := NewCallHandler(svc)

		svc.On("Recent", mock.Anything, 25).Return([]*model.CallEvent{}, nil)

		ctx := setupTestContext("GET", "/events/call-summary/recent", nil)
		handler.RecentCalls(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})

	t.Run("limit outside 1..500 maps to 422", func(t *testing.T) {
		svc := new(MockCallService)
		handler := NewCallHandler(svc)

		for _, q := range []string{"limit=0", "limit=501", "limit=x"} {
			ctx := setupTestContext("GET", "/events/call-summary/recent?"+q, nil)
			handler.RecentCalls(ctx)
			assert.Equal(t, 422, ctx.Response.StatusCode(), q)
		}
		svc.AssertNotCalled(t, "Recent")
	})
}

func TestCallHandler_CallAnalytics(t *testing.T) {
	t.Run("summary is serialized with flat day records", func(t *testing.T) {
		svc := new(MockCallService)
		handler := NewCallHandler(svc)

		svc.On("Summarize", mock.Anything, 7).Return(&model.CallAnalytics{
			OutcomeCounts:   map[string]int{model.OutcomeAgreed: 2},
			SentimentCounts: map[string]int{model.SentimentPositive: 2},
			ByDay: []model.DayOutcomeCounts{
				{Date: "2025-08-25", Counts: map[string]int{model.OutcomeAgreed: 2}},
			},
		}, nil)

		ctx := setupTestContext("GET", "/analytics/calls", nil)
		handler.CallAnalytics(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		assert.JSONEq(t, `{
			"outcome_counts": {"agreed": 2},
			"sentiment_counts": {"positive": 2},
			"by_day": [{"date": "2025-08-25", "agreed": 2}]
		}`, string(ctx.Response.Body()))
		svc.AssertExpectations(t)
	})

	t.Run("explicit days reaches the service", func(t *testing.T) {
		svc := new(MockCallService)
		handler := NewCallHandler(svc)

		svc.On("Summarize", mock.Anything, 30).Return(&model.CallAnalytics{
			OutcomeCounts:   map[string]int{},
			SentimentCounts: map[string]int{},
		}, nil)

		ctx := setupTestContext("GET", "/analytics/calls?days=30", nil)
		handler.CallAnalytics(ctx)

		require.Equal(t, 200, ctx.Response.StatusCode())
		svc.AssertExpectations(t)
	})

	t.Run("days outside 1..90 maps to 422", func(t *testing.T) {
		svc := new(MockCallService)
		handler := NewCallHandler(svc)

		for _, q := range []string{"days=0", "days=91", "days=many"} {
			ctx := setupTestContext("GET", "/analytics/calls?"+q, nil)
			handler.CallAnalytics(ctx)
			assert.Equal(t, 422, ctx.Response.StatusCode(), q)
		}
		svc.AssertNotCalled(t, "Summarize")
	})
}
