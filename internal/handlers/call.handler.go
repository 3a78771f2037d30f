package handlers

import (
	"context"

	"github.com/brokerdesk/carrier-sales-api/internal/model"
	xhttp "github.com/brokerdesk/carrier-sales-api/pkg/http"
)

const (
	defaultRecentLimit = 25
	maxRecentLimit     = 500

	defaultAnalyticsDays = 7
	maxAnalyticsDays     = 90
)

type CallService interface {
	Append(ctx context.Context, ev model.CallEvent) (*model.CallEvent, error)
	Recent(ctx context.Context, limit int) ([]*model.CallEvent, error)
	Summarize(ctx context.Context, days int) (*model.CallAnalytics, error)
}

type CallHandler struct {
	svc CallService
}

func RegisterCallRoutes(r *xhttp.Router, h *CallHandler) {
	r.POST("/events/call-summary", h.LogCallSummary)
	r.GET("/events/call-summary/recent", h.RecentCalls)
	r.GET("/analytics/calls", h.CallAnalytics)
}

func NewCallHandler(callService CallService) *CallHandler {
	return &CallHandler{
		svc: callService,
	}
}

func (h *CallHandler) LogCallSummary(ctx *xhttp.RequestCtx) {
	var ev model.CallEvent
	if err := readJSON(ctx, &ev); err != nil {
		writeError(ctx, 400, "invalid JSON: "+err.Error())
		return
	}

	if _, err := h.svc.Append(ctx, ev); err != nil {
		writeError(ctx, 500, err.Error())
		return
	}
	writeJSON(ctx, 200, okResponse{OK: true})
}

func (h *CallHandler) RecentCalls(ctx *xhttp.RequestCtx) {
	limit, ok := queryIntInRange(ctx, "limit", defaultRecentLimit, 1, maxRecentLimit)
	if !ok {
		writeError(ctx, 422, "limit must be between 1 and 500")
		return
	}

	events, err := h.svc.Recent(ctx, limit)
	if err != nil {
		writeError(ctx, 500, err.Error())
		return
	}
	writeJSON(ctx, 200, events)
}

func (h *CallHandler) CallAnalytics(ctx *xhttp.RequestCtx) {
	days, ok := queryIntInRange(ctx, "days", defaultAnalyticsDays, 1, maxAnalyticsDays)
	if !ok {
		writeError(ctx, 422, "days must be between 1 and 90")
		return
	}

	analytics, err := h.svc.Summarize(ctx, days)
	if err != nil {
		writeError(ctx, 500, err.Error())
		return
	}
	writeJSON(ctx, 200, analytics)
}
