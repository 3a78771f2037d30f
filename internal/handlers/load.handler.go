package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/brokerdesk/carrier-sales-api/internal/model"
	"github.com/brokerdesk/carrier-sales-api/internal/repository"
	xhttp "github.com/brokerdesk/carrier-sales-api/pkg/http"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

type LoadService interface {
	Create(ctx context.Context, ld model.Load) (*model.Load, error)
	Get(ctx context.Context, loadID string) (*model.Load, error)
	Search(ctx context.Context, f model.LoadFilter) ([]*model.Load, error)
}

type LoadHandler struct {
	svc LoadService
}

func RegisterLoadRoutes(r *xhttp.Router, h *LoadHandler) {
	r.POST("/loads", h.CreateLoad)
	r.GET("/loads/search", h.SearchLoads)
	r.GET("/loads/{load_id}", h.GetLoad)
}

func NewLoadHandler(loadService LoadService) *LoadHandler {
	return &LoadHandler{
		svc: loadService,
	}
}

func (h *LoadHandler) CreateLoad(ctx *xhttp.RequestCtx) {
	var ld model.Load
	if err := readJSON(ctx, &ld); err != nil {
		writeError(ctx, 400, "invalid JSON: "+err.Error())
		return
	}
	if err := ld.Validate(); err != nil {
		writeError(ctx, 422, err.Error())
		return
	}

	created, err := h.svc.Create(ctx, ld)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateLoadID) {
			writeError(ctx, 409, "load_id already exists")
			return
		}
		writeError(ctx, 500, err.Error())
		return
	}
	writeJSON(ctx, 201, created)
}

func (h *LoadHandler) SearchLoads(ctx *xhttp.RequestCtx) {
	var f model.LoadFilter

	if v := query(ctx, "origin"); v != "" {
		f.Origin = &v
	}
	if v := query(ctx, "destination"); v != "" {
		f.Destination = &v
	}
	if v := query(ctx, "equipment"); v != "" {
		f.Equipment = &v
	}
	if v := query(ctx, "min_rate"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(ctx, 422, "min_rate must be a non-negative integer")
			return
		}
		f.MinRate = &n
	}
	if v := query(ctx, "max_rate"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(ctx, 422, "max_rate must be a non-negative integer")
			return
		}
		f.MaxRate = &n
	}

	limit, ok := queryIntInRange(ctx, "limit", defaultSearchLimit, 1, maxSearchLimit)
	if !ok {
		writeError(ctx, 422, "limit must be between 1 and 100")
		return
	}
	f.Limit = limit

	loads, err := h.svc.Search(ctx, f)
	if err != nil {
		writeError(ctx, 500, err.Error())
		return
	}
	writeJSON(ctx, 200, loads)
}

func (h *LoadHandler) GetLoad(ctx *xhttp.RequestCtx) {
	loadID, _ := ctx.UserValue("load_id").(string)

	ld, err := h.svc.Get(ctx, loadID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(ctx, 404, "Load not found")
			return
		}
		writeError(ctx, 500, err.Error())
		return
	}
	writeJSON(ctx, 200, ld)
}
