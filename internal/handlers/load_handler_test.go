package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/brokerdesk/carrier-sales-api/internal/model"
	"github.com/brokerdesk/carrier-sales-api/internal/repository"
	xhttp "github.com/brokerdesk/carrier-sales-api/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

type MockLoadService struct {
	mock.Mock
}

func (m *MockLoadService) Create(ctx context.Context, ld model.Load) (*model.Load, error) {
	args := m.Called(ctx, ld)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Load), args.Error(1)
}

func (m *MockLoadService) Get(ctx context.Context, loadID string) (*model.Load, error) {
	args := m.Called(ctx, loadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Load), args.Error(1)
}

func (m *MockLoadService) Search(ctx context.Context, f model.LoadFilter) ([]*model.Load, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Load), args.Error(1)
}

// setupTestContext builds a RequestCtx with working context.Context plumbing,
// matching what a served request carries.
func setupTestContext(method, path string, body []byte) *xhttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != nil {
		req.SetBody(body)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	return ctx
}

func validLoad() model.Load {
	return model.Load{
		LoadID:           "LD5001",
		Origin:           "Chicago, IL",
		Destination:      "Dallas, TX",
		PickupDatetime:   "2025-09-08T08:00:00",
		DeliveryDatetime: "2025-09-09T17:00:00",
		EquipmentType:    "Dry Van",
		LoadboardRate:    1450,
	}
}

func TestLoadHandler_CreateLoad(t *testing.T) {
	t.Run("successful creation echoes the load with 201", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		ld := validLoad()
		body, _ := json.Marshal(ld)
		svc.On("Create", mock.Anything, ld).Return(&ld, nil)

		ctx := setupTestContext("POST", "/loads", body)
		handler.CreateLoad(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())
		var got model.Load
		require.NoError(t, json.Unmarshal(ctx.Response.Body(), &got))
		assert.Equal(t, ld, got)
		svc.AssertExpectations(t)
	})

	t.Run("duplicate load_id maps to 409", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		ld := validLoad()
		body, _ := json.Marshal(ld)
		svc.On("Create", mock.Anything, ld).Return(nil, repository.ErrDuplicateLoadID)

		ctx := setupTestContext("POST", "/loads", body)
		handler.CreateLoad(ctx)

		assert.Equal(t, 409, ctx.Response.StatusCode())
	})

	t.Run("missing required field maps to 422", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		ld := validLoad()
		ld.Origin = ""
		body, _ := json.Marshal(ld)

		ctx := setupTestContext("POST", "/loads", body)
		handler.CreateLoad(ctx)

		assert.Equal(t, 422, ctx.Response.StatusCode())
		svc.AssertNotCalled(t, "Create")
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		ctx := setupTestContext("POST", "/loads", []byte("{not json"))
		handler.CreateLoad(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
	})
}

func TestLoadHandler_SearchLoads(t *testing.T) {
	t.Run("filters and default limit reach the service", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		svc.On("Search", mock.Anything, mock.MatchedBy(func(f model.LoadFilter) bool {
			return f.Origin != nil && *f.Origin == "chi" &&
				f.MinRate != nil && *f.MinRate == 500 &&
				f.Destination == nil &&
				f.Limit == 10
		})).Return([]*model.Load{}, nil)

		ctx := setupTestContext("GET", "/loads/search?origin=chi&min_rate=500", nil)
		handler.SearchLoads(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		assert.JSONEq(t, "[]", string(ctx.Response.Body()))
		svc.AssertExpectations(t)
	})

	t.Run("limit outside 1..100 maps to 422", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		for _, q := range []string{"limit=0", "limit=101", "limit=abc"} {
			ctx := setupTestContext("GET", "/loads/search?"+q, nil)
			handler.SearchLoads(ctx)
			assert.Equal(t, 422, ctx.Response.StatusCode(), q)
		}
		svc.AssertNotCalled(t, "Search")
	})

	t.Run("negative rate maps to 422", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		ctx := setupTestContext("GET", "/loads/search?min_rate=-5", nil)
		handler.SearchLoads(ctx)
		assert.Equal(t, 422, ctx.Response.StatusCode())
	})
}

func TestLoadHandler_GetLoad(t *testing.T) {
	t.Run("found load is returned", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		ld := validLoad()
		svc.On("Get", mock.Anything, "LD5001").Return(&ld, nil)

		ctx := setupTestContext("GET", "/loads/LD5001", nil)
		ctx.SetUserValue("load_id", "LD5001")
		handler.GetLoad(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
	})

	t.Run("missing load maps to 404", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		svc.On("Get", mock.Anything, "LD0000").Return(nil, repository.ErrNotFound)

		ctx := setupTestContext("GET", "/loads/LD0000", nil)
		ctx.SetUserValue("load_id", "LD0000")
		handler.GetLoad(ctx)

		assert.Equal(t, 404, ctx.Response.StatusCode())
	})

	t.Run("other storage errors map to 500", func(t *testing.T) {
		svc := new(MockLoadService)
		handler := NewLoadHandler(svc)

		svc.On("Get", mock.Anything, "LD5001").Return(nil, errors.New("disk I/O error"))

		ctx := setupTestContext("GET", "/loads/LD5001", nil)
		ctx.SetUserValue("load_id", "LD5001")
		handler.GetLoad(ctx)

		assert.Equal(t, 500, ctx.Response.StatusCode())
	})
}
