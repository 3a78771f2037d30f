package services

import (
	"context"

	"github.com/brokerdesk/carrier-sales-api/internal/model"
)

type LoadRepository interface {
	Create(ctx context.Context, ld *model.Load) (*model.Load, error)
	Get(ctx context.Context, loadID string) (*model.Load, error)
	Search(ctx context.Context, f model.LoadFilter) ([]*model.Load, error)
}

type LoadService struct {
	loadRepo LoadRepository
}

func NewLoadService(loadRepo LoadRepository) *LoadService {
	return &LoadService{
		loadRepo: loadRepo,
	}
}

func (s *LoadService) Create(ctx context.Context, ld model.Load) (*model.Load, error) {
	if err := ld.Validate(); err != nil {
		return nil, err
	}
	return s.loadRepo.Create(ctx, &ld)
}

func (s *LoadService) Get(ctx context.Context, loadID string) (*model.Load, error) {
	return s.loadRepo.Get(ctx, loadID)
}

func (s *LoadService) Search(ctx context.Context, f model.LoadFilter) ([]*model.Load, error) {
	return s.loadRepo.Search(ctx, f)
}
