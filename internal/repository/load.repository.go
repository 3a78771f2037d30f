package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/brokerdesk/carrier-sales-api/internal/model"
	"github.com/brokerdesk/carrier-sales-api/pkg/sqlite"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a load does not exist.
	ErrNotFound = errors.New("load not found")

	// ErrDuplicateLoadID is returned when an insert collides on load_id.
	// The existing row is left untouched.
	ErrDuplicateLoadID = errors.New("load_id already exists")
)

type LoadRepository struct {
	*sqlite.DB
}

func NewLoadRepository(db *sqlite.DB) *LoadRepository {
	return &LoadRepository{
		db,
	}
}

func (r *LoadRepository) Create(ctx context.Context, ld *model.Load) (*model.Load, error) {
	entity := toLoadEntity(ld)

	if err := r.Session(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateLoadID
		}
		return nil, err
	}

	return toLoadModel(entity), nil
}

func (r *LoadRepository) Get(ctx context.Context, loadID string) (*model.Load, error) {
	var entity LoadEntity
	err := r.Session(ctx).Where("load_id = ?", loadID).Take(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toLoadModel(&entity), nil
}

// Search applies the filter's predicates conjunctively and returns at most
// f.Limit rows ascending by pickup time. Substring filters match
// case-insensitively anywhere in the stored value.
func (r *LoadRepository) Search(ctx context.Context, f model.LoadFilter) ([]*model.Load, error) {
	q := r.Session(ctx).Model(&LoadEntity{})

	if f.Origin != nil && *f.Origin != "" {
		q = q.Where("LOWER(origin) LIKE ?", contains(*f.Origin))
	}
	if f.Destination != nil && *f.Destination != "" {
		q = q.Where("LOWER(destination) LIKE ?", contains(*f.Destination))
	}
	if f.Equipment != nil && *f.Equipment != "" {
		q = q.Where("LOWER(equipment_type) LIKE ?", contains(*f.Equipment))
	}
	if f.MinRate != nil {
		q = q.Where("loadboard_rate >= ?", *f.MinRate)
	}
	if f.MaxRate != nil {
		q = q.Where("loadboard_rate <= ?", *f.MaxRate)
	}

	var entities []*LoadEntity
	if err := q.Order("pickup_datetime ASC").Limit(f.Limit).Find(&entities).Error; err != nil {
		return nil, err
	}

	return toLoadModels(entities), nil
}

func contains(v string) string {
	return "%" + strings.ToLower(v) + "%"
}
