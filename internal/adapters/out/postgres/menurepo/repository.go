package menurepo

import (
	"context"
	"errors"

	"faithcafe/internal/core/domain/model/menu"
	"faithcafe/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog item to the database.
func (r *GormMenuRepository) Add(ctx context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.Name(), item)
	return nil
}

// Update replaces the item stored under the given name. Renames rewrite the
// primary key; cart lines holding the old name are unaffected.
func (r *GormMenuRepository) Update(ctx context.Context, name string, item *menu.Item) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&MenuItemDTO{}).
		Where("name = ?", name).
		Updates(map[string]any{
			"name":        dto.Name,
			"price":       dto.Price,
			"description": dto.Description,
			"category":    dto.Category,
			"image":       dto.Image,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", name)
	}

	r.tracker.TrackAggregate(item.Name(), item)
	return nil
}

// Get retrieves a catalog item by name.
func (r *GormMenuRepository) Get(ctx context.Context, name string) (*menu.Item, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto MenuItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("menuItem", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes an item from the catalog.
func (r *GormMenuRepository) Delete(ctx context.Context, name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	result := r.db.WithContext(ctx).Delete(&MenuItemDTO{}, "name = ?", name)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("menuItem", name)
	}

	return nil
}

// GetAll retrieves the full catalog.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]*menu.Item, error) {
	var dtos []MenuItemDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	items := make([]*menu.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
