package localstore

import (
	"context"

	"faithcafe/internal/core/domain/model/menu"
	"faithcafe/internal/pkg/errs"
)

type menuRepository struct {
	uow *UnitOfWork
}

// Add implements ports.MenuRepository.
func (r *menuRepository) Add(_ context.Context, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := r.uow.loadMenu(); err != nil {
		return err
	}

	for _, dto := range r.uow.menu {
		if dto.Name == item.Name() {
			return errs.NewValueIsInvalidError("name")
		}
	}

	r.uow.menu = append(r.uow.menu, menuItemToDTO(item))
	r.uow.menuDirty = true
	return nil
}

// Update implements ports.MenuRepository. Renaming onto another existing
// item is rejected.
func (r *menuRepository) Update(_ context.Context, name string, item *menu.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if err := r.uow.loadMenu(); err != nil {
		return err
	}

	target := -1
	for i, dto := range r.uow.menu {
		if dto.Name == name {
			target = i
			continue
		}
		if dto.Name == item.Name() {
			return errs.NewValueIsInvalidError("name")
		}
	}
	if target < 0 {
		return errs.NewObjectNotFoundError("name", name)
	}

	r.uow.menu[target] = menuItemToDTO(item)
	r.uow.menuDirty = true
	return nil
}

// Get implements ports.MenuRepository.
func (r *menuRepository) Get(_ context.Context, name string) (*menu.Item, error) {
	if err := r.uow.loadMenu(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.menu {
		if dto.Name == name {
			return dto.toDomain()
		}
	}
	return nil, errs.NewObjectNotFoundError("name", name)
}

// Delete implements ports.MenuRepository.
func (r *menuRepository) Delete(_ context.Context, name string) error {
	if err := r.uow.loadMenu(); err != nil {
		return err
	}

	for i, dto := range r.uow.menu {
		if dto.Name == name {
			r.uow.menu = append(r.uow.menu[:i], r.uow.menu[i+1:]...)
			r.uow.menuDirty = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("name", name)
}

// GetAll implements ports.MenuRepository.
func (r *menuRepository) GetAll(_ context.Context) ([]*menu.Item, error) {
	if err := r.uow.loadMenu(); err != nil {
		return nil, err
	}

	items := make([]*menu.Item, 0, len(r.uow.menu))
	for _, dto := range r.uow.menu {
		item, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
