// Package staterepo persists the per-store browsing state: the working
// cart, the logged-in session, the staged checkout selection and the theme.
// All of it lives in a single key-value table so the database driver keeps
// the same keys the file-backed store uses.
package staterepo

import (
	"context"
	"encoding/json"
	"errors"

	"faithcafe/internal/core/domain/model/cart"
	"faithcafe/internal/core/domain/model/kernel"
	"faithcafe/internal/core/domain/model/user"
	"faithcafe/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	keyCart          = "cart"
	keyCurrentUser   = "currentUser"
	keyCheckoutItems = "checkoutItems"
	keyTheme         = "theme"
)

// EntryDTO is one row of browsing state. The value holds JSON for
// structured keys and a bare string for the theme.
type EntryDTO struct {
	Key   string `gorm:"type:varchar(64);primaryKey"`
	Value string `gorm:"type:text;not null"`
}

// TableName specifies the database table name for browsing-state entries.
func (EntryDTO) TableName() string {
	return "client_state"
}

// lineDTO mirrors the cart line JSON stored under the cart key.
type lineDTO struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// GormStateRepository implements CartRepository and SessionRepository on
// the client_state table.
type GormStateRepository struct {
	db *gorm.DB
}

// NewGormStateRepository creates a new GORM browsing-state repository.
func NewGormStateRepository(db *gorm.DB) *GormStateRepository {
	return &GormStateRepository{db: db}
}

func (r *GormStateRepository) get(ctx context.Context, key string) (string, bool, error) {
	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return dto.Value, true, nil
}

func (r *GormStateRepository) set(ctx context.Context, key, value string) error {
	dto := EntryDTO{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&dto).Error
}

func (r *GormStateRepository) delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&EntryDTO{}, "key = ?", key).Error
}

// Get implements ports.CartRepository. A store with no cart row yet yields
// an empty cart.
func (r *GormStateRepository) Get(ctx context.Context) (*cart.Cart, error) {
	raw, ok, err := r.get(ctx, keyCart)
	if err != nil {
		return nil, err
	}

	var dtos []lineDTO
	if ok {
		if err = json.Unmarshal([]byte(raw), &dtos); err != nil {
			return nil, err
		}
	}

	lines := make([]cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		price, lineErr := kernel.NewMoney(dto.Price)
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := cart.NewLine(dto.Name, price, dto.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(lines)
}

// Save implements ports.CartRepository. The whole line list replaces the
// stored cart.
func (r *GormStateRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	dtos := make([]lineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		dtos = append(dtos, lineDTO{
			Name:     line.Name(),
			Price:    line.Price().Amount(),
			Quantity: line.Quantity(),
		})
	}

	raw, err := json.Marshal(dtos)
	if err != nil {
		return err
	}
	return r.set(ctx, keyCart, string(raw))
}

// CurrentUser implements ports.SessionRepository.
func (r *GormStateRepository) CurrentUser(ctx context.Context) (user.Session, error) {
	raw, ok, err := r.get(ctx, keyCurrentUser)
	if err != nil {
		return user.Session{}, err
	}
	if !ok {
		return user.Session{}, errs.NewObjectNotFoundError(keyCurrentUser, nil)
	}

	var session user.Session
	if err = json.Unmarshal([]byte(raw), &session); err != nil {
		return user.Session{}, err
	}
	return session, nil
}

// SetCurrentUser implements ports.SessionRepository.
func (r *GormStateRepository) SetCurrentUser(ctx context.Context, session user.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.set(ctx, keyCurrentUser, string(raw))
}

// ClearCurrentUser implements ports.SessionRepository.
func (r *GormStateRepository) ClearCurrentUser(ctx context.Context) error {
	return r.delete(ctx, keyCurrentUser)
}

// CheckoutSelection implements ports.SessionRepository. No staged selection
// reads as empty, not as an error.
func (r *GormStateRepository) CheckoutSelection(ctx context.Context) ([]string, error) {
	raw, ok, err := r.get(ctx, keyCheckoutItems)
	if err != nil || !ok {
		return nil, err
	}

	var names []string
	if err = json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, err
	}
	return names, nil
}

// SetCheckoutSelection implements ports.SessionRepository.
func (r *GormStateRepository) SetCheckoutSelection(ctx context.Context, names []string) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return r.set(ctx, keyCheckoutItems, string(raw))
}

// ClearCheckoutSelection implements ports.SessionRepository.
func (r *GormStateRepository) ClearCheckoutSelection(ctx context.Context) error {
	return r.delete(ctx, keyCheckoutItems)
}

// Theme implements ports.SessionRepository. A store with no theme row reads
// as an empty string.
func (r *GormStateRepository) Theme(ctx context.Context) (string, error) {
	raw, _, err := r.get(ctx, keyTheme)
	return raw, err
}

// SetTheme implements ports.SessionRepository.
func (r *GormStateRepository) SetTheme(ctx context.Context, theme string) error {
	return r.set(ctx, keyTheme, theme)
}
