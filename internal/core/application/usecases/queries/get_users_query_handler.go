package queries

import (
	"context"

	"faithcafe/internal/core/ports"
)

// GetUsersQueryHandler serves the admin account listing.
type GetUsersQueryHandler struct {
	userRepo ports.UserRepository
}

// NewGetUsersQueryHandler creates a handler for account listing queries.
func NewGetUsersQueryHandler(userRepo ports.UserRepository) GetUsersQueryHandler {
	return GetUsersQueryHandler{userRepo: userRepo}
}

// Handle executes the query.
func (h GetUsersQueryHandler) Handle(ctx context.Context, query GetUsersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts, err := h.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]UserView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, UserView{
			Username:      account.Username(),
			Email:         account.Email(),
			Role:          account.Role().String(),
			Address:       account.Address(),
			ContactNumber: account.ContactNumber(),
		})
	}
	return views, nil
}
