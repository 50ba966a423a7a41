package localstore

import (
	"context"

	"faithcafe/internal/core/domain/model/user"
	"faithcafe/internal/pkg/errs"
)

type userRepository struct {
	uow *UnitOfWork
}

// Add implements ports.UserRepository. Usernames and emails are unique
// across the collection.
func (r *userRepository) Add(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := r.uow.loadUsers(); err != nil {
		return err
	}

	for _, dto := range r.uow.users {
		if dto.Username == aggregate.Username() {
			return errs.NewValueIsInvalidError("username")
		}
		if dto.Email == aggregate.Email() {
			return errs.NewValueIsInvalidError("email")
		}
	}

	r.uow.users = append(r.uow.users, userToDTO(aggregate))
	r.uow.usersDirty = true
	return nil
}

// Update implements ports.UserRepository.
func (r *userRepository) Update(_ context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := r.uow.loadUsers(); err != nil {
		return err
	}

	for i, dto := range r.uow.users {
		if dto.Username == aggregate.Username() {
			r.uow.users[i] = userToDTO(aggregate)
			r.uow.usersDirty = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("username", aggregate.Username())
}

// Get implements ports.UserRepository.
func (r *userRepository) Get(_ context.Context, username string) (*user.User, error) {
	if err := r.uow.loadUsers(); err != nil {
		return nil, err
	}

	for _, dto := range r.uow.users {
		if dto.Username == username {
			return dto.toDomain()
		}
	}
	return nil, errs.NewObjectNotFoundError("username", username)
}

// Delete implements ports.UserRepository.
func (r *userRepository) Delete(_ context.Context, username string) error {
	if err := r.uow.loadUsers(); err != nil {
		return err
	}

	for i, dto := range r.uow.users {
		if dto.Username == username {
			r.uow.users = append(r.uow.users[:i], r.uow.users[i+1:]...)
			r.uow.usersDirty = true
			return nil
		}
	}
	return errs.NewObjectNotFoundError("username", username)
}

// GetAll implements ports.UserRepository.
func (r *userRepository) GetAll(_ context.Context) ([]*user.User, error) {
	if err := r.uow.loadUsers(); err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(r.uow.users))
	for _, dto := range r.uow.users {
		aggregate, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, aggregate)
	}
	return users, nil
}
