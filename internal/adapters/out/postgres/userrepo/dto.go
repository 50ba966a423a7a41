// Package userrepo provides data transfer objects and mapping functions for
// user persistence. It implements the repository pattern for the user
// entity, handling conversion between domain entities and database rows.
package userrepo

import (
	"faithcafe/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user accounts.
// The username is the natural primary key; the email carries a unique index
// so the registration invariant holds at the database level too.
type UserDTO struct {
	Username      string `gorm:"type:varchar(255);primaryKey"`
	Password      string `gorm:"type:varchar(255);not null"`
	Email         string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role          string `gorm:"type:varchar(32);not null"`
	Address       string `gorm:"type:varchar(255)"`
	ContactNumber string `gorm:"type:varchar(64)"`
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain entity to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		Username:      aggregate.Username(),
		Password:      aggregate.Password(),
		Email:         aggregate.Email(),
		Role:          aggregate.Role().String(),
		Address:       aggregate.Address(),
		ContactNumber: aggregate.ContactNumber(),
	}
}

// toDomain converts a database row to a user domain entity.
func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(dto.Username, dto.Password, dto.Email, role,
		dto.Address, dto.ContactNumber)
}
