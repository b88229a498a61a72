// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user domain aggregate.
package userrepo

import (
	"time"

	"orders/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// The unique index on username enforces store-level uniqueness; lookups are
// exact and case-sensitive.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(dto.ID, dto.Username, dto.PasswordHash)
}
