// Package userrepo stores user accounts with gorm.
package userrepo

import (
	"time"

	"orderhub/internal/core/domain/model/user"
)

type UserDTO struct {
	ID             string `gorm:"primaryKey"`
	Name           string `gorm:"not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	PasswordHash   string `gorm:"not null"`
	Role           string `gorm:"index;not null"`
	RestaurantName string
	StudentID      string
	IsAvailable    bool
	CreatedAt      time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:             u.ID(),
		Name:           u.Name(),
		Email:          u.Email(),
		PasswordHash:   u.PasswordHash(),
		Role:           u.Role().String(),
		RestaurantName: u.RestaurantName(),
		StudentID:      u.StudentID(),
		IsAvailable:    u.IsAvailable(),
		CreatedAt:      u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(user.Params{
		ID:             dto.ID,
		Name:           dto.Name,
		Email:          dto.Email,
		PasswordHash:   dto.PasswordHash,
		Role:           role,
		RestaurantName: dto.RestaurantName,
		StudentID:      dto.StudentID,
		IsAvailable:    dto.IsAvailable,
		CreatedAt:      dto.CreatedAt,
	})
}
