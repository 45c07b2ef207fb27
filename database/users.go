package database

import (
	"context"
	"fmt"
	"strings"

	"auracash/models"

	"github.com/shopspring/decimal"
)

// CreateUser inserts u and fills its ID. A taken email yields ErrDuplicateKey.
func (s *Store) CreateUser(ctx context.Context, u *models.User) error {
	if err := s.conn(ctx).Create(u).Error; err != nil {
		return fmt.Errorf("create user: %w", classify(err))
	}
	return nil
}

// FindUserByEmail looks a user up by email, case-insensitively.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.conn(ctx).Where("LOWER(email) = ?", strings.ToLower(email)).First(&u).Error
	if err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// FindUserByID loads one user.
func (s *Store) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.conn(ctx).First(&u, id).Error; err != nil {
		return nil, classify(err)
	}
	return &u, nil
}

// EmailTakenByOther reports whether another user already owns email.
func (s *Store) EmailTakenByOther(ctx context.Context, email string, userID uint) (bool, error) {
	var count int64
	err := s.conn(ctx).Model(&models.User{}).
		Where("LOWER(email) = ? AND id <> ?", strings.ToLower(email), userID).
		Count(&count).Error
	if err != nil {
		return false, classify(err)
	}
	return count > 0, nil
}

// UpdateProfile overwrites the mutable profile fields of a user.
func (s *Store) UpdateProfile(ctx context.Context, userID uint, name, email string, income decimal.NullDecimal) error {
	res := s.conn(ctx).Model(&models.User{ID: userID}).Updates(map[string]interface{}{
		"name":           name,
		"email":          email,
		"monthly_income": income,
	})
	if res.Error != nil {
		return fmt.Errorf("update profile: %w", classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePassword stores a new password hash.
func (s *Store) UpdatePassword(ctx context.Context, userID uint, hash string) error {
	res := s.conn(ctx).Model(&models.User{ID: userID}).Update("password", hash)
	if res.Error != nil {
		return fmt.Errorf("update password: %w", classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
