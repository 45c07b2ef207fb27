package database

import (
	"context"
	"fmt"

	"auracash/models"

	"gorm.io/gorm"
)

// CreateCategory inserts c and fills its ID.
func (s *Store) CreateCategory(ctx context.Context, c *models.Category) error {
	if err := s.conn(ctx).Omit("User").Create(c).Error; err != nil {
		return fmt.Errorf("create category: %w", classify(err))
	}
	return nil
}

// ListCategories returns the default categories plus those owned by userID.
func (s *Store) ListCategories(ctx context.Context, userID uint) ([]models.Category, error) {
	list := make([]models.Category, 0)
	err := s.conn(ctx).
		Where("user_id IS NULL OR user_id = ?", userID).
		Order("type ASC").
		Order("name ASC").
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", classify(err))
	}
	return list, nil
}

// FindCategory returns the category when it is a default or owned by userID.
func (s *Store) FindCategory(ctx context.Context, userID, id uint) (*models.Category, error) {
	var c models.Category
	err := s.conn(ctx).
		Where("id = ? AND (user_id IS NULL OR user_id = ?)", id, userID).
		First(&c).Error
	if err != nil {
		return nil, classify(err)
	}
	return &c, nil
}

// CreateGoal inserts g and fills its ID.
func (s *Store) CreateGoal(ctx context.Context, g *models.Goal) error {
	if err := s.conn(ctx).Omit("User", "Category").Create(g).Error; err != nil {
		return fmt.Errorf("create goal: %w", classify(err))
	}
	return nil
}

// ListGoals returns a user's goals, oldest first.
func (s *Store) ListGoals(ctx context.Context, userID uint) ([]models.Goal, error) {
	list := make([]models.Goal, 0)
	if err := s.conn(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", classify(err))
	}
	return list, nil
}

// CreateMaterial inserts m and fills its ID.
func (s *Store) CreateMaterial(ctx context.Context, m *models.Material) error {
	if err := s.conn(ctx).Omit("User").Create(m).Error; err != nil {
		return fmt.Errorf("create material: %w", classify(err))
	}
	return nil
}

// ListMaterials returns a user's materials ordered by name.
func (s *Store) ListMaterials(ctx context.Context, userID uint) ([]models.Material, error) {
	list := make([]models.Material, 0)
	err := s.conn(ctx).Where("user_id = ?", userID).Order("name ASC").Order("id ASC").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", classify(err))
	}
	return list, nil
}

// CreateSharedAccount inserts the account together with its member rows.
func (s *Store) CreateSharedAccount(ctx context.Context, a *models.SharedAccount) error {
	if err := s.conn(ctx).Omit("Owner").Create(a).Error; err != nil {
		return fmt.Errorf("create shared account: %w", classify(err))
	}
	return nil
}

// ListSharedAccounts returns every shared account userID belongs to, with members.
func (s *Store) ListSharedAccounts(ctx context.Context, userID uint) ([]models.SharedAccount, error) {
	list := make([]models.SharedAccount, 0)
	member := s.conn(ctx).Model(&models.SharedAccountMember{}).
		Select("shared_account_id").
		Where("user_id = ?", userID)
	err := s.conn(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("id IN (?)", member).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list shared accounts: %w", classify(err))
	}
	return list, nil
}
