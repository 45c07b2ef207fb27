package service

import (
	"context"
	"errors"
	"strings"

	"auracash/models"

	"github.com/shopspring/decimal"
)

// CatalogStore is the persistence behind categories, goals, materials and
// shared accounts.
type CatalogStore interface {
	CreateCategory(ctx context.Context, c *models.Category) error
	ListCategories(ctx context.Context, userID uint) ([]models.Category, error)
	FindCategory(ctx context.Context, userID, id uint) (*models.Category, error)
	CreateGoal(ctx context.Context, g *models.Goal) error
	ListGoals(ctx context.Context, userID uint) ([]models.Goal, error)
	CreateMaterial(ctx context.Context, m *models.Material) error
	ListMaterials(ctx context.Context, userID uint) ([]models.Material, error)
	CreateSharedAccount(ctx context.Context, a *models.SharedAccount) error
	ListSharedAccounts(ctx context.Context, userID uint) ([]models.SharedAccount, error)
}

// CatalogService manages the user-owned records that are only created and
// listed: categories, goals, materials and shared accounts.
type CatalogService struct {
	store CatalogStore
}

func NewCatalogService(store CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

type CategoryInput struct {
	Name string
	Type string
}

type GoalInput struct {
	Name          string
	TargetAmount  string
	CurrentAmount string
	StartDate     string
	EndDate       string
	CategoryID    *uint
}

type MaterialInput struct {
	Name     string
	Unit     string
	Quantity string
	UnitCost string
	Supplier string
}

type SharedAccountInput struct {
	Name        string
	Description string
}

// GoalView is a goal with its progress.
type GoalView struct {
	models.Goal
	Remaining decimal.Decimal `json:"remaining"`
}

// MaterialView is a material with its total cost.
type MaterialView struct {
	models.Material
	TotalCost decimal.Decimal `json:"total_cost"`
}

// CreateCategory adds a category owned by userID.
func (s *CatalogService) CreateCategory(ctx context.Context, userID uint, in CategoryInput) (uint, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, invalid("name", "name is required")
	}
	kind := strings.ToLower(strings.TrimSpace(in.Type))
	if !models.ValidType(kind) {
		return 0, invalid("type", "type must be income or expense")
	}

	c := models.Category{UserID: &userID, Name: name, Type: kind}
	if err := s.store.CreateCategory(ctx, &c); err != nil {
		return 0, translate(err)
	}
	return c.ID, nil
}

// ListCategories returns the defaults plus the user's own categories.
func (s *CatalogService) ListCategories(ctx context.Context, userID uint) ([]models.Category, error) {
	list, err := s.store.ListCategories(ctx, userID)
	return list, translate(err)
}

// CreateGoal adds a goal. The current amount defaults to zero.
func (s *CatalogService) CreateGoal(ctx context.Context, userID uint, in GoalInput) (uint, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, invalid("name", "name is required")
	}
	target, err := parseAmount("target_amount", in.TargetAmount)
	if err != nil {
		return 0, err
	}
	current, err := parseOptionalAmount("current_amount", in.CurrentAmount)
	if err != nil {
		return 0, err
	}
	if in.CategoryID != nil {
		if _, err := s.store.FindCategory(ctx, userID, *in.CategoryID); err != nil {
			if errors.Is(translate(err), ErrNotFound) {
				return 0, invalid("category_id", "unknown category")
			}
			return 0, translate(err)
		}
	}

	g := models.Goal{
		UserID:        userID,
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: current.Decimal,
		StartDate:     strings.TrimSpace(in.StartDate),
		EndDate:       strings.TrimSpace(in.EndDate),
		CategoryID:    in.CategoryID,
	}
	if err := s.store.CreateGoal(ctx, &g); err != nil {
		return 0, translate(err)
	}
	return g.ID, nil
}

// ListGoals returns the user's goals with their remaining amount.
func (s *CatalogService) ListGoals(ctx context.Context, userID uint) ([]GoalView, error) {
	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	views := make([]GoalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, GoalView{Goal: g, Remaining: g.Remaining()})
	}
	return views, nil
}

// CreateMaterial adds a supply record.
func (s *CatalogService) CreateMaterial(ctx context.Context, userID uint, in MaterialInput) (uint, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, invalid("name", "name is required")
	}
	qty, err := parseQuantity("quantity", in.Quantity)
	if err != nil {
		return 0, err
	}
	cost, err := parseAmount("unit_cost", in.UnitCost)
	if err != nil {
		return 0, err
	}

	m := models.Material{
		UserID:   userID,
		Name:     name,
		Unit:     strings.TrimSpace(in.Unit),
		Quantity: qty,
		UnitCost: cost,
		Supplier: strings.TrimSpace(in.Supplier),
	}
	if err := s.store.CreateMaterial(ctx, &m); err != nil {
		return 0, translate(err)
	}
	return m.ID, nil
}

// ListMaterials returns the user's materials with their total cost.
func (s *CatalogService) ListMaterials(ctx context.Context, userID uint) ([]MaterialView, error) {
	materials, err := s.store.ListMaterials(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	views := make([]MaterialView, 0, len(materials))
	for _, m := range materials {
		views = append(views, MaterialView{Material: m, TotalCost: m.TotalCost()})
	}
	return views, nil
}

// CreateSharedAccount creates an account with userID as its owner member.
func (s *CatalogService) CreateSharedAccount(ctx context.Context, userID uint, in SharedAccountInput) (uint, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, invalid("name", "name is required")
	}

	a := models.SharedAccount{
		OwnerID:     userID,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Members:     []models.SharedAccountMember{{UserID: userID, Role: models.MemberRoleOwner}},
	}
	if err := s.store.CreateSharedAccount(ctx, &a); err != nil {
		return 0, translate(err)
	}
	return a.ID, nil
}

// ListSharedAccounts returns the accounts the user is a member of.
func (s *CatalogService) ListSharedAccounts(ctx context.Context, userID uint) ([]models.SharedAccount, error) {
	list, err := s.store.ListSharedAccounts(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}
