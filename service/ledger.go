package service

import (
	"context"
	"errors"
	"strings"

	"auracash/models"

	"github.com/shopspring/decimal"
)

// DashboardRecent is how many transactions the dashboard shows.
const DashboardRecent = 5

// LedgerStore is the persistence the ledger needs.
type LedgerStore interface {
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	ListTransactions(ctx context.Context, userID uint, limit int) ([]models.Transaction, error)
	SumByType(ctx context.Context, userID uint) (income, expense decimal.Decimal, err error)
	FindCategory(ctx context.Context, userID, id uint) (*models.Category, error)
}

// LedgerService records transactions and aggregates them.
type LedgerService struct {
	store LedgerStore
}

func NewLedgerService(store LedgerStore) *LedgerService {
	return &LedgerService{store: store}
}

// TransactionInput fields of a new transaction. Amount and Date are taken as
// typed: neither the sign nor the date format is checked.
type TransactionInput struct {
	Description string
	Amount      string
	Type        string
	Date        string
	CategoryID  *uint
}

// Dashboard is the aggregated view shown after login.
type Dashboard struct {
	Totals models.Totals         `json:"totals"`
	Recent []models.Transaction `json:"recent"`
}

// AddTransaction records a transaction for userID and returns its id.
func (s *LedgerService) AddTransaction(ctx context.Context, userID uint, in TransactionInput) (uint, error) {
	amount, err := parseAmount("amount", in.Amount)
	if err != nil {
		return 0, err
	}
	kind := strings.ToLower(strings.TrimSpace(in.Type))
	if !models.ValidType(kind) {
		return 0, invalid("type", "type must be income or expense")
	}
	if err := s.checkCategory(ctx, userID, in.CategoryID); err != nil {
		return 0, err
	}

	t := models.Transaction{
		UserID:      userID,
		Description: strings.TrimSpace(in.Description),
		Amount:      amount,
		Type:        kind,
		CategoryID:  in.CategoryID,
		Date:        strings.TrimSpace(in.Date),
	}
	if err := s.store.CreateTransaction(ctx, &t); err != nil {
		return 0, translate(err)
	}
	return t.ID, nil
}

// ListTransactions returns userID's transactions by date descending.
// limit <= 0 means the full history.
func (s *LedgerService) ListTransactions(ctx context.Context, userID uint, limit int) ([]models.Transaction, error) {
	list, err := s.store.ListTransactions(ctx, userID, limit)
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

// ComputeTotals sums income and expense; a user without transactions gets zeros.
func (s *LedgerService) ComputeTotals(ctx context.Context, userID uint) (models.Totals, error) {
	income, expense, err := s.store.SumByType(ctx, userID)
	if err != nil {
		return models.Totals{}, translate(err)
	}
	return models.NewTotals(income, expense), nil
}

// Dashboard combines the totals with the most recent transactions.
func (s *LedgerService) Dashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	totals, err := s.ComputeTotals(ctx, userID)
	if err != nil {
		return nil, err
	}
	recent, err := s.ListTransactions(ctx, userID, DashboardRecent)
	if err != nil {
		return nil, err
	}
	return &Dashboard{Totals: totals, Recent: recent}, nil
}

func (s *LedgerService) checkCategory(ctx context.Context, userID uint, id *uint) error {
	if id == nil {
		return nil
	}
	if _, err := s.store.FindCategory(ctx, userID, *id); err != nil {
		if errors.Is(translate(err), ErrNotFound) {
			return invalid("category_id", "unknown category")
		}
		return translate(err)
	}
	return nil
}
