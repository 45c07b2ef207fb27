package database

import (
	"context"
	"fmt"
	"sort"

	"auracash/models"

	"github.com/shopspring/decimal"
)

// amountScale matches the decimal(14,2) money columns.
const amountScale = 2

// CreateTransaction inserts t and fills its ID.
func (s *Store) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	if err := s.conn(ctx).Omit("User", "Category").Create(t).Error; err != nil {
		return fmt.Errorf("create transaction: %w", classify(err))
	}
	return nil
}

// ListTransactions returns a user's transactions, newest date first.
// limit <= 0 returns the full history.
func (s *Store) ListTransactions(ctx context.Context, userID uint, limit int) ([]models.Transaction, error) {
	query := s.conn(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	list := make([]models.Transaction, 0)
	if err := query.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", classify(err))
	}
	return list, nil
}

// amountRow is the part of a transaction the aggregates read. Sums are taken in
// Go; SQLite stores decimal columns as REAL.
type amountRow struct {
	Date   string
	Type   string
	Amount decimal.Decimal
}

func (s *Store) ledgerAmounts(ctx context.Context, userID uint) ([]amountRow, error) {
	rows := make([]amountRow, 0)
	err := s.conn(ctx).Model(&models.Transaction{}).
		Select("date", "type", "amount").
		Where("user_id = ?", userID).
		Find(&rows).Error
	if err != nil {
		return nil, classify(err)
	}
	for i := range rows {
		rows[i].Amount = rows[i].Amount.Round(amountScale)
	}
	return rows, nil
}

// SumByType returns the income and expense sums of a user's ledger; both are
// zero when the user has no transactions.
func (s *Store) SumByType(ctx context.Context, userID uint) (income, expense decimal.Decimal, err error) {
	rows, err := s.ledgerAmounts(ctx, userID)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum transactions: %w", err)
	}
	income, expense = decimal.Zero, decimal.Zero
	for _, r := range rows {
		switch r.Type {
		case models.TypeIncome:
			income = income.Add(r.Amount)
		case models.TypeExpense:
			expense = expense.Add(r.Amount)
		}
	}
	return income, expense, nil
}

// MonthlyTotals groups a user's ledger by the first seven characters of the
// date (YYYY-MM for ISO dates), newest month first.
func (s *Store) MonthlyTotals(ctx context.Context, userID uint) ([]models.MonthSummary, error) {
	rows, err := s.ledgerAmounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("monthly totals: %w", err)
	}

	summaries := make([]models.MonthSummary, 0)
	index := make(map[string]int)
	for _, r := range rows {
		month := r.Date
		if len(month) > 7 {
			month = month[:7]
		}
		i, ok := index[month]
		if !ok {
			i = len(summaries)
			index[month] = i
			summaries = append(summaries, models.MonthSummary{Month: month})
		}
		switch r.Type {
		case models.TypeIncome:
			summaries[i].Income = summaries[i].Income.Add(r.Amount)
		case models.TypeExpense:
			summaries[i].Expense = summaries[i].Expense.Add(r.Amount)
		}
	}

	sort.Slice(summaries, func(a, b int) bool { return summaries[a].Month > summaries[b].Month })
	for i := range summaries {
		summaries[i].Totals = models.NewTotals(summaries[i].Income, summaries[i].Expense)
	}
	return summaries, nil
}
