package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"auracash/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"

	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"

	exportSheet = "Transações"
)

// ReportStore is what reports read.
type ReportStore interface {
	ListTransactions(ctx context.Context, userID uint, limit int) ([]models.Transaction, error)
	SumByType(ctx context.Context, userID uint) (income, expense decimal.Decimal, err error)
	MonthlyTotals(ctx context.Context, userID uint) ([]models.MonthSummary, error)
	ListCategories(ctx context.Context, userID uint) ([]models.Category, error)
}

// ReportService builds the monthly summary and ledger exports.
type ReportService struct {
	store ReportStore
	now   func() time.Time
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store, now: time.Now}
}

// Export is a rendered file ready to be sent to the client.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MonthlySummary returns the per-month totals, newest month first.
func (s *ReportService) MonthlySummary(ctx context.Context, userID uint) ([]models.MonthSummary, error) {
	months, err := s.store.MonthlyTotals(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	return months, nil
}

// Export renders the full ledger of userID in the given format.
func (s *ReportService) Export(ctx context.Context, userID uint, format string) (*Export, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatXLSX
	}
	if format != FormatXLSX && format != FormatCSV {
		return nil, invalid("formato", "format must be xlsx or csv")
	}

	list, err := s.store.ListTransactions(ctx, userID, 0)
	if err != nil {
		return nil, translate(err)
	}
	income, expense, err := s.store.SumByType(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	categories, err := s.store.ListCategories(ctx, userID)
	if err != nil {
		return nil, translate(err)
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	rows := make([]exportRow, 0, len(list))
	for _, t := range list {
		row := exportRow{tx: t}
		if t.CategoryID != nil {
			row.category = names[*t.CategoryID]
		}
		rows = append(rows, row)
	}
	totals := models.NewTotals(income, expense)

	filename := fmt.Sprintf("transacoes_%s.%s", s.now().Format("20060102"), format)
	if format == FormatCSV {
		data, err := renderCSV(rows, totals)
		if err != nil {
			return nil, err
		}
		return &Export{Filename: filename, ContentType: contentTypeCSV, Data: data}, nil
	}
	data, err := renderXLSX(rows, totals)
	if err != nil {
		return nil, err
	}
	return &Export{Filename: filename, ContentType: contentTypeXLSX, Data: data}, nil
}

type exportRow struct {
	tx       models.Transaction
	category string
}

var exportHeaders = []string{"ID", "Data", "Descrição", "Categoria", "Tipo", "Valor"}

func typeLabel(t string) string {
	if t == models.TypeIncome {
		return "Receita"
	}
	return "Despesa"
}

func renderCSV(rows []exportRow, totals models.Totals) ([]byte, error) {
	buf := new(bytes.Buffer)
	// BOM so spreadsheet apps detect UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	w := csv.NewWriter(buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.tx.ID), 10),
			r.tx.Date,
			r.tx.Description,
			r.category,
			typeLabel(r.tx.Type),
			r.tx.Amount.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv: %w", err)
		}
	}
	summary := [][]string{
		{"", "", "", "", "Receitas", totals.Income.StringFixed(2)},
		{"", "", "", "", "Despesas", totals.Expense.StringFixed(2)},
		{"", "", "", "", "Saldo", totals.Balance.StringFixed(2)},
	}
	if err := w.WriteAll(summary); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func renderXLSX(rows []exportRow, totals models.Totals) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}
	dataStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}
	summaryStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx style: %w", err)
	}

	widths := map[string]float64{"A": 8, "B": 14, "C": 32, "D": 18, "E": 12, "F": 14}
	for col, w := range widths {
		_ = f.SetColWidth(exportSheet, col, col, w)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(exportSheet, cell, h)
	}
	_ = f.SetCellStyle(exportSheet, "A1", "F1", headerStyle)

	for i, r := range rows {
		row := i + 2
		amount, _ := r.tx.Amount.Float64()
		values := []interface{}{r.tx.ID, r.tx.Date, r.tx.Description, r.category, typeLabel(r.tx.Type), amount}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(exportSheet, cell, v)
		}
		_ = f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), dataStyle)
	}

	next := len(rows) + 2
	summary := []struct {
		label string
		value decimal.Decimal
	}{
		{"Receitas", totals.Income},
		{"Despesas", totals.Expense},
		{"Saldo", totals.Balance},
	}
	for i, line := range summary {
		row := next + i
		v, _ := line.value.Float64()
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), line.label)
		_ = f.MergeCell(exportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("E%d", row))
		_ = f.SetCellValue(exportSheet, fmt.Sprintf("F%d", row), v)
		_ = f.SetCellStyle(exportSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("F%d", row), summaryStyle)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
