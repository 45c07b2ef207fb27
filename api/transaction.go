package api

import (
	"auracash/middleware"
	"auracash/models"
	"auracash/service"

	"github.com/gin-gonic/gin"
)

const transactionsPath = "/transacoes"

// LedgerHandler dashboard and transactions
type LedgerHandler struct {
	ledger  *service.LedgerService
	catalog *service.CatalogService
}

func NewLedgerHandler(ledger *service.LedgerService, catalog *service.CatalogService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, catalog: catalog}
}

// TransactionRequest transaction form. The form posts the description as
// "desc"; JSON clients use "description".
type TransactionRequest struct {
	Description string      `form:"desc" json:"description" example:"Mercado"`
	Amount      looseString `form:"amount" json:"amount" swaggertype:"string" example:"150.75"`
	Type        string      `form:"type" json:"type" enums:"income,expense" example:"expense"`
	Date        string      `form:"date" json:"date" example:"2024-05-10"`
	CategoryID  looseString `form:"category_id" json:"category_id" swaggertype:"string" example:"5"`
}

func (r *TransactionRequest) input() (service.TransactionInput, error) {
	categoryID, err := optionalID("category_id", r.CategoryID)
	if err != nil {
		return service.TransactionInput{}, err
	}
	return service.TransactionInput{
		Description: r.Description,
		Amount:      r.Amount.String(),
		Type:        r.Type,
		Date:        r.Date,
		CategoryID:  categoryID,
	}, nil
}

// DashboardView dashboard payload
type DashboardView struct {
	User   *middleware.Session  `json:"user"`
	Totals models.Totals        `json:"totals"`
	Recent []models.Transaction `json:"recent"`
	Flash  *Flash               `json:"flash,omitempty"`
}

// TransactionsView ledger page payload
type TransactionsView struct {
	Transactions []models.Transaction `json:"transactions"`
	Categories   []models.Category    `json:"categories"`
	Flash        *Flash               `json:"flash,omitempty"`
}

// Dashboard totals and latest transactions
// @Summary Dashboard
// @Description Income, expense and balance of the signed-in user plus the 5 most recent transactions.
// @Tags ledger
// @Produce json
// @Success 200 {object} Response{data=DashboardView}
// @Failure 302 "redirect to /login without a session"
// @Failure 503 {object} Response
// @Router /dashboard [get]
func (h *LedgerHandler) Dashboard(c *gin.Context) {
	dash, err := h.ledger.Dashboard(c.Request.Context(), middleware.GetCurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, DashboardView{
		User:   middleware.GetCurrentSession(c),
		Totals: dash.Totals,
		Recent: dash.Recent,
		Flash:  popFlash(c),
	})
}

// ListTransactions full ledger
// @Summary Transactions
// @Description Every transaction of the signed-in user, newest date first.
// @Tags ledger
// @Produce json
// @Success 200 {object} Response{data=TransactionsView}
// @Router /transacoes [get]
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	userID := middleware.GetCurrentUserID(c)

	list, err := h.ledger.ListTransactions(ctx, userID, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	categories, err := h.catalog.ListCategories(ctx, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, TransactionsView{Transactions: list, Categories: categories, Flash: popFlash(c)})
}

// CreateTransactionForm records a transaction from the ledger form
// @Summary Add transaction (form)
// @Tags ledger
// @Accept x-www-form-urlencoded
// @Param desc formData string false "description"
// @Param amount formData string true "amount"
// @Param type formData string true "income or expense"
// @Param date formData string false "date"
// @Param category_id formData string false "category id"
// @Success 303 "redirect to /transacoes"
// @Router /transacoes [post]
func (h *LedgerHandler) CreateTransactionForm(c *gin.Context) {
	var req TransactionRequest
	submitForm(c, transactionsPath, "Transação salva!", &req, func(userID uint) error {
		_, err := h.create(c, userID, &req)
		return err
	})
}

// CreateTransaction records a transaction
// @Summary Add transaction
// @Tags ledger
// @Accept json
// @Produce json
// @Param request body TransactionRequest true "transaction"
// @Success 200 {object} Response{data=CreatedView}
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /api/transacao [post]
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	submitJSON(c, "Transação salva!", &req, func(userID uint) (uint, error) {
		return h.create(c, userID, &req)
	})
}

func (h *LedgerHandler) create(c *gin.Context, userID uint, req *TransactionRequest) (uint, error) {
	in, err := req.input()
	if err != nil {
		return 0, err
	}
	return h.ledger.AddTransaction(c.Request.Context(), userID, in)
}

// CreatedView id of a new record
type CreatedView struct {
	ID uint `json:"id"`
}

func created(c *gin.Context, message string, id uint) {
	SuccessWithMessage(c, message, CreatedView{ID: id})
}
