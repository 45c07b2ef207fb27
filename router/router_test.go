package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"auracash/config"
	"auracash/database"
	"auracash/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionCookie = "auracash_session"

type testApp struct {
	router *gin.Engine
	store  *database.Store
}

type apiResponse struct {
	Code     int                    `json:"code"`
	Message  string                 `json:"message"`
	Data     map[string]interface{} `json:"data"`
	Redirect string                 `json:"redirect"`
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: gin.TestMode},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "router.db")},
		Session: config.SessionConfig{
			Secret:     "router-test-secret",
			CookieName: sessionCookie,
			ExpireTime: time.Hour,
		},
	}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	store := database.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })

	return &testApp{router: SetupRouter(cfg, NewServices(cfg, store)), store: store}
}

func (a *testApp) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) get(path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (a *testApp) postForm(path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req, cookies...)
}

func (a *testApp) postJSON(path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return a.do(req, cookies...)
}

func (a *testApp) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, a.store.DB().Model(model).Count(&n).Error)
	return n
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return resp
}

// signUp registers and logs in, returning the session cookie.
func (a *testApp) signUp(t *testing.T, name, email, password string) *http.Cookie {
	t.Helper()
	w := a.postForm("/cadastro", url.Values{"name": {name}, "email": {email}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	w = a.postForm("/login", url.Values{"email": {email}, "password": {password}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	session := findCookie(w, sessionCookie)
	require.NotNil(t, session)
	return session
}

func TestProtectedRoutes_RequireSession(t *testing.T) {
	app := newTestApp(t)
	tables := []interface{}{
		&models.Transaction{}, &models.Category{}, &models.Goal{},
		&models.Material{}, &models.SharedAccount{}, &models.User{},
	}
	before := make([]int64, len(tables))
	for i, m := range tables {
		before[i] = app.count(t, m)
	}

	pages := []string{
		"/dashboard", "/transacoes", "/categorias", "/metas", "/empreendedor",
		"/compartilhada", "/configuracoes", "/relatorios", "/relatorios/exportar", "/dicas",
	}
	for _, p := range pages {
		w := app.get(p)
		assert.Equal(t, http.StatusFound, w.Code, p)
		assert.Equal(t, "/login", w.Header().Get("Location"), p)
	}

	forms := map[string]url.Values{
		"/transacoes":          {"desc": {"x"}, "amount": {"10"}, "type": {"income"}, "date": {"2024-01-01"}},
		"/categorias":          {"name": {"x"}, "type": {"income"}},
		"/metas":               {"name": {"x"}, "target_amount": {"10"}},
		"/empreendedor":        {"name": {"x"}, "quantity": {"1"}, "unit_cost": {"1"}},
		"/compartilhada":       {"name": {"x"}},
		"/configuracoes":       {"name": {"x"}, "email": {"x@example.com"}},
		"/configuracoes/senha": {"old_password": {"a"}, "new_password": {"bbbbbbb"}},
	}
	for p, form := range forms {
		w := app.postForm(p, form)
		assert.Equal(t, http.StatusFound, w.Code, p)
		assert.Equal(t, "/login", w.Header().Get("Location"), p)
	}

	apis := map[string]interface{}{
		"/api/transacao":     gin.H{"amount": 10, "type": "income"},
		"/api/categoria":     gin.H{"name": "x", "type": "income"},
		"/api/meta":          gin.H{"name": "x", "target_amount": "10"},
		"/api/material":      gin.H{"name": "x", "quantity": 1, "unit_cost": 1},
		"/api/compartilhada": gin.H{"name": "x"},
	}
	forged := &http.Cookie{Name: sessionCookie, Value: "forged.token.value"}
	for p, body := range apis {
		w := app.postJSON(p, body, forged)
		assert.Equal(t, http.StatusUnauthorized, w.Code, p)
		assert.Equal(t, "/login", decode(t, w).Redirect, p)
	}

	for i, m := range tables {
		assert.Equal(t, before[i], app.count(t, m))
	}
}

func TestRegisterLoginAndLedgerFlow(t *testing.T) {
	app := newTestApp(t)

	w := app.postForm("/cadastro", url.Values{"name": {"Ana"}, "email": {"Ana@Example.com"}, "password": {"secret123"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	flash := findCookie(w, "flash")
	require.NotNil(t, flash)

	w = app.get("/login", flash)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	require.NotNil(t, resp.Data["flash"])
	assert.Equal(t, "Cadastro feito!", resp.Data["flash"].(map[string]interface{})["message"])

	w = app.postForm("/login", url.Values{"email": {"ana@example.com"}, "password": {"secret123"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	session := findCookie(w, sessionCookie)
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	w = app.postForm("/transacoes", url.Values{"desc": {"Salário"}, "amount": {"1000"}, "type": {"income"}, "date": {"2024-05-01"}}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/transacoes", w.Header().Get("Location"))

	w = app.postJSON("/api/transacao", gin.H{"description": "Aluguel", "amount": 300, "type": "expense", "date": "2024-05-02"}, session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotZero(t, decode(t, w).Data["id"])

	w = app.get("/dashboard", session)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode(t, w)
	totals := resp.Data["totals"].(map[string]interface{})
	assert.Equal(t, "1000", totals["income"])
	assert.Equal(t, "300", totals["expense"])
	assert.Equal(t, "700", totals["balance"])
	assert.Len(t, resp.Data["recent"], 2)
	assert.Equal(t, "Ana", resp.Data["user"].(map[string]interface{})["name"])

	w = app.get("/transacoes", session)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode(t, w).Data["transactions"].([]interface{})
	require.Len(t, list, 2)
	assert.Equal(t, "2024-05-02", list[0].(map[string]interface{})["date"])
}

func TestRegister_DuplicateEmailFlashesError(t *testing.T) {
	app := newTestApp(t)
	app.signUp(t, "Ana", "ana@example.com", "secret123")
	users := app.count(t, &models.User{})

	w := app.postForm("/registrar", url.Values{"name": {"Outra"}, "email": {"ana@example.com"}, "password": {"outra123"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/registrar", w.Header().Get("Location"))
	assert.Equal(t, users, app.count(t, &models.User{}))

	w = app.get("/registrar", findCookie(w, "flash"))
	resp := decode(t, w)
	assert.Equal(t, "Email já existe", resp.Data["flash"].(map[string]interface{})["message"])
}

func TestLogin_WrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.signUp(t, "Ana", "ana@example.com", "secret123")

	w := app.postForm("/login", url.Values{"email": {"ana@example.com"}, "password": {"nope"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	assert.Nil(t, findCookie(w, sessionCookie))
}

func TestAPI_ValidationErrors(t *testing.T) {
	app := newTestApp(t)
	session := app.signUp(t, "Ana", "ana@example.com", "secret123")

	w := app.postJSON("/api/transacao", gin.H{"amount": "abc", "type": "income"}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.postJSON("/api/transacao", gin.H{"amount": 5, "type": "gift"}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = app.postJSON("/api/categoria", gin.H{"name": "", "type": "income"}, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Zero(t, app.count(t, &models.Transaction{}))
}

func TestCatalogRoutes(t *testing.T) {
	app := newTestApp(t)
	session := app.signUp(t, "Ana", "ana@example.com", "secret123")

	w := app.postJSON("/api/categoria", gin.H{"name": "Pets", "type": "expense"}, session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.postForm("/metas", url.Values{"name": {"Viagem"}, "target_amount": {"5000"}, "current_amount": {"1000"}}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = app.postJSON("/api/material", gin.H{"name": "Farinha", "quantity": 2, "unit_cost": "3.5"}, session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = app.postJSON("/api/compartilhada", gin.H{"name": "Casa"}, session)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode(t, app.get("/categorias", session))
	assert.Len(t, resp.Data["categories"], len(models.GetDefaultCategories())+1)

	resp = decode(t, app.get("/metas", session))
	goals := resp.Data["goals"].([]interface{})
	require.Len(t, goals, 1)
	assert.Equal(t, "4000", goals[0].(map[string]interface{})["remaining"])

	resp = decode(t, app.get("/empreendedor", session))
	materials := resp.Data["materials"].([]interface{})
	require.Len(t, materials, 1)
	assert.Equal(t, "7", materials[0].(map[string]interface{})["total_cost"])

	resp = decode(t, app.get("/compartilhada", session))
	assert.Len(t, resp.Data["accounts"], 1)
}

func TestSettings_UpdateProfile(t *testing.T) {
	app := newTestApp(t)
	app.signUp(t, "Bob", "bob@example.com", "secret123")
	session := app.signUp(t, "Ana", "ana@example.com", "secret123")

	w := app.postForm("/configuracoes", url.Values{"name": {"Ana Maria"}, "email": {"bob@example.com"}}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Nil(t, findCookie(w, sessionCookie))

	resp := decode(t, app.get("/configuracoes", session))
	user := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "Ana", user["name"])
	assert.Equal(t, "ana@example.com", user["email"])

	w = app.postForm("/configuracoes", url.Values{"name": {"Ana Maria"}, "email": {"ana.maria@example.com"}, "income": {"3200"}}, session)
	require.Equal(t, http.StatusSeeOther, w.Code)
	renewed := findCookie(w, sessionCookie)
	require.NotNil(t, renewed)

	resp = decode(t, app.get("/dashboard", renewed))
	sess := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "Ana Maria", sess["name"])
	assert.Equal(t, "ana.maria@example.com", sess["email"])
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)
	session := app.signUp(t, "Ana", "ana@example.com", "secret123")

	w := app.get("/logout", session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	cleared := findCookie(w, sessionCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)

	// logging out without a session is harmless
	assert.Equal(t, http.StatusFound, app.get("/logout").Code)
}

func TestReportsExport(t *testing.T) {
	app := newTestApp(t)
	session := app.signUp(t, "Ana", "ana@example.com", "secret123")
	app.postJSON("/api/transacao", gin.H{"amount": 100, "type": "income", "date": "2024-02-01"}, session)

	w := app.get("/relatorios/exportar?formato=csv", session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	w = app.get("/relatorios/exportar?formato=pdf", session)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decode(t, app.get("/relatorios", session))
	assert.Len(t, resp.Data["months"], 1)
}

func TestHealthAndDatabaseUnavailable(t *testing.T) {
	app := newTestApp(t)
	session := app.signUp(t, "Ana", "ana@example.com", "secret123")

	assert.Equal(t, http.StatusOK, app.get("/health").Code)

	require.NoError(t, app.store.Close())

	assert.Equal(t, http.StatusServiceUnavailable, app.get("/health").Code)
	w := app.get("/dashboard", session)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "closed")
}

func TestRoot_RedirectsToLogin(t *testing.T) {
	app := newTestApp(t)
	w := app.get("/")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}
