package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"auracash/config"
	"auracash/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	return c, w
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &service.ValidationError{Field: "amount", Message: "amount must be a number"}, http.StatusBadRequest},
		{"duplicate", service.ErrDuplicateEmail, http.StatusConflict},
		{"credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized},
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"unavailable", fmt.Errorf("%w: dial tcp", service.ErrDatabaseUnavailable), http.StatusServiceUnavailable},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			respondError(c, tt.err)
			assert.Equal(t, tt.status, w.Code)

			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, float64(tt.status), resp["code"])
		})
	}
}

func TestRespondError_UsesStatusHelpers(t *testing.T) {
	c, w := newTestContext()
	respondError(c, service.ErrUnauthenticated)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgSessionExpired, resp["message"])
	assert.Equal(t, "/login", resp["redirect"])

	c, w = newTestContext()
	respondError(c, service.ErrDuplicateEmail)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), msgDuplicateEmail)
	assert.NotContains(t, w.Body.String(), "redirect")
}

func TestFormError_UnauthenticatedGoesToLogin(t *testing.T) {
	c, w := newTestContext()
	formError(c, "/configuracoes", service.ErrUnauthenticated)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRespondError_HidesDetailsInRelease(t *testing.T) {
	config.GlobalConfig = &config.Config{Server: config.ServerConfig{Mode: "release"}}
	defer func() { config.GlobalConfig = nil }()

	c, w := newTestContext()
	respondError(c, errors.New("pq: relation users does not exist"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "relation")
	assert.Contains(t, w.Body.String(), msgInternal)
}

func TestFormError_FlashesUserErrors(t *testing.T) {
	c, w := newTestContext()
	formError(c, "/cadastro", service.ErrDuplicateEmail)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cadastro", w.Header().Get("Location"))

	var flash *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == flashCookie {
			flash = ck
		}
	}
	require.NotNil(t, flash)

	c2, w2 := newTestContext()
	c2.Request.AddCookie(flash)
	got := popFlash(c2)
	require.NotNil(t, got)
	assert.Equal(t, Flash{Kind: FlashError, Message: msgDuplicateEmail}, *got)

	// popping also expires the cookie
	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
}

func TestFormError_ServerErrorsAreNotFlashed(t *testing.T) {
	c, w := newTestContext()
	formError(c, "/transacoes", fmt.Errorf("%w: gone", service.ErrDatabaseUnavailable))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Empty(t, w.Header().Get("Location"))
}

func TestPopFlash_MissingOrCorrupt(t *testing.T) {
	c, _ := newTestContext()
	assert.Nil(t, popFlash(c))

	c2, _ := newTestContext()
	c2.Request.AddCookie(&http.Cookie{Name: flashCookie, Value: "%%%"})
	assert.Nil(t, popFlash(c2))
}
