package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"auracash/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionManager() *SessionManager {
	return NewSessionManager(&config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		Session: config.SessionConfig{
			Secret:     "test-session-secret",
			CookieName: "auracash_session",
			ExpireTime: time.Hour,
		},
	})
}

func newProtectedRouter(m *SessionManager, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/", RequireSession(m))
	handler := func(c *gin.Context) {
		*hits++
		s := GetCurrentSession(c)
		c.String(http.StatusOK, "id:%d name:%s", GetCurrentUserID(c), s.Name)
	}
	protected.GET("/dashboard", handler)
	protected.POST("/api/transacao", handler)
	return r
}

func TestSessionToken_RoundTrip(t *testing.T) {
	m := newTestSessionManager()

	token, err := m.Token(Session{UserID: 7, Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	assert.Greater(t, len(token), 20)

	s, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, Session{UserID: 7, Name: "Ana", Email: "ana@example.com"}, *s)
}

func TestSessionToken_Rejected(t *testing.T) {
	m := newTestSessionManager()

	_, err := m.Parse("")
	assert.ErrorIs(t, err, ErrInvalidSession)
	_, err = m.Parse("not.a.valid.jwt")
	assert.ErrorIs(t, err, ErrInvalidSession)

	other := newTestSessionManager()
	other.secret = []byte("another-secret")
	forged, err := other.Token(Session{UserID: 1})
	require.NoError(t, err)
	_, err = m.Parse(forged)
	assert.ErrorIs(t, err, ErrInvalidSession)

	expired := newTestSessionManager()
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, err := expired.Token(Session{UserID: 1})
	require.NoError(t, err)
	_, err = m.Parse(old)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestRequireSession_PageRedirects(t *testing.T) {
	m := newTestSessionManager()
	hits := 0
	r := newProtectedRouter(m, &hits)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, LoginPath, w.Header().Get("Location"))
	assert.Zero(t, hits)
}

func TestRequireSession_APIUnauthorized(t *testing.T) {
	m := newTestSessionManager()
	hits := 0
	r := newProtectedRouter(m, &hits)

	req := httptest.NewRequest(http.MethodPost, "/api/transacao", nil)
	req.AddCookie(&http.Cookie{Name: "auracash_session", Value: "garbage"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
	assert.Zero(t, hits)
}

func TestRequireSession_ValidCookie(t *testing.T) {
	m := newTestSessionManager()
	hits := 0
	r := newProtectedRouter(m, &hits)

	token, err := m.Token(Session{UserID: 42, Name: "Bia", Email: "bia@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "auracash_session", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "id:42 name:Bia", w.Body.String())
	assert.Equal(t, 1, hits)
}

func TestIssueAndClear(t *testing.T) {
	m := newTestSessionManager()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Issue(c, Session{UserID: 3, Name: "C", Email: "c@example.com"}))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auracash_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/logout", nil)
	m.Clear(c2)
	cleared := w2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestGetCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, uint(0), GetCurrentUserID(c))
	assert.Nil(t, GetCurrentSession(c))

	c.Set("userID", uint(99))
	assert.Equal(t, uint(99), GetCurrentUserID(c))
}
