package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"auracash/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	contextSessionKey = "session"
	contextUserIDKey  = "userID"

	// LoginPath is where anonymous visitors of protected pages are sent.
	LoginPath = "/login"
)

var ErrInvalidSession = errors.New("invalid session")

// Session is the identity carried by the session cookie.
type Session struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Claims session token payload
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies signed session cookies.
type SessionManager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

func NewSessionManager(cfg *config.Config) *SessionManager {
	return &SessionManager{
		secret:     []byte(cfg.Session.Secret),
		cookieName: cfg.Session.CookieName,
		ttl:        cfg.Session.ExpireTime,
		secure:     cfg.Server.Mode == gin.ReleaseMode,
		now:        time.Now,
	}
}

// Token signs s into an HS256 token.
func (m *SessionManager) Token(s Session) (string, error) {
	now := m.now()
	claims := Claims{
		Name:  s.Name,
		Email: s.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(s.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Parse verifies a token and returns the session inside it.
func (m *SessionManager) Parse(token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidSession
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, ErrInvalidSession
	}
	return &Session{UserID: uint(id), Name: claims.Name, Email: claims.Email}, nil
}

// Issue sets the session cookie for s.
func (m *SessionManager) Issue(c *gin.Context, s Session) error {
	token, err := m.Token(s)
	if err != nil {
		return err
	}
	m.setCookie(c, token, int(m.ttl.Seconds()))
	return nil
}

// Clear removes the session cookie. It is safe to call without a session.
func (m *SessionManager) Clear(c *gin.Context) {
	m.setCookie(c, "", -1)
}

// Read returns the session of the request, or nil when there is none or it
// does not verify.
func (m *SessionManager) Read(c *gin.Context) *Session {
	token, err := c.Cookie(m.cookieName)
	if err != nil {
		return nil
	}
	s, err := m.Parse(token)
	if err != nil {
		return nil
	}
	return s
}

func (m *SessionManager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetCookieData(&http.Cookie{
		Name:     m.cookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   m.secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireSession aborts requests without a valid session before any handler
// runs. Pages are redirected to the login form; /api routes get a 401 JSON.
func RequireSession(m *SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := m.Read(c)
		if s == nil {
			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"code":     http.StatusUnauthorized,
					"message":  "authentication required",
					"redirect": LoginPath,
				})
				return
			}
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Set(contextSessionKey, s)
		c.Set(contextUserIDKey, s.UserID)
		c.Next()
	}
}

// GetCurrentSession returns the session stored by RequireSession.
func GetCurrentSession(c *gin.Context) *Session {
	if v, ok := c.Get(contextSessionKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	return nil
}

// GetCurrentUserID returns the signed-in user's id, or 0.
func GetCurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(contextUserIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
