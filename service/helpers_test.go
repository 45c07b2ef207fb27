package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"auracash/config"
	"auracash/database"
	"auracash/models"

	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *database.Store {
	t.Helper()
	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: "test"},
		Database: config.DatabaseConfig{Driver: config.DriverSQLite, Path: filepath.Join(t.TempDir(), "service.db")},
	}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	store := database.NewStore(db)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestAuth(store *database.Store, mailer Mailer) *AuthService {
	s := NewAuthService(store, mailer)
	s.cost = bcrypt.MinCost
	return s
}

// registerUser creates a user with generated data and returns its id.
func registerUser(t *testing.T, auth *AuthService) (uint, RegisterInput) {
	t.Helper()
	in := RegisterInput{
		Name:     faker.Name(),
		Email:    faker.Email(),
		Password: "secret123",
	}
	id, err := auth.Register(context.Background(), in)
	require.NoError(t, err)
	return id, in
}

func countUsers(t *testing.T, store *database.Store) int64 {
	t.Helper()
	var n int64
	require.NoError(t, store.DB().Model(&models.User{}).Count(&n).Error)
	return n
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *recordingMailer) SendWelcomeEmail(toEmail, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, toEmail)
	return m.err
}
