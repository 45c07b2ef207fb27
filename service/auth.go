package service

import (
	"context"
	"errors"
	"strings"

	"auracash/database"
	"auracash/models"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// UserStore is the persistence the account services need.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	EmailTakenByOther(ctx context.Context, email string, userID uint) (bool, error)
	UpdateProfile(ctx context.Context, userID uint, name, email string, income decimal.NullDecimal) error
	UpdatePassword(ctx context.Context, userID uint, hash string) error
}

// Mailer sends account notifications.
type Mailer interface {
	SendWelcomeEmail(toEmail, name string) error
}

// AuthService handles registration, login and profile changes.
type AuthService struct {
	users  UserStore
	mailer Mailer
	cost   int
}

// NewAuthService creates the account service. mailer may be nil.
func NewAuthService(users UserStore, mailer Mailer) *AuthService {
	return &AuthService{users: users, mailer: mailer, cost: bcrypt.DefaultCost}
}

// RegisterInput registration form fields. Income is optional.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Income   string
}

// ProfileInput settings form fields.
type ProfileInput struct {
	Name   string
	Email  string
	Income string
}

// Register creates a user and returns its id.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (uint, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" {
		return 0, invalid("name", "name is required")
	}
	if err := validateEmail(email); err != nil {
		return 0, err
	}
	if in.Password == "" {
		return 0, invalid("password", "password is required")
	}
	income, err := parseOptionalAmount("income", in.Income)
	if err != nil {
		return 0, err
	}

	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return 0, ErrDuplicateEmail
	} else if !errors.Is(err, database.ErrNotFound) {
		return 0, translate(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return 0, err
	}

	user := models.User{
		Email:         email,
		Password:      string(hashed),
		Name:          name,
		MonthlyIncome: income,
	}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return 0, ErrDuplicateEmail
		}
		return 0, translate(err)
	}

	if s.mailer != nil {
		if err := s.mailer.SendWelcomeEmail(user.Email, user.Name); err != nil {
			log.Warn().Err(err).Uint("user_id", user.ID).Msg("welcome email not sent")
		}
	}

	log.Info().Uint("user_id", user.ID).Msg("user registered")
	return user.ID, nil
}

// Login verifies the credentials and returns the matching user.
// An unknown email and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*models.User, error) {
	email := normalizeEmail(identifier)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, translate(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Profile loads the signed-in user. ErrUnauthenticated means the session
// outlived its account.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return nil, sessionError(err)
	}
	return user, nil
}

func sessionError(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return ErrUnauthenticated
	}
	return translate(err)
}

// UpdateProfile overwrites name, email and income and returns the updated user.
// The row is left untouched when another user owns the email.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" {
		return nil, invalid("name", "name is required")
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	income, err := parseOptionalAmount("income", in.Income)
	if err != nil {
		return nil, err
	}

	taken, err := s.users.EmailTakenByOther(ctx, email, userID)
	if err != nil {
		return nil, translate(err)
	}
	if taken {
		return nil, ErrDuplicateEmail
	}

	if err := s.users.UpdateProfile(ctx, userID, name, email, income); err != nil {
		if errors.Is(err, database.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, sessionError(err)
	}
	return s.Profile(ctx, userID)
}

// ChangePassword replaces the password after checking the current one.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return invalid("new_password", "password must have at least 6 characters")
	}
	user, err := s.users.FindUserByID(ctx, userID)
	if err != nil {
		return sessionError(err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return sessionError(err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return invalid("email", "email is required")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return invalid("email", "email is not valid")
	}
	return nil
}
