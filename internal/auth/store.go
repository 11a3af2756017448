package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User is an authenticated account. Role is "student" or "teacher".
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidInput       = errors.New("name, email, password and a valid role are required")
)

// UserStore is the credential store, backed by the users table.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore { return &UserStore{db: db} }

// Register creates an account. Email is normalized to lower case; a
// duplicate email fails with ErrEmailTaken.
func (s *UserStore) Register(ctx context.Context, name, email, password, role string) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if name == "" || email == "" || password == "" || (role != "student" && role != "teacher") {
		return ErrInvalidInput
	}

	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE email=$1`, email).Scan(&exists)
	switch {
	case err == nil:
		return ErrEmailTaken
	case !errors.Is(err, sql.ErrNoRows):
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO users (email, name, password_hash, role, created_at) VALUES ($1,$2,$3,$4,$5)`,
		email, name, string(hash), role, time.Now().Unix())
	return err
}

// ChangePassword swaps the stored hash after verifying the old password.
func (s *UserStore) ChangePassword(ctx context.Context, email, oldPassword, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	newPassword = strings.TrimSpace(newPassword)
	if email == "" || newPassword == "" {
		return ErrInvalidInput
	}

	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT password_hash FROM users WHERE email=$1`, email).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}

	next, err := bcrypt.GenerateFromPassword([]byte(newPassword), 12)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE users SET password_hash=$1 WHERE email=$2`, string(next), email)
	return err
}

// Authenticate verifies the email/password pair and returns the account.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *UserStore) Authenticate(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var u User
	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT email, name, password_hash, role FROM users WHERE email=$1`, email).
		Scan(&u.Email, &u.Name, &hash, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}
