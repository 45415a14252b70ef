// Package auth implements the board's identity and session handling.
//
// This is a deliberately low-assurance, local-only gate: anyone may
// register, and registration honors a self-requested admin role. It keeps
// honest users out of the bin controls on a shared machine and nothing
// more; do not mistake it for real access control.
package auth

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/anzeg/najdeno/internal/model"
	"github.com/anzeg/najdeno/internal/store"
)

// Identity manages registered users and login sessions.
type Identity struct {
	DB     *sql.DB
	Secret string
}

// Register creates a new account. The requested role is honored as-is,
// admin included. It does not log the user in.
func (i *Identity) Register(ctx context.Context, username, password, role string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password required", model.ErrValidation)
	}
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", model.ErrValidation, role)
	}

	existing, err := store.GetUserByUsername(ctx, i.DB, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: username %q", model.ErrConflict, username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if _, err := store.CreateUser(ctx, i.DB, username, string(hash), role); err != nil {
		return err
	}
	return nil
}

// Login checks the credentials and returns a signed session token.
func (i *Identity) Login(ctx context.Context, username, password string) (string, error) {
	user, err := store.GetUserByUsername(ctx, i.DB, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", model.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrBadCredentials
	}

	token, err := GenerateToken(i.Secret, user.Username, user.Role)
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}
	return token, nil
}

// Logout revokes the session token so it can no longer be used.
func (i *Identity) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil {
		return nil
	}
	return store.RevokeToken(ctx, i.DB, claims.ID, claims.ExpiresAt.Time)
}

// Actor converts session claims into the actor identity the board checks
// authorization against. Nil claims mean an anonymous caller.
func (c *Claims) Actor() *model.Actor {
	if c == nil {
		return nil
	}
	return &model.Actor{Username: c.Username, Role: c.Role}
}

// IsAdmin reports whether the session exists and holds the admin role.
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == model.RoleAdmin
}
