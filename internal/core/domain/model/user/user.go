// Package user holds the console operator account used to sign in.
package user

import (
	"errors"
	"strings"

	"deliveryhub/internal/core/domain/model/kernel"
	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

// DefaultRole is stored for accounts created without an explicit role.
const DefaultRole = "admin"

var (
	ErrUsernameIsRequired     = errs.NewValueIsRequiredError("username")
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password_hash")
	ErrUserIsNotConstructed   = errors.New("User must be created via RestoreUser constructor")
)

// User is an operator of the admin console. Only stored users exist, so there is no
// NewUser; accounts are seeded directly in the database with cmd/hashpassword.
type User struct {
	id           kernel.ID
	username     string
	passwordHash string
	role         string
	guard        guard.ConstructorGuard
}

// RestoreUser rebuilds a stored user.
func RestoreUser(id kernel.ID, username, passwordHash, role string) (*User, error) {
	var joined []error
	joined = append(joined, id.Validate())
	if strings.TrimSpace(username) == "" {
		joined = append(joined, ErrUsernameIsRequired)
	}
	if passwordHash == "" {
		joined = append(joined, ErrPasswordHashIsRequired)
	}
	if err := errors.Join(joined...); err != nil {
		return nil, err
	}

	if role == "" {
		role = DefaultRole
	}

	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the bcrypt hash of the password.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() string {
	return u.role
}
