package ports

import (
	"deliveryhub/internal/core/domain/model/user"
)

// Claims is the identity carried by an access token.
type Claims struct {
	UserID   int64
	Username string
	Role     string
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	Issue(u *user.User) (string, error)
	Verify(token string) (Claims, error)
}

// PasswordHasher hashes and checks passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
