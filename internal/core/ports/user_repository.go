package ports

import (
	"context"

	"deliveryhub/internal/core/domain/model/user"
)

// UserRepository looks up console operators.
type UserRepository interface {
	// GetByUsername returns errs.ObjectNotFoundError for unknown usernames.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
