package commands

import (
	"context"
	"errors"

	"deliveryhub/internal/core/ports"
	"deliveryhub/internal/pkg/errs"
)

// ErrInvalidCredentials is returned for unknown users and wrong passwords alike.
var ErrInvalidCredentials = errs.NewUnauthorizedError("invalid username or password")

// LoginResult is what the console receives after signing in.
type LoginResult struct {
	Token    string
	UserID   int64
	Username string
	Role     string
}

// LoginCommandHandler checks credentials and issues an access token.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

func NewLoginCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	u, err := h.uowFactory.Create().UserRepository().GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err = h.hasher.Compare(u.PasswordHash(), cmd.Password()); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := h.tokens.Issue(u)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:    token,
		UserID:   u.ID().Int64(),
		Username: u.Username(),
		Role:     u.Role(),
	}, nil
}
