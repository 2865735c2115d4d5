package commands

import (
	"errors"
	"strings"

	"deliveryhub/internal/pkg/errs"
	"deliveryhub/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand carries console credentials.
type LoginCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

func NewLoginCommand(username, password string) (LoginCommand, error) {
	var joined []error
	if strings.TrimSpace(username) == "" {
		joined = append(joined, errs.NewValueIsRequiredError("username"))
	}
	if password == "" {
		joined = append(joined, errs.NewValueIsRequiredError("password"))
	}
	if err := errors.Join(joined...); err != nil {
		return LoginCommand{}, err
	}

	return LoginCommand{
		username: strings.TrimSpace(username),
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

func (c LoginCommand) Username() string {
	return c.username
}

func (c LoginCommand) Password() string {
	return c.password
}
