// Command hashpassword prints a bcrypt hash for seeding rows of the usuarios table.
//
//	go run ./cmd/hashpassword 's3cret'
package main

import (
	"fmt"
	"log/slog"
	"os"

	"deliveryhub/internal/adapters/out/jwtauth"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if len(os.Args) != 2 || os.Args[1] == "" {
		logger.Error("usage: hashpassword <password>")
		os.Exit(1)
	}

	hash, err := jwtauth.NewBcryptHasher(bcrypt.DefaultCost).Hash(os.Args[1])
	if err != nil {
		logger.Error("failed to hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(hash)
}
