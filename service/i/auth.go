package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// Authenticator registers users and signs them in.
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*dmn.User, error)
	SignIn(ctx context.Context, username, password string) (*dmn.User, string, error)
}
