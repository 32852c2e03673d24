package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const tokenTTL = 24 * time.Hour

var _ i.Authenticator = &Auth{}

// Auth registers users and issues tokens for them.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
	logger    i.Logger
}

// NewAuthService creates an Auth backed by the given repository and tokenizer.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer, logger i.Logger) (*Auth, error) {
	if userRepo == nil || tokenizer == nil || logger == nil {
		return nil, errors.New("auth service requires a user repo, a tokenizer and a logger")
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
		logger:    logger,
	}, nil
}

// Register creates a new user. Usernames are unique.
func (a *Auth) Register(ctx context.Context, username, password string) (*dmn.User, error) {
	if _, err := a.userRepo.ByUsername(ctx, username); err == nil {
		return nil, dmn.ErrUsernameConflict
	} else if !errors.Is(err, dmn.ErrUserNotFound) {
		return nil, err
	}

	user, err := dmn.NewUser(dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Save(ctx, user); err != nil {
		a.logger.Error(fmt.Sprintf("Saving user %s: %s", username, err))
		return nil, err
	}

	a.logger.Info(fmt.Sprintf("Registered user: ID=%s", user.ID))
	return user, nil
}

// SignIn verifies the credentials and returns the user with a signed token.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, "", dmn.ErrInvalidCredentials
	}

	if !user.VerifyPassword(password) {
		return nil, "", dmn.ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID.String(),
		"username": user.Username,
	}, tokenTTL)
	if err != nil {
		a.logger.Error(fmt.Sprintf("Signing token for user %s: %s", user.ID, err))
		return nil, "", err
	}

	return user, token, nil
}
