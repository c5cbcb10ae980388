package service

import (
	"errors"
	"time"

	dmn "github.com/cbs4385/labyrinth-api/domain"
	"github.com/cbs4385/labyrinth-api/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// Auth implements i.Authenticator on top of a user repository and a
// tokenizer.
type Auth struct {
	userRepo  i.UserRepo
	tokenizer i.Tokenizer
}

// NewAuthService creates an Auth service from its dependencies.
func NewAuthService(userRepo i.UserRepo, tokenizer i.Tokenizer) (*Auth, error) {
	if userRepo == nil || tokenizer == nil {
		return nil, errors.New("auth service requires a user repo and a tokenizer")
	}
	return &Auth{
		userRepo:  userRepo,
		tokenizer: tokenizer,
	}, nil
}

// Register creates and persists a new user.
func (a *Auth) Register(username, password string) error {
	user, err := dmn.NewUser(dmn.UserConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	return a.userRepo.Save(user)
}

// SignIn verifies the credentials and returns the user with a signed
// access token.
func (a *Auth) SignIn(username, password string) (*dmn.User, string, error) {
	user, err := a.userRepo.ByUsername(username)
	if err != nil {
		return nil, "", errors.New("invalid username or password")
	}

	if !user.VerifyPassword(password) {
		return nil, "", errors.New("invalid username or password")
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"userID":   user.ID,
		"username": user.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
