package usecase

//go:generate mockgen -source=auth_usecase.go -destination=../adapter/http/handlers/mocks/mock_auth_usecase.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginResult is returned by a successful stub login.
type LoginResult struct {
	Username string
	Token    string
}

// IAuthUseCase is a stub login against a single configured account. It gates
// nothing else in the API.
type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
}

type AuthUseCase struct {
	username string
	password string
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(username, password string) *AuthUseCase {
	return &AuthUseCase{username: username, password: password}
}

func (u *AuthUseCase) Login(_ context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || u.username == "" {
		return LoginResult{}, ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(u.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(u.password)) == 1
	if !userOK || !passOK {
		return LoginResult{}, ErrInvalidCredentials
	}
	return LoginResult{Username: username, Token: uuid.NewString()}, nil
}
