package commands

import (
	"context"

	"room-booking-api/internal/domain/user"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/pkg/jwt"
	"room-booking-api/internal/pkg/password"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/internal/usecase/shared"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrEmailAlreadyExists = errs.New("a user with this email already exists")
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrInvalidUserInput   = errs.New("invalid user input")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type RegisterParams struct {
	FullName string
	Email    string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthResult struct {
	User      *queries.AuthorizedUserView
	TokenPair *TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

// Register creates an account with role USER. Email uniqueness is enforced by
// the storage constraint, not a read-then-write check.
func (a *authCommandsImpl) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	fullName, err := user.NewFullName(params.FullName)
	if err != nil {
		return nil, ErrInvalidUserInput
	}
	email, err := user.NewEmail(params.Email)
	if err != nil {
		return nil, ErrInvalidUserInput
	}
	if _, err := user.NewPassword(params.Password); err != nil {
		return nil, ErrInvalidUserInput
	}

	passwordHash, err := password.HashPassword(params.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.NewUser(fullName, email, passwordHash, user.RoleUser)

	var userID int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Users().Create(ctx, tx.DB(), newUser)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	view, err := a.readStore.FindByID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.buildAuthResult(view)
}

func (a *authCommandsImpl) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	view, passwordHash, err := a.readStore.FindByEmail(ctx, params.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Wrap(err, "failed to find user by email")
	}

	if err := password.ComparePassword(passwordHash, params.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a.buildAuthResult(view)
}

func (a *authCommandsImpl) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, ErrTokenValidation
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, ErrTokenValidation
	}

	// Validate the account still exists before reissuing tokens
	view, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	return a.generateTokenPair(view.ID, role)
}

func (a *authCommandsImpl) buildAuthResult(view *queries.AuthorizedUserView) (*AuthResult, error) {
	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	tokenPair, err := a.generateTokenPair(view.ID, role)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:      view,
		TokenPair: tokenPair,
	}, nil
}

func (a *authCommandsImpl) generateTokenPair(userID int64, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
