package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"talent-match/internal/domain/seeker"
	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
)

type RegisterInput struct {
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
	// CompanyName applies to employer registrations only.
	CompanyName string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (repository.Account, TokenPair, error)
	Login(ctx context.Context, in LoginInput) (repository.Account, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	accounts  repository.AccountRepository
	seekers   repository.SeekerRepository
	employers repository.EmployerRepository
	jwt       jwt.Service
}

func NewAuthUsecase(
	accounts repository.AccountRepository,
	seekers repository.SeekerRepository,
	employers repository.EmployerRepository,
	jwtSvc jwt.Service,
) *Auth {
	return &Auth{accounts: accounts, seekers: seekers, employers: employers, jwt: jwtSvc}
}

// Register creates the login identity plus its side-specific profile: a
// seeker registration creates the candidate profile the matching pipeline
// will later see, an employer registration creates the company record.
func (u *Auth) Register(ctx context.Context, in RegisterInput) (repository.Account, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return repository.Account{}, TokenPair{}, ErrInvalidInput
	}
	if in.Role != repository.RoleSeeker && in.Role != repository.RoleEmployer {
		return repository.Account{}, TokenPair{}, ErrInvalidInput
	}

	exists, err := u.accounts.ExistsByEmail(ctx, email)
	if err != nil {
		return repository.Account{}, TokenPair{}, ErrInternal
	}
	if exists {
		return repository.Account{}, TokenPair{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.Account{}, TokenPair{}, ErrInternal
	}

	acc := repository.Account{
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}

	switch in.Role {
	case repository.RoleSeeker:
		seekerID, err := u.seekers.Create(ctx, seeker.Seeker{
			FirstName: strings.TrimSpace(in.FirstName),
			LastName:  strings.TrimSpace(in.LastName),
			Email:     email,
		})
		if err != nil {
			return repository.Account{}, TokenPair{}, ErrInternal
		}
		acc.SeekerID = seekerID
	case repository.RoleEmployer:
		company := strings.TrimSpace(in.CompanyName)
		if company == "" {
			return repository.Account{}, TokenPair{}, ErrInvalidInput
		}
		employerID, err := u.employers.Create(ctx, company)
		if err != nil {
			return repository.Account{}, TokenPair{}, ErrInternal
		}
		acc.EmployerID = employerID
	}

	acc.ID, err = u.accounts.Create(ctx, acc)
	if err != nil {
		return repository.Account{}, TokenPair{}, ErrInternal
	}

	pair, err := u.issueTokens(acc)
	if err != nil {
		return repository.Account{}, TokenPair{}, ErrInternal
	}
	return acc, pair, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.Account, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return repository.Account{}, TokenPair{}, ErrInvalidCredentials
	}

	acc, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return repository.Account{}, TokenPair{}, ErrInvalidCredentials
		}
		return repository.Account{}, TokenPair{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)) != nil {
		return repository.Account{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.issueTokens(acc)
	if err != nil {
		return repository.Account{}, TokenPair{}, ErrInternal
	}
	return acc, pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	acc, err := u.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return u.issueTokens(acc)
}

func (u *Auth) issueTokens(acc repository.Account) (TokenPair, error) {
	id := jwt.Identity{
		AccountID:  acc.ID,
		Email:      acc.Email,
		Role:       acc.Role,
		SeekerID:   acc.SeekerID,
		EmployerID: acc.EmployerID,
	}

	access, err := u.jwt.GenerateAccessToken(id)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(id)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") || len(email) < 3 {
		return ""
	}
	return email
}

func isValidPassword(password string) bool {
	return len(password) >= 8
}
