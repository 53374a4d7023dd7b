package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"talent-match/internal/pkg/jwt"
	"talent-match/internal/repository"
)

type mockAccountRepo struct {
	byEmail map[string]repository.Account
	byID    map[int64]repository.Account

	nextID  int64
	created *repository.Account
}

func newMockAccountRepo() *mockAccountRepo {
	return &mockAccountRepo{
		byEmail: make(map[string]repository.Account),
		byID:    make(map[int64]repository.Account),
		nextID:  1,
	}
}

func (m *mockAccountRepo) Create(_ context.Context, a repository.Account) (int64, error) {
	a.ID = m.nextID
	m.nextID++
	m.byEmail[a.Email] = a
	m.byID[a.ID] = a
	m.created = &a
	return a.ID, nil
}

func (m *mockAccountRepo) GetByEmail(_ context.Context, email string) (repository.Account, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return repository.Account{}, repository.ErrAccountNotFound
	}
	return a, nil
}

func (m *mockAccountRepo) GetByID(_ context.Context, id int64) (repository.Account, error) {
	a, ok := m.byID[id]
	if !ok {
		return repository.Account{}, repository.ErrAccountNotFound
	}
	return a, nil
}

func (m *mockAccountRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

type mockEmployerRepo struct {
	nextID      int64
	lastCompany string
}

func (m *mockEmployerRepo) Create(_ context.Context, companyName string) (int64, error) {
	m.nextID++
	m.lastCompany = companyName
	return m.nextID, nil
}

func testJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func newAuthUsecase(accounts *mockAccountRepo) *Auth {
	return NewAuthUsecase(accounts, &mockSeekerRepo{}, &mockEmployerRepo{}, testJWT())
}

func TestAuth_Register_Seeker(t *testing.T) {
	accounts := newMockAccountRepo()
	uc := newAuthUsecase(accounts)

	acc, pair, err := uc.Register(context.Background(), RegisterInput{
		Email:     "Sam@Example.com",
		Password:  "supersecret",
		Role:      repository.RoleSeeker,
		FirstName: "Sam",
		LastName:  "Lee",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if acc.Email != "sam@example.com" {
		t.Fatalf("expected lowercased email, got %q", acc.Email)
	}
	if acc.Role != repository.RoleSeeker {
		t.Fatalf("unexpected role %q", acc.Role)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected token pair")
	}
	if accounts.created == nil {
		t.Fatalf("expected account creation")
	}
	if bcrypt.CompareHashAndPassword([]byte(accounts.created.PasswordHash), []byte("supersecret")) != nil {
		t.Fatalf("stored hash does not match password")
	}
}

func TestAuth_Register_EmployerRequiresCompany(t *testing.T) {
	uc := newAuthUsecase(newMockAccountRepo())

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Email:    "hr@acme.com",
		Password: "supersecret",
		Role:     repository.RoleEmployer,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Register_DuplicateEmail(t *testing.T) {
	accounts := newMockAccountRepo()
	uc := newAuthUsecase(accounts)

	in := RegisterInput{
		Email:    "sam@example.com",
		Password: "supersecret",
		Role:     repository.RoleSeeker,
	}
	if _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, _, err := uc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestAuth_Register_WeakPassword(t *testing.T) {
	uc := newAuthUsecase(newMockAccountRepo())

	_, _, err := uc.Register(context.Background(), RegisterInput{
		Email:    "sam@example.com",
		Password: "short",
		Role:     repository.RoleSeeker,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_Login(t *testing.T) {
	accounts := newMockAccountRepo()
	uc := newAuthUsecase(accounts)

	if _, _, err := uc.Register(context.Background(), RegisterInput{
		Email:    "sam@example.com",
		Password: "supersecret",
		Role:     repository.RoleSeeker,
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	acc, pair, err := uc.Login(context.Background(), LoginInput{Email: "sam@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if acc.Email != "sam@example.com" || pair.AccessToken == "" {
		t.Fatalf("unexpected login result")
	}

	_, _, err = uc.Login(context.Background(), LoginInput{Email: "sam@example.com", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	_, _, err = uc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "supersecret"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestAuth_Refresh(t *testing.T) {
	accounts := newMockAccountRepo()
	uc := newAuthUsecase(accounts)

	_, pair, err := uc.Register(context.Background(), RegisterInput{
		Email:    "sam@example.com",
		Password: "supersecret",
		Role:     repository.RoleSeeker,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	next, err := uc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if next.AccessToken == "" || next.RefreshToken == "" {
		t.Fatalf("expected fresh token pair")
	}

	if _, err := uc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must be rejected as refresh, got %v", err)
	}
	if _, err := uc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty token, got %v", err)
	}
}
