package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/stockdesk/inventory-system/internal/core/domain"
)

type stubAuthRepo struct {
	accounts map[string]*domain.Account
}

func newStubAuthRepo() *stubAuthRepo {
	return &stubAuthRepo{accounts: make(map[string]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAuthRepo) Create(_ context.Context, account *domain.Account) error {
	if _, exists := r.accounts[account.Email]; exists {
		return domain.ErrEmailTaken
	}
	r.accounts[account.Email] = cloneAccount(account)
	return nil
}

func (r *stubAuthRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	if a, ok := r.accounts[email]; ok {
		return cloneAccount(a), nil
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAuthRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.accounts)), nil
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	name, err := svc.Register(context.Background(), "Alice Doe", "alice@example.com", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if name != "Alice Doe" {
		t.Fatalf("unexpected name: %q", name)
	}

	stored := repo.accounts["alice@example.com"]
	if stored == nil {
		t.Fatalf("account not persisted")
	}
	if stored.PasswordHash == "Str0ng!pass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Str0ng!pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	_, err := svc.Register(context.Background(), "Bob", "bob@example.com", "weak")
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "Password must be at least 8 characters long" {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
	if len(repo.accounts) != 0 {
		t.Fatalf("storage must not be touched on policy rejection")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Bob", "bob@example.com", "Str0ng!pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	// Different name and password must not matter.
	_, err := svc.Register(context.Background(), "Robert", "bob@example.com", "0ther!Pass")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(repo.accounts) != 1 {
		t.Fatalf("duplicate must not create a second account")
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "S3cret!pw"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	name, err := svc.Login(context.Background(), "carol@example.com", "S3cret!pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if name != "Carol" {
		t.Fatalf("unexpected name: %q", name)
	}
}

func TestAuthService_Login_NoAccounts(t *testing.T) {
	svc := NewAuthService(newStubAuthRepo(), zerolog.Nop())

	if _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrNoAccounts) {
		t.Fatalf("expected ErrNoAccounts, got %v", err)
	}
}

func TestAuthService_Login_BadCredentialsIndistinguishable(t *testing.T) {
	repo := newStubAuthRepo()
	svc := NewAuthService(repo, zerolog.Nop())

	if _, err := svc.Register(context.Background(), "Dave", "dave@example.com", "G00dpass!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, unknownEmail := svc.Login(context.Background(), "ghost@example.com", "G00dpass!")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPass.Error() != unknownEmail.Error() {
		t.Fatalf("errors must be indistinguishable: %q vs %q", wrongPass, unknownEmail)
	}
}
