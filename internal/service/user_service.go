package service

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/auth"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// UserInput carries the fields of a new user account.
type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Country   string
	Address   string
}

// UserPatch carries a partial update. Nil fields are left unchanged.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
	Phone     *string
	Country   *string
	Address   *string
}

// UserService manages storefront customer accounts.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create hashes the password and stores the account.
func (s *UserService) Create(ctx context.Context, in UserInput) (*domain.User, error) {
	hash, err := hashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		Country:      strings.TrimSpace(in.Country),
		Address:      strings.TrimSpace(in.Address),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update. A supplied password is re-hashed.
func (s *UserService) Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patchString(&user.FirstName, patch.FirstName)
	patchString(&user.LastName, patch.LastName)
	patchString(&user.Phone, patch.Phone)
	patchString(&user.Country, patch.Country)
	patchString(&user.Address, patch.Address)
	if patch.Email != nil {
		user.Email = normalizeEmail(*patch.Email)
	}
	if patch.Password != nil {
		hash, err := hashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// Authenticate checks an email and password pair. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, invalidLogin()
	}
	if err != nil {
		return nil, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, invalidLogin()
		}
		return nil, err
	}
	return user, nil
}

func invalidLogin() *apperrors.DomainError {
	return apperrors.NewInvalidCredential("Invalid credentials", http.StatusUnauthorized, nil)
}
