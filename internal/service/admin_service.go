package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/auth"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// AdminInput carries the fields of a new admin account.
type AdminInput struct {
	FirstName string
	LastName  string
	UserName  string
	Email     string
	Password  string
	Phone     string
}

// AdminPatch carries a partial update. Nil fields are left unchanged.
type AdminPatch struct {
	FirstName *string
	LastName  *string
	UserName  *string
	Email     *string
	Password  *string
	Phone     *string
}

// AdminService manages back-office accounts.
type AdminService struct {
	admins     repository.AdminRepository
	bcryptCost int
}

// NewAdminService builds the service.
func NewAdminService(admins repository.AdminRepository, bcryptCost int) *AdminService {
	return &AdminService{admins: admins, bcryptCost: bcryptCost}
}

func (s *AdminService) List(ctx context.Context) ([]domain.Admin, error) {
	return s.admins.List(ctx)
}

func (s *AdminService) Get(ctx context.Context, id string) (*domain.Admin, error) {
	return s.admins.GetByID(ctx, id)
}

func (s *AdminService) Create(ctx context.Context, in AdminInput) (*domain.Admin, error) {
	hash, err := hashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		UserName:     strings.TrimSpace(in.UserName),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Update(ctx context.Context, id string, patch AdminPatch) (*domain.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patchString(&admin.FirstName, patch.FirstName)
	patchString(&admin.LastName, patch.LastName)
	patchString(&admin.UserName, patch.UserName)
	patchString(&admin.Phone, patch.Phone)
	if patch.Email != nil {
		admin.Email = normalizeEmail(*patch.Email)
	}
	if patch.Password != nil {
		hash, err := hashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		admin.PasswordHash = hash
	}

	if err := s.admins.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	return s.admins.Delete(ctx, id)
}

// Authenticate accepts either the email address or the user name as login.
func (s *AdminService) Authenticate(ctx context.Context, login, password string) (*domain.Admin, error) {
	login = strings.TrimSpace(login)

	var (
		admin *domain.Admin
		err   error
	)
	if strings.Contains(login, "@") {
		admin, err = s.admins.GetByEmail(ctx, normalizeEmail(login))
	} else {
		admin, err = s.admins.GetByUserName(ctx, login)
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, invalidLogin()
	}
	if err != nil {
		return nil, err
	}

	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, invalidLogin()
		}
		return nil, err
	}
	return admin, nil
}
