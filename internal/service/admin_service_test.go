package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/auth"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository/mocks"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

func TestAdminService_AuthenticateByEmailOrUserName(t *testing.T) {
	ctrl := gomock.NewController(t)
	admins := mocks.NewMockAdminRepository(ctrl)
	svc := NewAdminService(admins, bcrypt.MinCost)

	hash, err := auth.HashPassword("admin-password", bcrypt.MinCost)
	require.NoError(t, err)
	admin := &domain.Admin{ID: "a1", UserName: "root", Email: "root@example.com", PasswordHash: hash}

	admins.EXPECT().GetByEmail(gomock.Any(), "root@example.com").Return(admin, nil)
	got, err := svc.Authenticate(context.Background(), "Root@Example.com", "admin-password")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	admins.EXPECT().GetByUserName(gomock.Any(), "root").Return(admin, nil)
	got, err = svc.Authenticate(context.Background(), " root ", "admin-password")
	require.NoError(t, err)
	assert.Equal(t, "a1", got.ID)

	admins.EXPECT().GetByUserName(gomock.Any(), "ghost").Return(nil, apperrors.ErrNotFound)
	_, err = svc.Authenticate(context.Background(), "ghost", "admin-password")
	var de *apperrors.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, apperrors.CodeInvalidCredential, de.Code)
}

func TestAdminService_CreateValidatesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	admins := mocks.NewMockAdminRepository(ctrl)
	svc := NewAdminService(admins, bcrypt.MinCost)

	_, err := svc.Create(context.Background(), AdminInput{UserName: "root", Password: ""})
	var schema *apperrors.SchemaViolation
	require.True(t, errors.As(err, &schema))
	assert.Equal(t, "password is required", schema.Fields["password"])

	admins.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *domain.Admin) error {
		assert.Equal(t, "root", a.UserName)
		assert.Equal(t, "root@example.com", a.Email)
		return nil
	})
	_, err = svc.Create(context.Background(), AdminInput{
		FirstName: "Root",
		LastName:  "Admin",
		UserName:  " root ",
		Email:     "ROOT@example.com",
		Password:  "admin-password",
		Phone:     "123",
	})
	assert.NoError(t, err)
}

func TestAdminService_DeleteMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	admins := mocks.NewMockAdminRepository(ctrl)
	admins.EXPECT().Delete(gomock.Any(), "missing").Return(apperrors.ErrNotFound)

	err := NewAdminService(admins, bcrypt.MinCost).Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
