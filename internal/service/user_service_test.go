package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/auth"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/repository/mocks"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

const testUserID = "5f0a4f37-8d2c-4c5e-bb1c-0e6c1c7a9d10"

type UserServiceSuite struct {
	suite.Suite
	ctrl  *gomock.Controller
	users *mocks.MockUserRepository
	svc   *UserService
	ctx   context.Context
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}

func (s *UserServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = mocks.NewMockUserRepository(s.ctrl)
	s.svc = NewUserService(s.users, bcrypt.MinCost)
	s.ctx = context.Background()
}

func (s *UserServiceSuite) validInput() UserInput {
	return UserInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "  Ada@Example.com ",
		Password:  "correct-horse",
		Phone:     "+44 20 7946 0000",
		Country:   "UK",
		Address:   "12 St James's Square",
	}
}

func (s *UserServiceSuite) TestCreate_HashesPasswordAndNormalizesEmail() {
	var stored *domain.User
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
		stored = u
		u.ID = testUserID
		return nil
	})

	user, err := s.svc.Create(s.ctx, s.validInput())

	s.Require().NoError(err)
	s.Equal(testUserID, user.ID)
	s.Equal("ada@example.com", stored.Email)
	s.NotEqual("correct-horse", stored.PasswordHash)
	s.NoError(auth.ComparePassword(stored.PasswordHash, "correct-horse"))
}

func (s *UserServiceSuite) TestCreate_RejectsShortPasswordBeforeStorage() {
	in := s.validInput()
	in.Password = "short"

	_, err := s.svc.Create(s.ctx, in)

	var schema *apperrors.SchemaViolation
	s.Require().True(errors.As(err, &schema))
	s.Contains(schema.Fields, "password")
}

func (s *UserServiceSuite) TestCreate_RejectsPasswordOverByteLimit() {
	in := s.validInput()
	in.Password = strings.Repeat("é", 40)

	_, err := s.svc.Create(s.ctx, in)

	var schema *apperrors.SchemaViolation
	s.Require().True(errors.As(err, &schema))
	s.Equal("password is too long (maximum 72 bytes)", schema.Fields["password"])
}

func (s *UserServiceSuite) TestCreate_PropagatesUniqueness() {
	s.users.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&apperrors.UniquenessViolation{Field: "email"})

	_, err := s.svc.Create(s.ctx, s.validInput())

	var unique *apperrors.UniquenessViolation
	s.Require().True(errors.As(err, &unique))
	s.Equal("email", unique.Field)
}

func (s *UserServiceSuite) TestUpdate_PartialKeepsOtherFields() {
	existing := &domain.User{ID: testUserID, FirstName: "Ada", Email: "ada@example.com", PasswordHash: "old"}
	s.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(existing, nil)
	s.users.EXPECT().Update(gomock.Any(), existing).Return(nil)

	country := "France"
	user, err := s.svc.Update(s.ctx, testUserID, UserPatch{Country: &country})

	s.Require().NoError(err)
	s.Equal("France", user.Country)
	s.Equal("Ada", user.FirstName)
	s.Equal("old", user.PasswordHash)
}

func (s *UserServiceSuite) TestUpdate_RehashesPassword() {
	existing := &domain.User{ID: testUserID, PasswordHash: "old"}
	s.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(existing, nil)
	s.users.EXPECT().Update(gomock.Any(), existing).Return(nil)

	password := "another-secret"
	user, err := s.svc.Update(s.ctx, testUserID, UserPatch{Password: &password})

	s.Require().NoError(err)
	s.NoError(auth.ComparePassword(user.PasswordHash, password))
}

func (s *UserServiceSuite) TestUpdate_MissingUser() {
	s.users.EXPECT().GetByID(gomock.Any(), testUserID).Return(nil, apperrors.ErrNotFound)

	_, err := s.svc.Update(s.ctx, testUserID, UserPatch{})

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *UserServiceSuite) TestAuthenticate() {
	hash, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	s.Require().NoError(err)
	user := &domain.User{ID: testUserID, Email: "ada@example.com", PasswordHash: hash}

	s.Run("correct password", func() {
		s.users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
		got, err := s.svc.Authenticate(s.ctx, "ADA@example.com", "correct-horse")
		s.Require().NoError(err)
		s.Equal(testUserID, got.ID)
	})

	s.Run("wrong password", func() {
		s.users.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(user, nil)
		_, err := s.svc.Authenticate(s.ctx, "ada@example.com", "wrong-horse")
		s.assertInvalidLogin(err)
	})

	s.Run("unknown email", func() {
		s.users.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").Return(nil, apperrors.ErrNotFound)
		_, err := s.svc.Authenticate(s.ctx, "nobody@example.com", "correct-horse")
		s.assertInvalidLogin(err)
	})

	s.Run("storage failure is not a credential error", func() {
		boom := errors.New("conn reset")
		s.users.EXPECT().GetByEmail(gomock.Any(), gomock.Any()).Return(nil, boom)
		_, err := s.svc.Authenticate(s.ctx, "ada@example.com", "correct-horse")
		s.ErrorIs(err, boom)
	})
}

func (s *UserServiceSuite) assertInvalidLogin(err error) {
	var de *apperrors.DomainError
	s.Require().True(errors.As(err, &de))
	s.Equal(apperrors.CodeInvalidCredential, de.Code)
	s.Equal(http.StatusUnauthorized, de.HTTPStatus)
}
