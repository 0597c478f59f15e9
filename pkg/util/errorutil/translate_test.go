package errorutil_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

var userTranslator = errorutil.Translator{
	Resource: "User",
	UniqueFields: []errorutil.FriendlyField{
		{Field: "email", Message: "Email address is already in use"},
		{Field: "phone", Message: "Phone number is already taken"},
	},
}

func TestTranslate_UniqueFieldUsesFriendlyMessage(t *testing.T) {
	err := fmt.Errorf("insert user: %w", &errorutil.UniquenessViolation{Field: "phone"})

	got := userTranslator.Translate(err)

	require.NotNil(t, got)
	assert.Equal(t, errorutil.CodeConflict, got.Code)
	assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)
	assert.Equal(t, "Phone number is already taken", got.Message)
	assert.Equal(t, "phone", got.Details["field"])
}

func TestTranslate_UnknownUniqueFieldFallsBack(t *testing.T) {
	got := userTranslator.Translate(&errorutil.UniquenessViolation{Field: "nickname"})

	assert.Equal(t, errorutil.CodeConflict, got.Code)
	assert.Equal(t, "Duplicate key error", got.Message)
	assert.Equal(t, "nickname", got.Details["field"])
}

func TestTranslate_FirstMatchWins(t *testing.T) {
	tr := errorutil.Translator{UniqueFields: []errorutil.FriendlyField{
		{Field: "email", Message: "first"},
		{Field: "email", Message: "second"},
	}}

	assert.Equal(t, "first", tr.Translate(&errorutil.UniquenessViolation{Field: "email"}).Message)
}

func TestTranslate_SchemaViolation(t *testing.T) {
	err := &errorutil.SchemaViolation{Fields: map[string]string{
		"firstName": "firstName is required",
		"email":     "email must be a valid email address",
	}}

	got := userTranslator.Translate(err)

	assert.Equal(t, errorutil.CodeValidationFailed, got.Code)
	assert.Equal(t, http.StatusBadRequest, got.HTTPStatus)
	assert.Equal(t, "firstName is required", got.Details["firstName"])
	assert.Len(t, got.Details, 2)
}

func TestTranslate_NotFound(t *testing.T) {
	got := userTranslator.Translate(fmt.Errorf("delete user: %w", errorutil.ErrNotFound))

	assert.Equal(t, errorutil.CodeNotFound, got.Code)
	assert.Equal(t, http.StatusNotFound, got.HTTPStatus)
	assert.Equal(t, "User not found", got.Message)
}

func TestTranslate_OtherBecomesGenericInternal(t *testing.T) {
	raw := errors.New("connection reset by peer")

	got := userTranslator.Translate(raw)

	assert.Equal(t, errorutil.CodeInternal, got.Code)
	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
	assert.NotContains(t, got.Message, "connection reset")
	assert.ErrorIs(t, got, raw)
}

func TestTranslate_DomainErrorPassesThrough(t *testing.T) {
	forbidden := errorutil.NewForbidden("nope")

	assert.Same(t, forbidden, userTranslator.Translate(forbidden))
	assert.Nil(t, userTranslator.Translate(nil))
}

func TestToDomainError_HidesUnknownErrors(t *testing.T) {
	got := errorutil.ToDomainError(errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, got.HTTPStatus)
	assert.Equal(t, "internal server error", got.Message)
}
