package apperrors

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFromStorageNoRows(t *testing.T) {
	err := FromStorage(pgx.ErrNoRows, "user")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "user")
}

func TestFromStorageUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505"}
	err := FromStorage(pgErr, "forklift")
	assert.True(t, IsConflict(err))
}

func TestFromStorageOtherErrors(t *testing.T) {
	err := FromStorage(errors.New("connection refused"), "user")
	assert.False(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
	assert.True(t, errors.Is(err, ErrStorage))
}

func TestFromStorageNil(t *testing.T) {
	assert.NoError(t, FromStorage(nil, "user"))
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsValidation(Validation("bad input")))
	assert.True(t, IsNotFound(NotFound("user with id %d", 5)))
	assert.True(t, IsConflict(Conflict("duplicate username")))
	assert.False(t, IsValidation(NotFound("missing")))
}
