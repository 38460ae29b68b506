package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, isUniqueViolation(dup))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505 en el texto no cuenta")))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, isNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, isNoRows(errors.New("otro")))
}

func TestDatabaseURLWithIPv4_IPLiteral(t *testing.T) {
	in := "postgres://u:p@127.0.0.1:5432/site?sslmode=disable"
	assert.Equal(t, in, databaseURLWithIPv4(in))
}

func TestDatabaseURLWithIPv4_URLInvalida(t *testing.T) {
	in := "::no es una url"
	assert.Equal(t, in, databaseURLWithIPv4(in))
}
