package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/woodini-site/pkg/password"
)

func TestHashAndVerify(t *testing.T) {
	h, err := password.Hash("secreto1", password.DefaultCost)
	require.NoError(t, err)
	assert.NotEqual(t, "secreto1", h, "nunca se guarda en claro")

	assert.True(t, password.Verify(h, "secreto1"))
	assert.False(t, password.Verify(h, "secreto2"))
	assert.False(t, password.Verify("no-es-un-hash", "secreto1"))
}

func TestHash_CosteMinimo(t *testing.T) {
	h, err := password.Hash("secreto1", 4)
	require.NoError(t, err)

	cost, err := password.Cost(h)
	require.NoError(t, err)
	assert.Equal(t, password.DefaultCost, cost, "costes por debajo de 10 se elevan")
}

func TestHash_CosteAdmin(t *testing.T) {
	h, err := password.Hash("secreto1", password.AdminCost)
	require.NoError(t, err)

	cost, err := password.Cost(h)
	require.NoError(t, err)
	assert.Equal(t, 12, cost)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, password.Validate("12345"), password.ErrTooShort)
	assert.NoError(t, password.Validate("123456"))
}

func TestValidate_CuentaCaracteresNoBytes(t *testing.T) {
	// 3 letras cirílicas ocupan 6 bytes
	assert.ErrorIs(t, password.Validate("абв"), password.ErrTooShort)
	assert.ErrorIs(t, password.Validate("пароль"[:10]), password.ErrTooShort)
	assert.NoError(t, password.Validate("пароль"))
}
