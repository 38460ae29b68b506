package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/woodini-site/internal/domain"
)

func TestValidationError_EsErrInvalidInput(t *testing.T) {
	err := fmt.Errorf("crear: %w", domain.Invalid("name", "es requerido"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, "crear: name: es requerido", err.Error())

	var ve *domain.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
}

func TestValidationError_SinCampo(t *testing.T) {
	assert.Equal(t, "mensaje", domain.Invalid("", "mensaje").Error())
	assert.False(t, errors.Is(domain.Invalid("x", "y"), domain.ErrNotFound))
}
