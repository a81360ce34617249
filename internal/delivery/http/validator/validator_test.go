package validator

import (
	"strings"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cancelRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=5"`
}

type statusRequest struct {
	Status  string `json:"status" validate:"required"`
	Carrier string `json:"carrier" validate:"max=3"`
}

func TestValidate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(&statusRequest{Status: "shipped", Carrier: "DHL"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&statusRequest{Carrier: "FedEx"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

		appErr, ok := errors.AsType[domainerrors.AppError](err)
		require.True(t, ok)
		assert.Equal(t, "status is required; carrier must be at most 3 characters", appErr.Details())
	})

	t.Run("max length", func(t *testing.T) {
		err := v.Validate(&cancelRequest{Reason: strings.Repeat("x", 6)})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
