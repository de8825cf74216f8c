package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindValidation:       "validation",
		KindNotFound:         "not_found",
		KindStorage:          "storage",
		KindPartialProvision: "partial_provision",
		KindAuthorization:    "authorization",
		Kind(99):             "unknown",
	}
	for kind, want := range cases {
		assert.Equal(t, want, kind.String())
	}
}

func TestIs(t *testing.T) {
	err := NotFound("Transaksi tidak ditemukan")
	assert.True(t, Is(err, KindNotFound))
	assert.False(t, Is(err, KindStorage))
	assert.False(t, Is(errors.New("biasa"), KindNotFound))

	// terbungkus pun tetap terdeteksi
	wrapped := fmt.Errorf("lapisan luar: %w", err)
	assert.True(t, Is(wrapped, KindNotFound))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("Gagal menyimpan transaksi", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "storage")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidationFields(t *testing.T) {
	err := ValidationFields("Validasi gagal", map[string]string{"donor_name": "required"})
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "required", err.Fields["donor_name"])
}
