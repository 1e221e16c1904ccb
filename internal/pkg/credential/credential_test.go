package credential

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNew(t *testing.T) {
	h, err := New(ModePlain)
	require.NoError(t, err)
	assert.IsType(t, Plain{}, h)

	h, err = New(ModeBcrypt)
	require.NoError(t, err)
	assert.IsType(t, Bcrypt{}, h)

	_, err = New("rot13")
	assert.Error(t, err)
}

func TestPlain(t *testing.T) {
	h := Plain{}

	stored, err := h.Hash("123")
	require.NoError(t, err)
	assert.Equal(t, "123", stored)

	assert.NoError(t, h.Compare(stored, "123"))
	assert.ErrorIs(t, h.Compare(stored, "1234"), ErrMismatch)
}

func TestBcrypt(t *testing.T) {
	h := Bcrypt{Cost: bcrypt.MinCost}

	stored, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored)

	assert.NoError(t, h.Compare(stored, "s3cret"))
	assert.ErrorIs(t, h.Compare(stored, "wrong"), ErrMismatch)
	assert.ErrorIs(t, h.Compare("not-a-hash", "s3cret"), ErrMismatch)
}
