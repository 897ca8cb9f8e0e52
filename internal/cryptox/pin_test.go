package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testParams keep argon2 cheap in tests.
var testParams = PinParams{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32}

func TestHashPin_Deterministic(t *testing.T) {
	salt := []byte("fixed-salt-16byt")

	h1 := HashPin([]byte("1234"), salt, testParams)
	h2 := HashPin([]byte("1234"), salt, testParams)

	assert.True(t, bytes.Equal(h1, h2), "same inputs must give the same digest")
	assert.Len(t, h1, int(testParams.KeyLen))
}

func TestHashPin_SaltMatters(t *testing.T) {
	h1 := HashPin([]byte("1234"), []byte("salt-1"), testParams)
	h2 := HashPin([]byte("1234"), []byte("salt-2"), testParams)

	assert.False(t, bytes.Equal(h1, h2), "different salts must give different digests")
}

func TestNewPinCredential(t *testing.T) {
	c := NewPinCredential("1234", testParams)

	require.Len(t, c.Salt, SaltSize)
	assert.NotContains(t, string(c.Hash), "1234")
	assert.Equal(t, testParams, c.Params)

	other := NewPinCredential("1234", testParams)
	assert.NotEqual(t, c.Salt, other.Salt, "every credential gets its own salt")
	assert.NotEqual(t, c.Hash, other.Hash)
}

func TestPinCredential_Verify(t *testing.T) {
	c := NewPinCredential("1234", testParams)

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{"correct", "1234", true},
		{"wrong digit", "1235", false},
		{"prefix", "123", false},
		{"longer", "12345", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Verify(tt.candidate))
		})
	}
}

func TestPinCredential_ZeroValueNeverVerifies(t *testing.T) {
	var c PinCredential
	assert.False(t, c.Verify(""))
	assert.False(t, c.Verify("1234"))
}
