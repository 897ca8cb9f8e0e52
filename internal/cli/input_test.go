package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("  4444 \n")), "Card?", &out)
	require.NoError(t, err)
	assert.Equal(t, "4444", got)
	assert.Equal(t, "Card?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("lastline")), "Card?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "Card?", &out)
	assert.Error(t, err)
}

func TestGetPin(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("1234"), nil }
	var out bytes.Buffer
	pin, err := GetPin(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("1234"), pin)
	assert.Equal(t, "Enter PIN: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPin(&out)
	assert.Error(t, err)
}
