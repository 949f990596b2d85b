package uuid

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDPrefixed(t *testing.T) {
	id := New("game").NewID()

	require.True(t, strings.HasPrefix(id, "game_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "game_"))
	assert.NoError(t, err)
}

func TestNewIDUnprefixed(t *testing.T) {
	gen := New("")

	first, second := gen.NewID(), gen.NewID()

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}
