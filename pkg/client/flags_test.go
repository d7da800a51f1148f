package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garrettbslone/flux-core/pkg/errors"
)

func TestResolveFlags(t *testing.T) {
	tests := []struct {
		name     string
		groups   []string
		expected SubmitFlags
	}{
		{"no groups", nil, 0},
		{"single flag", []string{"debug"}, FlagDebug},
		{"comma list", []string{"debug,waitable"}, FlagDebug | FlagWaitable},
		{"repeated groups accumulate", []string{"debug", "waitable"}, FlagDebug | FlagWaitable},
		{"duplicate flag is idempotent", []string{"debug,debug"}, FlagDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := ResolveFlags(tt.groups)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, flags)
		})
	}
}

func TestResolveFlags_Unknown(t *testing.T) {
	tests := []struct {
		name   string
		groups []string
	}{
		{"unknown name", []string{"bogus"}},
		{"unknown after valid", []string{"debug,bogus"}},
		{"no trimming", []string{" debug"}},
		{"empty token", []string{"debug,"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags, err := ResolveFlags(tt.groups)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidRequest(err))
			assert.Contains(t, err.Error(), "Unknown flag")
			assert.Equal(t, SubmitFlags(0), flags)
		})
	}
}

func TestSubmitFlags_Names(t *testing.T) {
	assert.Empty(t, SubmitFlags(0).Names())
	assert.Equal(t, []string{"debug"}, FlagDebug.Names())
	assert.Equal(t, []string{"debug", "waitable"}, (FlagDebug | FlagWaitable).Names())
}
