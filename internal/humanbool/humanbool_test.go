package humanbool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpretStrings(t *testing.T) {
	tests := []struct {
		token    string
		expected bool
	}{
		{"0", false},
		{"1", true},
		{"n", false},
		{"y", true},
		{"no", false},
		{"yes", true},
		{"false", false},
		{"true", true},
		{"YES", true},
		{"No", false},
		{"TRUE", true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Interpret(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInterpretNativeBool(t *testing.T) {
	got, err := Interpret(true)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = Interpret(false)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestInterpretUnrecognizedToken(t *testing.T) {
	_, err := Interpret("maybe")
	require.Error(t, err)

	var tokenErr *ErrUnrecognizedToken
	require.ErrorAs(t, err, &tokenErr)
	assert.Equal(t, "maybe", tokenErr.Token)
}

func TestInterpretNotConvertible(t *testing.T) {
	for _, arg := range []any{42, 3.14, nil, []string{"yes"}} {
		_, err := Interpret(arg)

		var convErr *ErrNotConvertible
		require.ErrorAs(t, err, &convErr, "arg %v", arg)
	}
}

func TestProbe(t *testing.T) {
	assert.True(t, Probe(true))
	assert.True(t, Probe("Yes"))
	assert.True(t, Probe("0"))
	assert.False(t, Probe("maybe"))
	assert.False(t, Probe(1))
}
