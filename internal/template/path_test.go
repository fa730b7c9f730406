package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveVariadic(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		ids      []int
		expected string
		ok       bool
	}{
		{
			name:     "single placeholder",
			path:     "/ENTRY[entry*]/profiling",
			ids:      []int{1},
			expected: "/ENTRY[entry1]/profiling",
			ok:       true,
		},
		{
			name:     "two placeholders",
			path:     "/ENTRY[entry*]/USER[user*]/name",
			ids:      []int{1, 2},
			expected: "/ENTRY[entry1]/USER[user2]/name",
			ok:       true,
		},
		{
			name:     "surplus ids are ignored",
			path:     "/ENTRY[entry*]/sample/name",
			ids:      []int{3, 7, 9},
			expected: "/ENTRY[entry3]/sample/name",
			ok:       true,
		},
		{
			name:     "not variadic",
			path:     "/ENTRY[entry1]/start_time",
			ids:      nil,
			expected: "/ENTRY[entry1]/start_time",
			ok:       true,
		},
		{
			name: "insufficient ids",
			path: "/ENTRY[entry*]/USER[user*]/name",
			ids:  []int{1},
			ok:   false,
		},
		{
			name: "empty path",
			path: "",
			ids:  []int{1},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveVariadic(tt.path, tt.ids)
			assert.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}
