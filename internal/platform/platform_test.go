package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", "a"},
		{"A", "a"},
		{"esc", "esc"},
		{"shift+ctrl+a", "ctrl+shift+a"},
		{"cmd+comma", "ctrl+comma"},
		{"option+ctrl+x", "ctrl+alt+x"},
		{"ctrl+ctrl+k", "ctrl+k"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CanonicalKey(tt.in))
		})
	}
}

func TestMatchesKey_CaseInsensitiveLetters(t *testing.T) {
	assert.True(t, MatchesKey("A", "a"))
	assert.True(t, MatchesKey("cmd+q", "ctrl+q"))
	assert.False(t, MatchesKey("b", "a"))
	assert.False(t, MatchesKey("ctrl+a", "a"))
}

func TestIsPlainKey(t *testing.T) {
	assert.True(t, IsPlainKey("a"))
	assert.True(t, IsPlainKey("?"))
	assert.False(t, IsPlainKey("esc"))
	assert.False(t, IsPlainKey("ctrl+q"))
	assert.False(t, IsPlainKey(""))
}

func TestDisplayKey(t *testing.T) {
	assert.Equal(t, "Ctrl+Q", DisplayKey("ctrl+q"))
	assert.Equal(t, "Esc", DisplayKey("esc"))
	assert.Equal(t, "Ctrl+,", DisplayKey("ctrl+comma"))
	assert.Equal(t, "A", DisplayKey("a"))
}
