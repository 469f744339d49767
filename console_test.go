package taglog

import (
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func Test_detectProfile(t *testing.T) {
	tests := []struct {
		name   string // description of this test case
		env    map[string]string
		expect termenv.Profile
	}{
		{"colorterm truecolor", map[string]string{"COLORTERM": "truecolor"}, termenv.TrueColor},
		{"colorterm 24bit", map[string]string{"COLORTERM": "24bit"}, termenv.TrueColor},
		{"colorterm beats term", map[string]string{"COLORTERM": "TRUECOLOR", "TERM": "dumb"}, termenv.TrueColor},
		{"term 256color", map[string]string{"TERM": "xterm-256color"}, termenv.ANSI256},
		{"term 256color variant", map[string]string{"TERM": "screen.xterm-256color"}, termenv.ANSI256},
		{"term dumb", map[string]string{"TERM": "dumb"}, termenv.Ascii},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, detectProfile(stubEnv(tt.env)), "wrong profile")
		})
	}
	t.Run("no hints", func(t *testing.T) {
		// falls through to termenv's own detection, whatever that reports here
		assert.NotPanics(t, func() { detectProfile(stubEnv(nil)) })
	})
}

func Test_EnableConsole(t *testing.T) {
	f, err := os.Open(os.DevNull)
	assert.NoError(t, err, "error opening null device")
	defer f.Close()

	restore, err := EnableConsole(f)
	assert.NoError(t, err, "error enabling console")
	assert.NotNil(t, restore, "no restore function")
	assert.NoError(t, restore(), "error restoring console")
}

func Test_WantColor(t *testing.T) {
	assert.False(t, WantColor(nil), "nil file wants color")

	f, err := os.CreateTemp(t.TempDir(), "sink")
	assert.NoError(t, err, "error creating temp file")
	defer f.Close()
	assert.False(t, WantColor(f), "regular file wants color")
}
