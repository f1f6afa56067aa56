package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// captureColorOutput captures output written through the color package.
func captureColorOutput(t *testing.T, fn func()) string {
	t.Helper()

	oldNoColor := color.NoColor
	oldOutput := color.Output
	t.Cleanup(func() {
		color.NoColor = oldNoColor
		color.Output = oldOutput
	})

	var buf bytes.Buffer
	color.NoColor = true
	color.Output = &buf

	fn()
	return buf.String()
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(string, ...any)
		prefix string
	}{
		{name: "success", fn: Success, prefix: "✓ "},
		{name: "error", fn: Error, prefix: "✗ "},
		{name: "warning", fn: Warning, prefix: "⚠ "},
		{name: "info", fn: Info, prefix: ""},
		{name: "header", fn: Header, prefix: ""},
		{name: "pawn", fn: Pawn, prefix: "♙ "},
		{name: "knight", fn: Knight, prefix: "♘ "},
		{name: "king", fn: King, prefix: "♔ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureColorOutput(t, func() {
				tt.fn("loaded %d variants from %s", 6, "ini")
			})
			assert.Equal(t, tt.prefix+"loaded 6 variants from ini\n", output)
		})
	}
}

func TestStep(t *testing.T) {
	output := captureColorOutput(t, func() {
		Step(2, "resolve %s", "antihouse")
	})
	assert.Equal(t, "[2] resolve antihouse\n", output)
}

func TestMultipleMessages(t *testing.T) {
	output := captureColorOutput(t, func() {
		Success("first")
		Error("second")
		Warning("third")
	})
	assert.Equal(t, "✓ first\n✗ second\n⚠ third\n", output)
}

func TestConfigure(t *testing.T) {
	oldNoColor := color.NoColor
	t.Cleanup(func() { color.NoColor = oldNoColor })

	t.Run("explicit", func(t *testing.T) {
		color.NoColor = false
		Configure(true)
		assert.True(t, color.NoColor)
	})

	t.Run("NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		color.NoColor = false
		Configure(false)
		assert.True(t, color.NoColor)
	})
}

func TestColorVariables(t *testing.T) {
	assert.NotNil(t, Red)
	assert.NotNil(t, Green)
	assert.NotNil(t, Yellow)
	assert.NotNil(t, Blue)
	assert.NotNil(t, Cyan)
	assert.NotNil(t, Bold)
}
