package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []Issue
	}{
		{
			name: "clean document",
			data: "[a:giveaway]\ncastling = false\n[b:a]\nmustCapture = true\n",
			want: nil,
		},
		{
			name: "unknown base",
			data: "[a:nosuchvariant]\ncastling = false\n",
			want: []Issue{{Section: "a", Severity: SeverityError, Message: "unknown base variant: nosuchvariant"}},
		},
		{
			name: "base defined later",
			data: "[b:a]\ncastling = false\n[a:giveaway]\ncastling = false\n",
			want: []Issue{{Section: "b", Severity: SeverityError, Message: "unknown base variant: a"}},
		},
		{
			name: "duplicate section",
			data: "[a:giveaway]\ncastling = false\n[a:atomic]\ncastling = false\n",
			want: []Issue{{Section: "a", Severity: SeverityError, Message: "duplicate section"}},
		},
		{
			name: "redefined builtin",
			data: "[atomic:giveaway]\ncastling = false\n",
			want: []Issue{{Section: "atomic", Severity: SeverityWarning, Message: "redefines built-in variant atomic"}},
		},
		{
			name: "empty section",
			data: "[a:giveaway]\n",
			want: []Issue{{Section: "a", Severity: SeverityWarning, Message: "section overrides nothing"}},
		},
		{
			name: "unknown option",
			data: "[a:giveaway]\nmustcapture = true\n",
			want: []Issue{{Section: "a", Key: "mustcapture", Severity: SeverityError, Message: "unknown option"}},
		},
		{
			name: "bad value",
			data: "[a:giveaway]\nstalemateValue = lose\n",
			want: []Issue{{
				Section:  "a",
				Key:      "stalemateValue",
				Severity: SeverityError,
				Message:  `invalid option value: "lose" is not a valid outcome`,
			}},
		},
		{
			name: "duplicate key",
			data: "[a:giveaway]\npocketSize = 6\npocketSize = 7\n",
			want: []Issue{{Section: "a", Key: "pocketSize", Severity: SeverityWarning, Message: "set more than once, last value wins"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, Validate(doc))
		})
	}
}

func TestHasErrors(t *testing.T) {
	assert.False(t, HasErrors(nil))
	assert.False(t, HasErrors([]Issue{{Severity: SeverityWarning}}))
	assert.True(t, HasErrors([]Issue{{Severity: SeverityWarning}, {Severity: SeverityError}}))
}

func TestIssueString(t *testing.T) {
	assert.Equal(t, "[a] unknown option", Issue{Section: "a", Message: "unknown option"}.String())
	assert.Equal(t, "[a] k: bad", Issue{Section: "a", Key: "k", Message: "bad"}.String())
}
