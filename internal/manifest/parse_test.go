package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("sections keys and comments", func(t *testing.T) {
		data := []byte(`
# Lose everything to win.
# Second line.
[anti_antichess:giveaway]
extinctionValue = loss
castling = false

; other comment style
[coffeehill:kingofthehill]
mustCapture=true
`)
		doc, err := Parse(data)
		require.NoError(t, err)

		want := &Document{Sections: []*Section{
			{
				Name:    "anti_antichess",
				Base:    "giveaway",
				Comment: "Lose everything to win.\nSecond line.",
				Options: []Option{
					{Key: "extinctionValue", Value: "loss"},
					{Key: "castling", Value: "false"},
				},
			},
			{
				Name:    "coffeehill",
				Base:    "kingofthehill",
				Comment: "other comment style",
				Options: []Option{{Key: "mustCapture", Value: "true"}},
			},
		}}
		if diff := cmp.Diff(want, doc); diff != "" {
			t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("header without base", func(t *testing.T) {
		doc, err := Parse([]byte("[plain]\ncastling = false\n"))
		require.NoError(t, err)
		require.Len(t, doc.Sections, 1)
		assert.Equal(t, "plain", doc.Sections[0].Name)
		assert.Empty(t, doc.Sections[0].Base)
		assert.Equal(t, "plain", doc.Sections[0].Header())
	})

	t.Run("values kept verbatim", func(t *testing.T) {
		doc, err := Parse([]byte("[x:giveaway]\nwhiteFlag = d4 e4 d5 e5\nextinctionPieceTypes = *\nnote = a # b\n"))
		require.NoError(t, err)
		s := doc.Sections[0]

		v, ok := s.Get("whiteFlag")
		require.True(t, ok)
		assert.Equal(t, "d4 e4 d5 e5", v)

		v, _ = s.Get("extinctionPieceTypes")
		assert.Equal(t, "*", v)

		v, _ = s.Get("note")
		assert.Equal(t, "a # b", v)
	})

	t.Run("surrounding quotes kept", func(t *testing.T) {
		doc, err := Parse([]byte("[a:chess]\npieceToCharTable = \"PNBRQK\"\nname = 'x'\n"))
		require.NoError(t, err)
		s := doc.Sections[0]

		v, _ := s.Get("pieceToCharTable")
		assert.Equal(t, `"PNBRQK"`, v)

		v, _ = s.Get("name")
		assert.Equal(t, "'x'", v)
	})

	t.Run("comment attaches only directly above header", func(t *testing.T) {
		data := []byte("# top file comment\n\n# about a\n[a:chess]\ncastling = false\n# trailing\n\n[b:chess]\ncastling = false\n")
		doc, err := Parse(data)
		require.NoError(t, err)
		require.Len(t, doc.Sections, 2)
		assert.Equal(t, "about a", doc.Sections[0].Comment)
		assert.Empty(t, doc.Sections[1].Comment)
	})

	t.Run("comment after option line", func(t *testing.T) {
		doc, err := Parse([]byte("[a:chess]\ncastling = false\n; about b\n[b:chess]\ncastling = false\n"))
		require.NoError(t, err)
		assert.Equal(t, "about b", doc.Sections[1].Comment)
	})

	t.Run("keys are case sensitive", func(t *testing.T) {
		doc, err := Parse([]byte("[x:giveaway]\nmustCapture = true\nmustcapture = false\n"))
		require.NoError(t, err)
		assert.Len(t, doc.Sections[0].Options, 2)
	})

	t.Run("duplicate keys are kept", func(t *testing.T) {
		doc, err := Parse([]byte("[x:giveaway]\npocketSize = 6\npocketSize = 7\n"))
		require.NoError(t, err)

		s := doc.Sections[0]
		assert.Len(t, s.Options, 2)
		v, _ := s.Get("pocketSize")
		assert.Equal(t, "7", v)
		assert.Equal(t, map[string]string{"pocketSize": "7"}, s.Map())
	})

	t.Run("duplicate sections are kept", func(t *testing.T) {
		doc, err := Parse([]byte("[x:giveaway]\na = 1\n[x:atomic]\nb = 2\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "x"}, doc.Names())

		first, ok := doc.Lookup("x")
		require.True(t, ok)
		assert.Equal(t, "giveaway", first.Base)
	})

	t.Run("errors", func(t *testing.T) {
		tests := []struct {
			name    string
			data    string
			wantErr error
		}{
			{name: "empty", data: "", wantErr: ErrEmpty},
			{name: "only comments", data: "# nothing\n\n", wantErr: ErrEmpty},
			{name: "orphan option", data: "castling = false\n[x:giveaway]\n", wantErr: ErrOrphanOption},
			{name: "empty base", data: "[x:]\ncastling = false\n", wantErr: ErrInvalidHeader},
			{name: "empty name", data: "[:giveaway]\ncastling = false\n", wantErr: ErrInvalidHeader},
			{name: "two bases", data: "[x:a:b]\ncastling = false\n", wantErr: ErrInvalidHeader},
			{name: "reserved default", data: "[DEFAULT]\ncastling = false\n[b:chess]\ncastling = false\n", wantErr: ErrInvalidHeader},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := Parse([]byte(tt.data))
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("reserved default message", func(t *testing.T) {
		_, err := Parse([]byte("[DEFAULT]\ncastling = false\n"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrOrphanOption)
		assert.Contains(t, err.Error(), "[DEFAULT] is reserved")
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := Parse([]byte("[x:giveaway]\ncastling\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse variants ini")
	})
}

func TestLoad(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "variants.ini")
		require.NoError(t, os.WriteFile(path, []byte("[x:giveaway]\ncastling = false\n"), 0644))

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"x"}, doc.Names())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("names file in parse error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.ini")
		require.NoError(t, os.WriteFile(path, []byte("[x:]\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidHeader)
		assert.Contains(t, err.Error(), path)
	})
}
