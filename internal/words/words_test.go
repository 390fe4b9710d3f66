package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/hangman/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultList(t *testing.T) {
	l := Default(randutil.New(1))
	assert.Equal(t, "Baseball", l.Category())
	assert.Equal(t, DefaultWords, l.Words())

	seen := make(map[string]int)
	for range 700 {
		w := l.Next()
		require.Contains(t, DefaultWords, w)
		seen[w]++
	}
	assert.Len(t, seen, len(DefaultWords), "every word should be drawn eventually")
}

func TestListIsReproducible(t *testing.T) {
	a, b := Default(randutil.New(5)), Default(randutil.New(5))
	for range 20 {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		wantErr string
	}{
		{name: "valid", words: []string{"Chen", "The Best"}},
		{name: "empty list", words: nil, wantErr: "word list is empty"},
		{name: "blank word", words: []string{"Chen", ""}, wantErr: `word 2 (""): no letters`},
		{name: "only spaces", words: []string{" "}, wantErr: "leading or trailing space"},
		{name: "punctuation", words: []string{"Don't"}, wantErr: `unsupported character '\''`},
		{name: "digits", words: []string{"R2D2"}, wantErr: `unsupported character '2'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.words)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewListCopiesInput(t *testing.T) {
	in := []string{"Chen"}
	l, err := NewList("", in, randutil.New(1))
	require.NoError(t, err)
	in[0] = "Mutated"
	assert.Equal(t, "Chen", l.Next())
	assert.Equal(t, "Baseball", l.Category())
}

func TestParseFile(t *testing.T) {
	src := []byte(`
category = "Pitchers"
words    = ["Ryan", "Koufax", "Cy Young"]
`)
	f, err := ParseFile(src, "pitchers.hcl")
	require.NoError(t, err)
	assert.Equal(t, "Pitchers", f.Category)
	assert.Equal(t, []string{"Ryan", "Koufax", "Cy Young"}, f.Words)
}

func TestParseFileErrors(t *testing.T) {
	t.Run("syntax", func(t *testing.T) {
		_, err := ParseFile([]byte(`words = [`), "bad.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse HCL file")
	})

	t.Run("missing words", func(t *testing.T) {
		_, err := ParseFile([]byte(`category = "x"`), "bad.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode HCL")
	})

	t.Run("invalid word", func(t *testing.T) {
		_, err := ParseFile([]byte(`words = ["ok", "n0pe"]`), "bad.hcl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad.hcl: word 2")
	})
}

func TestOpen(t *testing.T) {
	t.Run("empty path uses default", func(t *testing.T) {
		l, err := Open("", randutil.New(1))
		require.NoError(t, err)
		assert.Equal(t, DefaultWords, l.Words())
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "words.hcl")
		require.NoError(t, os.WriteFile(path, []byte(`words = ["Stuff"]`), 0o600))

		l, err := Open(path, randutil.New(1))
		require.NoError(t, err)
		assert.Equal(t, "Stuff", l.Next())
		assert.Equal(t, "Baseball", l.Category())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "nope.hcl"), randutil.New(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read word list")
	})
}
