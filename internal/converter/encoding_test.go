package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDetectEncoding tests encoding detection
func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name     string
		content  []byte
		expected string
	}{
		{
			name:     "UTF-8 with meta charset",
			content:  []byte(`<html><head><meta charset="utf-8"></head><body>Hello</body></html>`),
			expected: "utf-8",
		},
		{
			name:     "UTF-8 with meta content-type",
			content:  []byte(`<html><head><meta http-equiv="Content-Type" content="text/html; charset=utf-8"></head></html>`),
			expected: "utf-8",
		},
		{
			name:     "latin-1 maps to windows-1252",
			content:  []byte(`<html><head><meta charset="iso-8859-1"></head></html>`),
			expected: "windows-1252",
		},
		{
			name:     "UTF-8 BOM",
			content:  append([]byte{0xEF, 0xBB, 0xBF}, []byte("<html></html>")...),
			expected: "utf-8",
		},
		{
			name:     "undeclared valid UTF-8",
			content:  []byte("<html><body>Café</body></html>"),
			expected: "utf-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, name := DetectEncoding(tt.content)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestToUTF8(t *testing.T) {
	t.Run("utf-8 passes through", func(t *testing.T) {
		in := []byte(`<meta charset="utf-8"><p>Café</p>`)
		out, err := ToUTF8(in)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})

	t.Run("windows-1252 is decoded", func(t *testing.T) {
		in := []byte("<meta charset=\"windows-1252\"><p>Caf\xe9</p>")
		out, err := ToUTF8(in)
		require.NoError(t, err)
		assert.Contains(t, string(out), "Café")
	})
}
