package jurisdiction

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	l := Default()
	assert.Len(t, l, 13)

	tests := []struct {
		name string
		code string
		ok   bool
	}{
		{"Texas", "USA-TX", true},
		{"Arkansas", "USA-AR", true},
		{"Minnesota", "USA-MN", true},
		{"Atlantis", "", false},
		{"texas", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		code, ok := l.Resolve(tt.name)
		assert.Equal(t, tt.ok, ok, "Resolve(%q)", tt.name)
		assert.Equal(t, tt.code, code, "Resolve(%q)", tt.name)
	}
}

func TestResolveNormalizesUnicode(t *testing.T) {
	l, err := Parse([]byte("country: CAN\nsubdivisions:\n  \"Québec\": QC\n"))
	require.NoError(t, err)

	// "e" followed by a combining acute accent.
	code, ok := l.Resolve("Que\u0301bec")
	require.True(t, ok)
	assert.Equal(t, "CAN-QC", code)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"no country":      "subdivisions:\n  Texas: TX\n",
		"no subdivisions": "country: USA\n",
		"empty code":      "country: USA\nsubdivisions:\n  Texas: \"\"\n",
		"bad yaml":        "country: [USA\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "states.yaml")
	require.NoError(t, os.WriteFile(path, []byte("country: USA\nsubdivisions:\n  Nevada: NV\n"), 0644))

	l, err := Load(path)
	require.NoError(t, err)
	code, ok := l.Resolve("Nevada")
	assert.True(t, ok)
	assert.Equal(t, "USA-NV", code)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
