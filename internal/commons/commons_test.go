package commons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPeso(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "₱0.00"},
		{"999.5", "₱999.50"},
		{"1000", "₱1,000.00"},
		{"12500", "₱12,500.00"},
		{"1234567.891", "₱1,234,567.89"},
		{"-2500.25", "-₱2,500.25"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPeso(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: jacket\nqty: 3\n"), 0o600))

	var out struct {
		Name string `yaml:"name"`
		Qty  int    `yaml:"qty"`
	}
	require.NoError(t, LoadYAML(path, &out))

	assert.Equal(t, "jacket", out.Name)
	assert.Equal(t, 3, out.Qty)
}

func TestLoadYAML_MissingFile(t *testing.T) {
	var out map[string]any
	err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"), &out)
	assert.ErrorContains(t, err, "reading config file")
}

func TestLoadYAML_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unterminated\n"), 0o600))

	var out map[string]any
	err := LoadYAML(path, &out)
	assert.ErrorContains(t, err, "parsing config file")
}
