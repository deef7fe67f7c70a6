package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mode string

const (
	modeAuto  mode = "auto"
	modeDark  mode = "dark"
	modeLight mode = "light"
)

func newModeNormalizer() *Normalizer[mode] {
	return NewNormalizer(map[string]mode{
		"auto":  modeAuto,
		"dark":  modeDark,
		"light": modeLight,
	}, modeAuto)
}

func TestNormalizer_Normalize(t *testing.T) {
	n := newModeNormalizer()
	tests := []struct {
		name  string
		input string
		want  mode
	}{
		{"exact", "dark", modeDark},
		{"upper case", "LIGHT", modeLight},
		{"padded", "  dark ", modeDark},
		{"unknown falls back", "sepia", modeAuto},
		{"empty falls back", "", modeAuto},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.input))
		})
	}
}

func TestNormalizer_NormalizeWithError(t *testing.T) {
	n := newModeNormalizer()

	v, err := n.NormalizeWithError("Dark")
	require.NoError(t, err)
	assert.Equal(t, modeDark, v)

	_, err = n.NormalizeWithError("sepia")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[auto dark light]")
}

func TestNormalizer_NormalizeField(t *testing.T) {
	n := newModeNormalizer()

	assert.Equal(t, Result[mode]{Value: modeDark}, n.NormalizeField("appearance", "dark"))

	r := n.NormalizeField("appearance", " Dark")
	assert.Equal(t, modeDark, r.Value)
	assert.Equal(t, `normalized appearance from " Dark" to "dark"`, r.Warning)

	r = n.NormalizeField("appearance", "sepia")
	assert.Equal(t, modeAuto, r.Value)
	assert.Contains(t, r.Warning, "unknown appearance")

	assert.Empty(t, n.NormalizeField("appearance", "").Warning)
}

func TestNormalizer_ValidKeysIsACopy(t *testing.T) {
	n := newModeNormalizer()
	keys := n.ValidKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"auto", "dark", "light"}, n.ValidKeys())
}
