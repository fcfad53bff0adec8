package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPresets(t *testing.T) {
	ps := DefaultPresets()
	require.Equal(t, []string{"amount", "price", "quantity"}, ps.Names())

	q, err := ps.Lookup("quantity")
	require.NoError(t, err)
	require.Equal(t, "Quantity", q.Label)
	require.Equal(t, 4.0, q.Step)
	require.True(t, q.ForceStep)
	require.Equal(t, 2.0, *q.Min)
	require.Equal(t, 20.0, *q.Max)
	require.Equal(t, 8.0, *q.Amount)

	a, err := ps.Lookup("AMOUNT")
	require.NoError(t, err)
	require.Nil(t, a.Min)
	require.Equal(t, 1.0, a.Step)
}

func TestLoadPresetsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "fields.toml")

	ps, err := LoadPresets(path)
	require.NoError(t, err)
	require.Len(t, ps, 3)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestParsePresetsDefaultsAndErrors(t *testing.T) {
	ps, err := ParsePresets(`
[[field]]
name = "tip"
`)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	require.Equal(t, "tip", ps[0].Label)
	require.Equal(t, 1.0, ps[0].Step)

	_, err = ParsePresets(`
[[field]]
name = "bad"
min = 10
max = 1

[[field]]
label = "nameless"

[[field]]
name = "Bad"
`)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidBounds)
	require.Contains(t, err.Error(), "missing name")
	require.Contains(t, err.Error(), "duplicate name")

	_, err = ParsePresets("[[field]\nname=")
	require.Error(t, err)
}

func TestLookupSuggestsClosestName(t *testing.T) {
	ps := DefaultPresets()

	_, err := ps.Lookup("prcie")
	require.ErrorIs(t, err, ErrUnknownPreset)
	require.Contains(t, err.Error(), `did you mean "price"`)

	_, err = ps.Lookup("completely-different")
	require.ErrorIs(t, err, ErrUnknownPreset)
	require.NotContains(t, err.Error(), "did you mean")
}

func TestSelect(t *testing.T) {
	ps := DefaultPresets()

	all, err := ps.Select(nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	some, err := ps.Select([]string{"quantity", "amount"})
	require.NoError(t, err)
	require.Equal(t, []string{"quantity", "amount"}, some.Names())

	_, err = ps.Select([]string{"amount", "nope"})
	require.ErrorIs(t, err, ErrUnknownPreset)
}
