package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/agnivade/levenshtein"
)

var ErrUnknownPreset = errors.New("unknown preset")

// maxSuggestDistance bounds how far a typo may be from a preset name before
// no suggestion is offered.
const maxSuggestDistance = 3

// Preset is a named field configuration from the presets file. The embedded
// Field keys sit at the same table level as name and label.
type Preset struct {
	Name  string `toml:"name"`
	Label string `toml:"label"`
	Field
}

// Presets is the ordered list of presets in the file.
type Presets []Preset

type presetsFile struct {
	Field []Preset `toml:"field"`
}

const defaultPresetsTOML = `# Amount field presets
# Add new [[field]] blocks to define more fields.

[[field]]
name = "amount"
label = "Amount"
step = 1

[[field]]
name = "price"
label = "Price"
min = 0
max = 100000
step = 0.05
force_step = true

[[field]]
name = "quantity"
label = "Quantity"
min = 2
max = 20
step = 4
force_step = true
amount = 8
`

// LoadPresets reads the presets file at path. If the file doesn't exist it is
// created with the default presets.
func LoadPresets(path string) (Presets, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return DefaultPresets(), fmt.Errorf("create presets dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultPresetsTOML), 0o644); wErr != nil {
			return DefaultPresets(), fmt.Errorf("write default presets: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return ParsePresets(string(data))
}

// ParsePresets decodes and validates presets TOML.
func ParsePresets(data string) (Presets, error) {
	var f presetsFile
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}

	out := make(Presets, 0, len(f.Field))
	seen := make(map[string]bool, len(f.Field))
	var errs []error
	for i, e := range f.Field {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			errs = append(errs, fmt.Errorf("preset #%d: missing name", i+1))
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			errs = append(errs, fmt.Errorf("preset %q: duplicate name", name))
			continue
		}
		seen[key] = true

		p := e
		p.Name = name
		p.Field = p.Field.WithDefaults()
		if p.Label == "" {
			p.Label = name
		}
		if err := p.Field.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("preset %q: %w", name, err))
			continue
		}
		out = append(out, p)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return out, nil
}

// DefaultPresets returns the presets written to a fresh presets file.
func DefaultPresets() Presets {
	p, err := ParsePresets(defaultPresetsTOML)
	if err != nil {
		panic(fmt.Sprintf("default presets: %v", err))
	}
	return p
}

// Names returns the preset names in file order.
func (ps Presets) Names() []string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.Name
	}
	return names
}

// Lookup finds a preset by case-insensitive name. Unknown names return an
// error wrapping ErrUnknownPreset, with the closest name suggested.
func (ps Presets) Lookup(name string) (Preset, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range ps {
		if strings.ToLower(p.Name) == want {
			return p, nil
		}
	}
	if s := ps.suggest(want); s != "" {
		return Preset{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownPreset, name, s)
	}
	return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// Select resolves each name in order. An empty list selects every preset.
func (ps Presets) Select(names []string) (Presets, error) {
	if len(names) == 0 {
		return ps, nil
	}
	out := make(Presets, 0, len(names))
	for _, n := range names {
		p, err := ps.Lookup(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (ps Presets) suggest(name string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, p := range ps {
		d := levenshtein.ComputeDistance(name, strings.ToLower(p.Name))
		if d < bestDist {
			best, bestDist = p.Name, d
		}
	}
	return best
}
