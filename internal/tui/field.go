package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/jask/amountfield/internal/amount"
	"github.com/jask/amountfield/internal/binding"
	"github.com/jask/amountfield/internal/config"
	"github.com/jask/amountfield/internal/engine"
)

const inputWidth = 24

// CommittedMsg is sent after a field commits an amount.
type CommittedMsg struct {
	Field    string
	Amount   float64
	Display  string
	Cause    engine.Cause
	Adjusted bool
	Clamped  bool
}

// Field hosts one amount engine on a textinput surface.
//
// Typing edits the live buffer through the binder's input handler and a paste
// replaces it. Losing focus commits the buffer; step keys commit immediately.
type Field struct {
	name  string
	label string

	engine  *engine.Engine
	binder  *binding.Binder
	surface *surface
	gen     int

	pending []engine.Commit
	keys    KeyMap
	styles  Styles
	log     zerolog.Logger
}

// NewField builds a field from a preset.
func NewField(p config.Preset, keys KeyMap, styles Styles, log zerolog.Logger) *Field {
	f := &Field{
		name:   p.Name,
		label:  p.Label,
		keys:   keys,
		styles: styles,
		log:    log.With().Str("field", p.Name).Logger(),
	}
	f.engine = engine.New(p.Field,
		engine.WithLogger(f.log),
		engine.WithOnCommit(func(c engine.Commit) { f.pending = append(f.pending, c) }),
	)
	f.binder = binding.NewBinder(binding.Handlers{
		Input: f.handleInput,
		Blur:  f.handleBlur,
	}, f.log)
	f.surface = newSurface(f.gen, f.engine.Display())
	f.binder.Bind(f.surface)
	return f
}

func (f *Field) handleInput(ev binding.Event) {
	var clean string
	if ev.Paste {
		clean = f.engine.Paste(ev.Text)
	} else {
		clean = f.engine.Input(ev.Text)
	}
	f.surface.setText(clean)
}

func (f *Field) handleBlur(binding.Event) {
	if _, ok := f.engine.Blur(); ok {
		f.surface.setText(f.engine.Display())
	}
}

// Name returns the preset name.
func (f *Field) Name() string { return f.name }

// Label returns the display label.
func (f *Field) Label() string { return f.label }

// Text returns what the surface shows.
func (f *Field) Text() string { return f.surface.Value() }

// Amount returns the committed amount.
func (f *Field) Amount() (float64, bool) { return f.engine.Amount() }

// Engine exposes the field's engine.
func (f *Field) Engine() *engine.Engine { return f.engine }

// Focused reports whether the surface has focus.
func (f *Field) Focused() bool { return f.surface.focused() }

// Generation counts surface remounts.
func (f *Field) Generation() int { return f.gen }

// Focus gives the surface focus.
func (f *Field) Focus() tea.Cmd { return f.surface.focus() }

// Blur removes focus, committing any pending edit.
func (f *Field) Blur() tea.Cmd {
	f.surface.blur()
	return f.flush()
}

// Increment steps the amount up and commits.
func (f *Field) Increment() tea.Cmd {
	f.engine.Increment()
	f.surface.setText(f.engine.Display())
	return f.flush()
}

// Decrement steps the amount down and commits.
func (f *Field) Decrement() tea.Cmd {
	f.engine.Decrement()
	f.surface.setText(f.engine.Display())
	return f.flush()
}

// Remount swaps in a fresh surface carrying the same text and focus, then
// rebinds. The old surface is left without listeners.
func (f *Field) Remount() tea.Cmd {
	old := f.surface
	f.gen++
	f.surface = newSurface(f.gen, old.Value())
	f.binder.Rebind(f.surface)
	f.log.Debug().Int("generation", f.gen).Msg("surface remounted")
	if old.focused() {
		// the old surface has no listeners left, so this blur commits nothing
		old.input.Blur()
		return f.surface.focus()
	}
	return nil
}

// Update handles step and remount keys and forwards everything else to the
// surface.
func (f *Field) Update(msg tea.Msg) (*Field, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && f.Focused() && !km.Paste {
		switch {
		case key.Matches(km, f.keys.Increment):
			return f, f.Increment()
		case key.Matches(km, f.keys.Decrement):
			return f, f.Decrement()
		case key.Matches(km, f.keys.Remount):
			return f, f.Remount()
		}
	}
	cmd := f.surface.update(msg)
	return f, tea.Batch(cmd, f.flush())
}

// flush turns commits collected from the engine into messages.
func (f *Field) flush() tea.Cmd {
	if len(f.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(f.pending))
	for _, c := range f.pending {
		msg := CommittedMsg{
			Field:    f.name,
			Amount:   c.Amount,
			Display:  c.Display,
			Cause:    c.Cause,
			Adjusted: c.Adjusted(),
			Clamped:  c.Clamped,
		}
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	f.pending = f.pending[:0]
	return tea.Batch(cmds...)
}

// Hint describes the field's bounds and step, e.g. "2,00 – 20,00 · step 4,00 (forced)".
func (f *Field) Hint() string {
	cfg := f.engine.Config()
	var parts []string
	switch {
	case cfg.Min != nil && cfg.Max != nil:
		parts = append(parts, amount.Format(*cfg.Min)+" – "+amount.Format(*cfg.Max))
	case cfg.Min != nil:
		parts = append(parts, "≥ "+amount.Format(*cfg.Min))
	case cfg.Max != nil:
		parts = append(parts, "≤ "+amount.Format(*cfg.Max))
	}
	step := "step " + amount.Format(cfg.Step)
	if cfg.ForceStep {
		step += " (forced)"
	}
	parts = append(parts, step)
	return strings.Join(parts, " · ")
}

// View renders the label, the input box and the hint on one row.
func (f *Field) View(labelWidth int) string {
	labelStyle := f.styles.Label
	box := f.styles.Box
	if f.Focused() {
		labelStyle = f.styles.LabelFocused
		box = f.styles.BoxFocused
	}
	label := ansi.Truncate(f.label, labelWidth, "…")
	label += strings.Repeat(" ", max(0, labelWidth-ansi.StringWidth(label)))

	input := f.surface.view()
	if f.engine.Dirty() {
		input = f.styles.Pending.Render(input)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		labelStyle.Render(label)+" ",
		box.Width(inputWidth).Render(input),
		" "+f.styles.Hint.Render(f.Hint()),
	)
}
