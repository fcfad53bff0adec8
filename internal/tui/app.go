package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/jask/amountfield/internal/config"
)

// App ties together the fields of a form.
type App struct {
	fields     []*Field
	focus      int
	labelWidth int
	width      int

	status     string
	statusWarn bool
	committed  map[string]string // field name -> last committed display

	keys   KeyMap
	styles Styles
	log    zerolog.Logger
}

// New builds an app with one field per preset. The first field starts focused
// once Init runs.
func New(presets config.Presets, log zerolog.Logger) *App {
	a := &App{
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		log:       log,
		committed: make(map[string]string, len(presets)),
		width:     80,
	}
	for _, p := range presets {
		a.fields = append(a.fields, NewField(p, a.keys, a.styles, log))
		a.labelWidth = max(a.labelWidth, ansi.StringWidth(p.Label))
	}
	return a
}

// Fields returns the fields in display order.
func (a *App) Fields() []*Field { return a.fields }

// Focused returns the focused field, or nil for an empty form.
func (a *App) Focused() *Field {
	if len(a.fields) == 0 {
		return nil
	}
	return a.fields[a.focus]
}

// Committed returns the last committed display string per field name.
func (a *App) Committed() map[string]string { return a.committed }

// Status returns the status line text.
func (a *App) Status() string { return a.status }

func (a *App) Init() tea.Cmd {
	if f := a.Focused(); f != nil {
		return f.Focus()
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		return a, nil
	case CommittedMsg:
		a.committed[m.Field] = m.Display
		a.status = fmt.Sprintf("%s %s: %s", a.labelOf(m.Field), m.Cause, m.Display)
		switch {
		case m.Clamped:
			a.status += " (clamped to bounds)"
		case m.Adjusted:
			a.status += " (snapped to step)"
		}
		a.statusWarn = m.Adjusted
		a.log.Info().Str("field", m.Field).Str("cause", string(m.Cause)).Float64("amount", m.Amount).Msg("committed")
		return a, nil
	case tea.KeyMsg:
		if m.Paste {
			break
		}
		switch {
		case key.Matches(m, a.keys.Quit):
			return a, tea.Sequence(a.blurFocused(), tea.Quit)
		case key.Matches(m, a.keys.Next):
			return a, a.moveFocus(1)
		case key.Matches(m, a.keys.Prev):
			return a, a.moveFocus(-1)
		case key.Matches(m, a.keys.Commit):
			f := a.Focused()
			if f == nil {
				return a, nil
			}
			return a, tea.Batch(f.Blur(), f.Focus())
		}
	}

	f := a.Focused()
	if f == nil {
		return a, nil
	}
	_, cmd := f.Update(msg)
	return a, cmd
}

func (a *App) blurFocused() tea.Cmd {
	if f := a.Focused(); f != nil {
		return f.Blur()
	}
	return nil
}

// moveFocus blurs the focused field, which commits its edit, and focuses the
// field dir steps away.
func (a *App) moveFocus(dir int) tea.Cmd {
	if len(a.fields) == 0 {
		return nil
	}
	blur := a.fields[a.focus].Blur()
	a.focus = (a.focus + dir + len(a.fields)) % len(a.fields)
	return tea.Batch(blur, a.fields[a.focus].Focus())
}

func (a *App) labelOf(name string) string {
	for _, f := range a.fields {
		if f.Name() == name {
			return f.Label()
		}
	}
	return name
}

func (a *App) View() string {
	lines := []string{a.styles.Title.Render("Amounts"), ""}
	if len(a.fields) == 0 {
		lines = append(lines, a.styles.Hint.Render("No fields configured"))
	}
	for _, f := range a.fields {
		lines = append(lines, f.View(a.labelWidth))
	}
	lines = append(lines, "", a.renderStatus(), a.renderFooter())
	return strings.Join(lines, "\n")
}

func (a *App) renderStatus() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = "Ready"
	}
	msg = ansi.Truncate(msg, max(1, a.width), "…")
	if a.statusWarn {
		return a.styles.StatusWarn.Render(msg)
	}
	return a.styles.Status.Render(msg)
}

func (a *App) renderFooter() string {
	space := a.styles.Footer.Render(" ")
	sep := a.styles.Footer.Render("  ")
	parts := make([]string, 0, len(a.keys.FooterBindings()))
	for _, b := range a.keys.FooterBindings() {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, a.styles.Key.Render(h.Key)+space+a.styles.KeyDesc.Render(h.Desc))
	}
	line := ansi.Truncate(strings.Join(parts, sep), max(1, a.width), "")
	if w := ansi.StringWidth(line); w < a.width {
		line += a.styles.Footer.Render(strings.Repeat(" ", a.width-w))
	}
	return line
}
