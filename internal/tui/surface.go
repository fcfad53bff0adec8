package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/amountfield/internal/binding"
)

// surface is the editable element of a field: a textinput that reports text
// changes and focus loss to its listeners. Fields replace their surface on
// remount; the binder follows.
type surface struct {
	binding.Listeners
	input textinput.Model
	gen   int
}

func newSurface(gen int, value string) *surface {
	inp := textinput.New()
	inp.Prompt = ""
	inp.Placeholder = "0,00"
	// bracketed paste arrives as a KeyMsg with Paste set; the clipboard
	// shortcut would insert text without that flag
	inp.KeyMap.Paste.SetEnabled(false)
	inp.SetValue(value)
	return &surface{input: inp, gen: gen}
}

// Value returns the text currently shown.
func (s *surface) Value() string { return s.input.Value() }

// setText writes text without emitting an input event.
func (s *surface) setText(text string) {
	if text != s.input.Value() {
		s.input.SetValue(text)
		s.input.CursorEnd()
	}
}

func (s *surface) focused() bool { return s.input.Focused() }

func (s *surface) focus() tea.Cmd { return s.input.Focus() }

// blur drops focus and emits a blur event if the surface had focus.
func (s *surface) blur() {
	if !s.input.Focused() {
		return
	}
	s.input.Blur()
	s.Emit(binding.Event{Kind: binding.EventBlur})
}

// update forwards msg to the textinput and emits an input event when the
// text changed. A paste is not inserted at the cursor: the event carries only
// the pasted text and the listener decides what the surface shows.
func (s *surface) update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && km.Paste {
		if s.input.Focused() {
			s.Emit(binding.Event{Kind: binding.EventInput, Text: string(km.Runes), Paste: true})
		}
		return nil
	}
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if after := s.input.Value(); after != before {
		s.Emit(binding.Event{Kind: binding.EventInput, Text: after})
	}
	return cmd
}

func (s *surface) view() string { return s.input.View() }
