package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jask/amountfield/internal/binding"
	"github.com/jask/amountfield/internal/config"
	"github.com/jask/amountfield/internal/engine"
)

// drain runs cmd and any batched children, skipping commands that block
// (cursor blink timers).
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, drain(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

func commits(cmd tea.Cmd) []CommittedMsg {
	var out []CommittedMsg
	for _, msg := range drain(cmd) {
		if c, ok := msg.(CommittedMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

func preset(t *testing.T, name string) config.Preset {
	t.Helper()
	p, err := config.DefaultPresets().Lookup(name)
	require.NoError(t, err)
	return p
}

func newTestField(t *testing.T, name string) *Field {
	t.Helper()
	f := NewField(preset(t, name), DefaultKeyMap(), DefaultStyles(), zerolog.Nop())
	f.Focus()
	return f
}

func typeText(f *Field, s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestFieldTypingSanitizesLive(t *testing.T) {
	f := newTestField(t, "amount")

	typeText(f, "as12.3")
	require.Equal(t, "12.3", f.Text())
	require.True(t, f.Engine().Dirty())
	_, ok := f.Amount()
	require.False(t, ok)

	got := commits(f.Blur())
	require.Len(t, got, 1)
	require.Equal(t, CommittedMsg{Field: "amount", Amount: 12.3, Display: "12,30", Cause: engine.CauseBlur}, got[0])
	require.Equal(t, "12,30", f.Text())
	require.False(t, f.Focused())
}

func TestFieldPasteUsesResolver(t *testing.T) {
	f := newTestField(t, "amount")

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("€ 1.233.222,43"), Paste: true})
	require.Equal(t, "1.233.222,43", f.Text())
	require.Equal(t, engine.OriginPasted, f.Engine().Origin())

	got := commits(f.Blur())
	require.Len(t, got, 1)
	require.Equal(t, 1233222.43, got[0].Amount)
	require.Equal(t, "1233222,43", f.Text())
}

func TestFieldPasteReplacesShownAmount(t *testing.T) {
	f := newTestField(t, "amount")
	typeText(f, "5")
	require.Len(t, commits(f.Blur()), 1)
	require.Equal(t, "5,00", f.Text())

	f.Focus()
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1.233.222,43"), Paste: true})
	require.Equal(t, "1.233.222,43", f.Text())

	got := commits(f.Blur())
	require.Len(t, got, 1)
	require.Equal(t, 1233222.43, got[0].Amount)
	require.Equal(t, "1233222,43", got[0].Display)
}

func TestFieldPasteIntoPresetAmount(t *testing.T) {
	f := newTestField(t, "quantity")
	require.Equal(t, "8,00", f.Text())

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12"), Paste: true})
	require.Equal(t, "12", f.Text())
	got := commits(f.Blur())
	require.Len(t, got, 1)
	require.Equal(t, 12.0, got[0].Amount)
}

func TestFieldTypingAfterPaste(t *testing.T) {
	f := newTestField(t, "amount")
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12,5"), Paste: true})
	typeText(f, "0")
	require.Equal(t, "12,50", f.Text())
	require.Equal(t, engine.OriginTyped, f.Engine().Origin())

	got := commits(f.Blur())
	require.Len(t, got, 1)
	require.Equal(t, 12.5, got[0].Amount)
}

func TestFieldPasteIgnoredWithoutFocus(t *testing.T) {
	f := newTestField(t, "quantity")
	f.Blur()
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3"), Paste: true})
	require.Equal(t, "8,00", f.Text())
	require.False(t, f.Engine().Dirty())
}

func TestFieldBlurWithoutEditCommitsNothing(t *testing.T) {
	f := newTestField(t, "quantity")
	require.Equal(t, "8,00", f.Text())
	require.Empty(t, commits(f.Blur()))
	require.Equal(t, "8,00", f.Text())
}

func TestFieldStepKeysCommitImmediately(t *testing.T) {
	f := newTestField(t, "quantity")

	_, cmd := f.Update(tea.KeyMsg{Type: tea.KeyUp})
	got := commits(cmd)
	require.Len(t, got, 1)
	require.Equal(t, engine.CauseIncrement, got[0].Cause)
	require.Equal(t, "12,00", f.Text())

	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	f.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, "4,00", f.Text())

	_, cmd = f.Update(tea.KeyMsg{Type: tea.KeyDown})
	got = commits(cmd)
	require.Len(t, got, 1)
	require.Equal(t, 2.0, got[0].Amount)
	require.True(t, got[0].Adjusted)
	require.True(t, got[0].Clamped)
	require.Equal(t, "2,00", f.Text())
}

func TestFieldStepQuantizesTypedValue(t *testing.T) {
	f := newTestField(t, "quantity")
	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	require.Equal(t, "", f.Text())

	typeText(f, "13")
	f.Update(tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, "16,00", f.Text(), "13+4 snaps to 16")
}

func TestFieldRemountRebinds(t *testing.T) {
	f := newTestField(t, "amount")
	typeText(f, "5")

	old := f.surface
	f.Remount()
	require.Equal(t, 1, f.Generation())
	require.NotSame(t, old, f.surface)
	require.Zero(t, old.Len())
	require.Equal(t, 1, f.surface.Count(binding.EventInput))
	require.Equal(t, 1, f.surface.Count(binding.EventBlur))
	require.True(t, f.Focused())
	require.False(t, old.focused())
	require.Equal(t, "5", f.Text())

	old.Emit(binding.Event{Kind: binding.EventInput, Text: "999"})
	require.Equal(t, "5", f.Engine().Buffer())

	typeText(f, "0")
	require.Equal(t, "50", f.Text())

	for i := 0; i < 5; i++ {
		f.Remount()
	}
	require.Equal(t, 1, f.surface.Count(binding.EventInput))

	got := commits(f.Blur())
	require.Len(t, got, 1)
	require.Equal(t, "50,00", got[0].Display)
}

func TestFieldRemountKey(t *testing.T) {
	f := newTestField(t, "amount")
	f.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.Equal(t, 1, f.Generation())
	require.True(t, f.Focused())
}

func TestFieldHint(t *testing.T) {
	require.Equal(t, "2,00 – 20,00 · step 4,00 (forced)", newTestField(t, "quantity").Hint())
	require.Equal(t, "step 1,00", newTestField(t, "amount").Hint())

	lo := 0.0
	f := NewField(config.Preset{Name: "tip", Label: "Tip", Field: config.Field{Min: &lo, Step: 0.5}},
		DefaultKeyMap(), DefaultStyles(), zerolog.Nop())
	require.Equal(t, "≥ 0,00 · step 0,50", f.Hint())
}

func TestFieldView(t *testing.T) {
	f := newTestField(t, "quantity")
	v := f.View(10)
	require.Contains(t, v, "Quantity")
	require.Contains(t, v, "8,00")
	require.Contains(t, v, "step 4,00")
}
