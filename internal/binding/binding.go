// Package binding keeps an amount field's handlers attached to whichever
// editable surface the host currently renders.
//
// The host owns surfaces and may swap them at any time. A Binder observes the
// current one: Rebind detaches the handlers registered on the old surface
// before attaching fresh ones to the new surface, so a logical field never has
// more than one input handler and one blur handler live.
package binding

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventKind names the surface events a binder listens for.
type EventKind int

const (
	EventInput EventKind = iota // text changed, by typing or paste
	EventBlur                   // surface lost focus
)

func (k EventKind) String() string {
	switch k {
	case EventInput:
		return "input"
	case EventBlur:
		return "blur"
	default:
		return "unknown"
	}
}

// Event is delivered by a surface to its listeners.
type Event struct {
	Kind EventKind
	// Text is the full surface text after a typed edit, or just the pasted
	// text for a paste. Empty for blur.
	Text string
	// Paste is set when the edit came from a paste action.
	Paste bool
}

// Handler receives surface events.
type Handler func(Event)

// Token identifies a registered listener.
type Token uuid.UUID

// NewToken returns a fresh random token.
func NewToken() Token { return Token(uuid.New()) }

func (t Token) String() string { return uuid.UUID(t).String() }

// Surface is an editable element that delivers events to listeners.
// Implementations must be comparable, typically pointers.
type Surface interface {
	Listen(kind EventKind, h Handler) Token
	Unlisten(tok Token)
}

// Handlers is the pair of callbacks a Binder attaches to each surface.
type Handlers struct {
	Input Handler
	Blur  Handler
}

// Binder tracks the bound surface and the tokens registered on it.
// It is not safe for concurrent use; call it from the host event loop.
type Binder struct {
	handlers Handlers
	current  Surface
	tokens   []Token
	log      zerolog.Logger
}

// NewBinder creates an unbound binder.
func NewBinder(h Handlers, log zerolog.Logger) *Binder {
	return &Binder{handlers: h, log: log}
}

// Bound reports whether a surface is attached.
func (b *Binder) Bound() bool { return b.current != nil }

// Current returns the bound surface, or nil.
func (b *Binder) Current() Surface { return b.current }

// Bind attaches to s. It is Rebind under another name: binding while already
// bound detaches from the previous surface first.
func (b *Binder) Bind(s Surface) { b.Rebind(s) }

// Rebind moves the handlers from the current surface to s. Rebinding to the
// surface already bound is a no-op and rebinding to nil unbinds.
func (b *Binder) Rebind(s Surface) {
	if s == b.current {
		return
	}
	b.detach()
	if s == nil {
		return
	}
	b.current = s
	b.tokens = append(b.tokens[:0],
		s.Listen(EventInput, b.guard(s, b.handlers.Input)),
		s.Listen(EventBlur, b.guard(s, b.handlers.Blur)),
	)
	b.log.Debug().Strs("tokens", tokenStrings(b.tokens)).Msg("surface bound")
}

// Unbind detaches from the current surface.
func (b *Binder) Unbind() { b.detach() }

func (b *Binder) detach() {
	if b.current == nil {
		return
	}
	for _, tok := range b.tokens {
		b.current.Unlisten(tok)
	}
	b.log.Debug().Strs("tokens", tokenStrings(b.tokens)).Msg("surface unbound")
	b.current = nil
	b.tokens = b.tokens[:0]
}

// guard drops events from a surface that is no longer the bound one, in case
// the host keeps delivering to it after Unlisten.
func (b *Binder) guard(s Surface, h Handler) Handler {
	return func(ev Event) {
		if b.current != s {
			b.log.Debug().Stringer("kind", ev.Kind).Msg("event from stale surface dropped")
			return
		}
		if h != nil {
			h(ev)
		}
	}
}

func tokenStrings(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.String()
	}
	return out
}
