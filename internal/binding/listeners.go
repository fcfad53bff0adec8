package binding

import "slices"

type listener struct {
	tok  Token
	kind EventKind
	h    Handler
}

// Listeners is a listener registry a Surface implementation can embed.
// Emit calls handlers in registration order.
type Listeners struct {
	list []listener
}

// Listen registers h for kind.
func (l *Listeners) Listen(kind EventKind, h Handler) Token {
	tok := NewToken()
	l.list = append(l.list, listener{tok: tok, kind: kind, h: h})
	return tok
}

// Unlisten removes the listener registered under tok. Unknown tokens are ignored.
func (l *Listeners) Unlisten(tok Token) {
	l.list = slices.DeleteFunc(l.list, func(x listener) bool { return x.tok == tok })
}

// Emit delivers ev to every listener for ev.Kind. The set is snapshotted first
// so a handler that rebinds does not change who receives this event.
func (l *Listeners) Emit(ev Event) {
	for _, x := range slices.Clone(l.list) {
		if x.kind == ev.Kind && x.h != nil {
			x.h(ev)
		}
	}
}

// Len returns the number of registered listeners.
func (l *Listeners) Len() int { return len(l.list) }

// Count returns the number of listeners registered for kind.
func (l *Listeners) Count(kind EventKind) int {
	n := 0
	for _, x := range l.list {
		if x.kind == kind {
			n++
		}
	}
	return n
}
