// Package engine holds the state of one amount field: the live text buffer
// being edited and the committed amount. It turns input, paste, blur and step
// actions into commits using the pure functions in package amount.
package engine

import (
	"github.com/rs/zerolog"

	"github.com/jask/amountfield/internal/amount"
	"github.com/jask/amountfield/internal/config"
)

// Origin records how the live buffer was last edited.
type Origin int

const (
	OriginNone Origin = iota
	OriginTyped
	OriginPasted
)

func (o Origin) String() string {
	switch o {
	case OriginTyped:
		return "typed"
	case OriginPasted:
		return "pasted"
	default:
		return "none"
	}
}

// Cause names what triggered a commit.
type Cause string

const (
	CauseBlur      Cause = "blur"
	CauseIncrement Cause = "increment"
	CauseDecrement Cause = "decrement"
)

// Commit is an amount that became authoritative.
type Commit struct {
	// Input is the parsed or stepped value before bounds and quantization.
	Input   float64
	Amount  float64
	Display string
	Cause   Cause
	// Clamped is set when the value fell outside the bounds and was pinned
	// to one of them.
	Clamped bool
}

// Adjusted reports whether bounds or quantization changed the value.
func (c Commit) Adjusted() bool { return c.Input != c.Amount }

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithOnCommit registers a callback run after every commit.
func WithOnCommit(fn func(Commit)) Option {
	return func(e *Engine) { e.onCommit = fn }
}

// Engine is not safe for concurrent use; drive it from one event loop.
type Engine struct {
	cfg    config.Field
	bounds amount.Bounds

	amount  float64
	defined bool

	buffer string
	origin Origin

	log      zerolog.Logger
	onCommit func(Commit)
}

// New creates an engine for cfg. A zero step falls back to the default.
// cfg is expected to have passed Validate.
func New(cfg config.Field, opts ...Option) *Engine {
	cfg = cfg.WithDefaults()
	e := &Engine{
		cfg:    cfg,
		bounds: cfg.Bounds(),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if cfg.Amount != nil {
		e.amount, e.defined = *cfg.Amount, true
	}
	return e
}

// Config returns the field configuration in use.
func (e *Engine) Config() config.Field { return e.cfg }

// Amount returns the committed amount and whether one is defined.
func (e *Engine) Amount() (float64, bool) { return e.amount, e.defined }

// SetAmount replaces the committed amount without running bounds, the way a
// host pushes a new value in. nil clears it. Pending edits are discarded.
func (e *Engine) SetAmount(v *float64) {
	e.buffer, e.origin = "", OriginNone
	if v == nil {
		e.amount, e.defined = 0, false
		return
	}
	e.amount, e.defined = *v, true
}

// Display is the text the field should show: the live buffer while an edit is
// pending, the formatted amount otherwise, or "" when no amount is defined.
func (e *Engine) Display() string {
	if e.origin != OriginNone {
		return e.buffer
	}
	if !e.defined {
		return ""
	}
	return amount.Format(e.amount)
}

// Buffer returns the live buffer.
func (e *Engine) Buffer() string { return e.buffer }

// Dirty reports whether an uncommitted edit is pending.
func (e *Engine) Dirty() bool { return e.origin != OriginNone }

// Origin reports how the pending edit was made.
func (e *Engine) Origin() Origin { return e.origin }

// Input records a typed edit and returns the sanitized text to write back.
func (e *Engine) Input(text string) string {
	return e.edit(text, OriginTyped)
}

// Paste replaces the live buffer with the pasted text, sanitized, and returns
// it. Whatever the field showed before is discarded so its separators never
// mix with the pasted ones. The last edit decides which parser runs at
// commit, so typing after a paste parses as typed.
func (e *Engine) Paste(text string) string {
	return e.edit(text, OriginPasted)
}

func (e *Engine) edit(text string, origin Origin) string {
	e.buffer = amount.Sanitize(text)
	e.origin = origin
	return e.buffer
}

// Blur commits the pending edit. Without one there is nothing to commit and
// ok is false.
func (e *Engine) Blur() (c Commit, ok bool) {
	if !e.Dirty() {
		return Commit{}, false
	}
	return e.commit(e.parseBuffer(), CauseBlur), true
}

// Increment adds one step to the current amount and commits immediately.
func (e *Engine) Increment() Commit {
	return e.commit(amount.Increment(e.stepBase(), e.cfg.Step), CauseIncrement)
}

// Decrement subtracts one step from the current amount and commits immediately.
func (e *Engine) Decrement() Commit {
	return e.commit(amount.Decrement(e.stepBase(), e.cfg.Step), CauseDecrement)
}

// stepBase is the amount a step starts from: the pending edit if any, else the
// committed amount, else zero.
func (e *Engine) stepBase() float64 {
	if e.Dirty() {
		return e.parseBuffer()
	}
	if e.defined {
		return e.amount
	}
	return 0
}

func (e *Engine) parseBuffer() float64 {
	var v float64
	if e.origin == OriginPasted {
		v = amount.ParsePasted(e.buffer)
	} else {
		v = amount.ParseTyped(e.buffer)
	}
	if v == 0 && e.buffer != "" && !zeroText(e.buffer) {
		e.log.Debug().Str("buffer", e.buffer).Stringer("origin", e.origin).Msg("unparsable buffer, using 0")
	}
	return v
}

func (e *Engine) commit(v float64, cause Cause) Commit {
	snapped := v
	if e.cfg.ForceStep {
		snapped = amount.Quantize(v, e.cfg.Step)
	}
	committed := amount.Commit(v, e.bounds, e.cfg.Step, e.cfg.ForceStep)
	e.amount, e.defined = committed, true
	e.buffer, e.origin = "", OriginNone

	c := Commit{
		Input:   v,
		Amount:  committed,
		Display: amount.Format(committed),
		Cause:   cause,
		Clamped: !e.bounds.Contains(snapped),
	}
	e.log.Debug().
		Str("cause", string(cause)).
		Float64("input", v).
		Float64("amount", committed).
		Bool("clamped", c.Clamped).
		Str("display", c.Display).
		Msg("amount committed")
	if e.onCommit != nil {
		e.onCommit(c)
	}
	return c
}

// zeroText reports whether s spells zero, e.g. "0", "0,00" or "00.0".
func zeroText(s string) bool {
	sawDigit := false
	for _, r := range s {
		switch {
		case r == '0':
			sawDigit = true
		case r == '.' || r == ',':
		default:
			return false
		}
	}
	return sawDigit
}
