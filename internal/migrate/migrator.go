package migrate

import (
	"errors"
	"fmt"

	"github.com/sketch-hq/color-variables-migrator/internal/config"
)

// State is a step of a migration run.
type State int

const (
	Idle State = iota
	Simplifying
	ReplacingLayerColors
	ReplacingStyleColors
	GeneratingSwatches
	Done
	Cancelled
)

var stateNames = [...]string{
	Idle:                 "idle",
	Simplifying:          "simplifying styles",
	ReplacingLayerColors: "replacing layer colors",
	ReplacingStyleColors: "replacing style colors",
	GeneratingSwatches:   "generating swatches",
	Done:                 "done",
	Cancelled:            "cancelled",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Messages sent to the Notifier at the end of a run.
const (
	CompletedMessage = "Colors migrated to swatches"
	CancelledMessage = "Color migration cancelled"
)

// ErrAlreadyStarted is returned when Run is called on a Migrator that has
// already left the Idle state.
var ErrAlreadyStarted = errors.New("migration already started")

// Notifier receives the single user-visible message of a run.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Result is the outcome of a run.
type Result struct {
	Stats
	State State
}

// Migrator runs the enabled phases over a document in a fixed order:
// simplify styles, replace layer colors, replace style colors, generate
// missing swatches. A Migrator runs once.
type Migrator struct {
	Options  config.Options
	Notifier Notifier

	// OnTransition, if set, is called on every state change.
	OnTransition func(from, to State)

	state     State
	cancelled bool
}

// New returns an idle Migrator.
func New(opts config.Options, notifier Notifier) *Migrator {
	return &Migrator{Options: opts, Notifier: notifier}
}

// State returns the current state.
func (m *Migrator) State() State {
	return m.state
}

// Cancel makes a later Run end in Cancelled without touching the document.
// It has no effect once Run has started.
func (m *Migrator) Cancel() {
	m.cancelled = true
}

type phase struct {
	state   State
	enabled bool
	run     func(Document) (Stats, error)
}

// Run migrates doc. When no phase is enabled, or Cancel was called, the run
// ends in Cancelled and doc is untouched. A phase error stops the run; phases
// that already completed are not undone and no message is sent.
func (m *Migrator) Run(doc Document) (*Result, error) {
	if m.state != Idle {
		return nil, ErrAlreadyStarted
	}
	res := &Result{}

	if m.cancelled || !m.Options.Any() {
		m.transition(Cancelled)
		res.State = m.state
		m.notify(CancelledMessage)
		return res, nil
	}

	phases := []phase{
		{Simplifying, m.Options.SimplifyStyles, SimplifyStyles},
		{ReplacingLayerColors, m.Options.ReplaceLayerColors, MigrateLayers},
		{ReplacingStyleColors, m.Options.ReplaceStyleColors, MigrateStyles},
		{GeneratingSwatches, m.Options.GenerateMissingSwatches, CreateMissingSwatches},
	}
	for _, p := range phases {
		if !p.enabled {
			continue
		}
		m.transition(p.state)
		st, err := p.run(doc)
		res.add(st)
		if err != nil {
			res.State = m.state
			return res, fmt.Errorf("%s: %w", p.state, err)
		}
	}

	m.transition(Done)
	res.State = m.state
	m.notify(CompletedMessage)
	return res, nil
}

func (m *Migrator) transition(to State) {
	from := m.state
	m.state = to
	log.Debugf("%s -> %s", from, to)
	if m.OnTransition != nil {
		m.OnTransition(from, to)
	}
}

func (m *Migrator) notify(msg string) {
	if m.Notifier != nil {
		m.Notifier.Notify(msg)
	}
}
