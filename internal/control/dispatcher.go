package control

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/system"
)

// Binding is the action fired for a stabilized gesture.
type Binding struct {
	Name     string
	MediaKey system.MediaKey
	// Keystroke is the player shortcut sent alongside the media key.
	Keystroke string
}

// bindings maps gestures to actions. Open palm has no binding: it drives
// the volume mapper instead.
var bindings = map[gesture.Label]Binding{
	gesture.Fist:       {Name: "Play/Pause", MediaKey: system.MediaKeyPlayPause, Keystroke: "k"},
	gesture.OneFinger:  {Name: "Next track", MediaKey: system.MediaKeyNext, Keystroke: "l"},
	gesture.TwoFingers: {Name: "Previous track", MediaKey: system.MediaKeyPrev, Keystroke: "j"},
}

// BindingFor returns the action bound to a gesture.
func BindingFor(label gesture.Label) (Binding, bool) {
	b, ok := bindings[label]
	return b, ok
}

// Event describes one dispatch.
type Event struct {
	ID    uuid.UUID
	Label gesture.Label
	// Binding is nil when the gesture consumed the cooldown without a key.
	Binding *Binding
	At      time.Time
	// Err joins the failures of the injection paths, if any.
	Err error
}

// Status is the on-screen line for the event: the action name tagged with
// the first eight hex digits of ID, which also appear in the log. It is
// empty when no key was bound.
func (e *Event) Status() string {
	if e == nil || e.Binding == nil {
		return ""
	}
	return fmt.Sprintf("%s #%s", e.Binding.Name, e.ID.String()[:8])
}

// Dispatcher fires media actions for stabilized gestures, at most once per
// cooldown period.
type Dispatcher struct {
	injector system.Injector
	minDelay time.Duration
	last     time.Time
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher sending keys through injector.
func NewDispatcher(injector system.Injector, minDelay time.Duration, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		injector: injector,
		minDelay: minDelay,
		logger:   logger,
	}
}

// Ready reports whether the cooldown has elapsed at now.
func (d *Dispatcher) Ready(now time.Time) bool {
	if d.last.IsZero() {
		return true
	}
	return now.Sub(d.last) > d.minDelay
}

// LastFired returns the time of the last dispatch, zero if none.
func (d *Dispatcher) LastFired() time.Time {
	return d.last
}

// Dispatch fires the action bound to label if label is a known gesture and
// the cooldown has elapsed. The second result reports whether the cooldown
// was consumed; the caller is expected to reset its smoothing window then.
//
// Both injection paths are attempted even if one fails, and failures never
// prevent the cooldown from advancing.
func (d *Dispatcher) Dispatch(label gesture.Label, now time.Time) (*Event, bool) {
	if label == gesture.Unknown || label == gesture.None {
		return nil, false
	}
	if !d.Ready(now) {
		return nil, false
	}

	ev := &Event{
		ID:    uuid.New(),
		Label: label,
		At:    now,
	}

	if b, ok := bindings[label]; ok {
		ev.Binding = &b
		ev.Err = d.inject(b)
		d.logger.Info(b.Name, "gesture", label, "event", ev.ID)
		if ev.Err != nil {
			d.logger.Warn("action injection failed", "gesture", label, "event", ev.ID, "error", ev.Err)
		}
	} else {
		d.logger.Debug("gesture consumed cooldown", "gesture", label, "event", ev.ID)
	}

	d.last = now
	return ev, true
}

func (d *Dispatcher) inject(b Binding) error {
	if d.injector == nil {
		return errors.New("no injector configured")
	}
	return errors.Join(
		d.injector.SendMediaKey(b.MediaKey),
		d.injector.PressKey(b.Keystroke),
	)
}
