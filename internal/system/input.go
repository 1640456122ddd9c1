// Package system wraps the operating-system collaborators the controller
// drives: the master volume mixer and keyboard input injection.
package system

import (
	"fmt"

	"github.com/go-vgo/robotgo"
)

// MediaKey represents a media control key.
type MediaKey int

const (
	MediaKeyPlayPause MediaKey = iota + 1
	MediaKeyNext
	MediaKeyPrev
)

// robotgoKeys maps media keys to robotgo key names.
var robotgoKeys = map[MediaKey]string{
	MediaKeyPlayPause: "audio_play",
	MediaKeyNext:      "audio_next",
	MediaKeyPrev:      "audio_prev",
}

func (k MediaKey) String() string {
	switch k {
	case MediaKeyPlayPause:
		return "play/pause"
	case MediaKeyNext:
		return "next track"
	case MediaKeyPrev:
		return "previous track"
	default:
		return fmt.Sprintf("MediaKey(%d)", int(k))
	}
}

// MediaKeySender sends a media key to the focused session.
type MediaKeySender interface {
	SendMediaKey(key MediaKey) error
}

// KeyPresser simulates a plain key press.
type KeyPresser interface {
	PressKey(key string) error
}

// Injector bundles both injection paths.
type Injector interface {
	MediaKeySender
	KeyPresser
}

// RobotInjector injects input through robotgo.
type RobotInjector struct {
	keyTap func(key string, args ...interface{}) error
}

// NewRobotInjector creates an Injector backed by robotgo.
func NewRobotInjector() *RobotInjector {
	return &RobotInjector{keyTap: robotgo.KeyTap}
}

// SendMediaKey taps the media key.
func (r *RobotInjector) SendMediaKey(key MediaKey) error {
	name, ok := robotgoKeys[key]
	if !ok {
		return fmt.Errorf("unsupported media key: %s", key)
	}
	if err := r.keyTap(name); err != nil {
		return fmt.Errorf("send %s: %w", key, err)
	}
	return nil
}

// PressKey taps a single key by its robotgo name.
func (r *RobotInjector) PressKey(key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}
	if err := r.keyTap(key); err != nil {
		return fmt.Errorf("press %q: %w", key, err)
	}
	return nil
}
