package render

import (
	"fmt"
	"strings"
)

// InputManager handles keyboard input from the user.
type InputManager interface {
	IsKeyPressed(key Key) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys the game reads
const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	numKeys
)

// KeyState is a snapshot of every key the game reads, taken once per frame.
type KeyState [numKeys]bool

// Pressed reports whether key was held when the snapshot was taken.
func (s KeyState) Pressed(key Key) bool {
	if key < 0 || key >= numKeys {
		return false
	}
	return s[key]
}

// Axis returns +1, -1 or 0 for a pair of opposing keys. Holding both
// cancels out.
func (s KeyState) Axis(positive, negative Key) float64 {
	v := 0.0
	if s.Pressed(positive) {
		v++
	}
	if s.Pressed(negative) {
		v--
	}
	return v
}

// Snapshot reads the current state of every game key.
func Snapshot(input InputManager) KeyState {
	var s KeyState
	for k := Key(0); k < numKeys; k++ {
		s[k] = input.IsKeyPressed(k)
	}
	return s
}

// Keys builds a snapshot with the given keys held.
func Keys(pressed ...Key) KeyState {
	var s KeyState
	for _, k := range pressed {
		if k >= 0 && k < numKeys {
			s[k] = true
		}
	}
	return s
}

var keyNames = map[string]Key{
	"up":    KeyUp,
	"down":  KeyDown,
	"left":  KeyLeft,
	"right": KeyRight,
	"w":     KeyW,
	"a":     KeyA,
	"s":     KeyS,
	"d":     KeyD,
}

// ParseKey looks up a key by its lower-case name, such as "left" or "w".
func ParseKey(name string) (Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown key: %q", name)
	}
	return k, nil
}
