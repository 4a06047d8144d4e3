package core

// Key is a semantic key identifier, abstracted from physical key presses.
// The platform layer maps raw input onto these; the core never sees scancodes.
type Key int

const (
	KeyNone      Key = iota
	KeyForward       // W - keep heading (no change requested)
	KeyTurnLeft      // A - rotate heading counter-clockwise
	KeyTurnRight     // D - rotate heading clockwise
	KeyUp            // Up arrow - absolute heading
	KeyDown          // Down arrow
	KeyLeft          // Left arrow
	KeyRight         // Right arrow
	KeyQuit          // Esc, Q, Ctrl+C - end the session
)

// KeyPriority is the order in which simultaneously held keys are resolved.
// The first key of this list present in a KeySet wins.
var KeyPriority = []Key{
	KeyQuit,
	KeyTurnLeft,
	KeyTurnRight,
	KeyUp,
	KeyDown,
	KeyLeft,
	KeyRight,
	KeyForward,
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyForward:
		return "Forward"
	case KeyTurnLeft:
		return "TurnLeft"
	case KeyTurnRight:
		return "TurnRight"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeySet is the set of keys currently held down.
type KeySet struct {
	// Keys maps key identifiers to whether they are held.
	// Using a map allows checking multiple keys without order dependency.
	Keys map[Key]bool
}

// NewKeySet creates a key set holding the given keys.
func NewKeySet(keys ...Key) KeySet {
	s := KeySet{Keys: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		s.Set(k)
	}
	return s
}

// Set marks a key as held.
func (s *KeySet) Set(k Key) {
	if s.Keys == nil {
		s.Keys = make(map[Key]bool)
	}
	s.Keys[k] = true
}

// Has returns true if the given key is held.
func (s KeySet) Has(k Key) bool {
	if s.Keys == nil {
		return false
	}
	return s.Keys[k]
}

// Len returns the number of held keys.
func (s KeySet) Len() int {
	n := 0
	for _, held := range s.Keys {
		if held {
			n++
		}
	}
	return n
}

// Clear releases all keys.
func (s *KeySet) Clear() {
	for k := range s.Keys {
		delete(s.Keys, k)
	}
}

// Clone creates a copy of this key set.
func (s KeySet) Clone() KeySet {
	clone := NewKeySet()
	for k, v := range s.Keys {
		clone.Keys[k] = v
	}
	return clone
}

// First returns the highest-priority key in the set according to KeyPriority,
// or KeyNone if the set holds no recognised key.
func (s KeySet) First() Key {
	for _, k := range KeyPriority {
		if s.Has(k) {
			return k
		}
	}
	return KeyNone
}

// KeyboardSource reports the keys currently held down.
// HeldKeys must not block; it is called repeatedly within a sampling window.
type KeyboardSource interface {
	HeldKeys() KeySet
}
