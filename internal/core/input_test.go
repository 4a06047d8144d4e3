package core

import "testing"

func TestKeySetFirst(t *testing.T) {
	tests := []struct {
		name     string
		keys     []Key
		expected Key
	}{
		{"empty", nil, KeyNone},
		{"single turn", []Key{KeyTurnRight}, KeyTurnRight},
		{"quit beats turns", []Key{KeyTurnLeft, KeyQuit, KeyTurnRight}, KeyQuit},
		{"left beats right", []Key{KeyTurnRight, KeyTurnLeft}, KeyTurnLeft},
		{"turn beats arrow", []Key{KeyUp, KeyTurnRight}, KeyTurnRight},
		{"arrow beats forward", []Key{KeyForward, KeyDown}, KeyDown},
		{"forward alone", []Key{KeyForward}, KeyForward},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewKeySet(tc.keys...)
			if got := s.First(); got != tc.expected {
				t.Errorf("First() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestKeySetClearClone(t *testing.T) {
	s := NewKeySet(KeyUp, KeyQuit)
	clone := s.Clone()

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("After Clear, Len() = %d, expected 0", s.Len())
	}
	if !clone.Has(KeyUp) || !clone.Has(KeyQuit) {
		t.Error("Clone should be unaffected by Clear on the original")
	}

	var zero KeySet
	if zero.Has(KeyUp) {
		t.Error("zero KeySet should hold nothing")
	}
	zero.Set(KeyDown)
	if !zero.Has(KeyDown) {
		t.Error("Set on zero KeySet should work")
	}
}
