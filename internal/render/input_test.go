package render

import "testing"

type mapInput map[Key]bool

func (m mapInput) IsKeyPressed(key Key) bool { return m[key] }

func TestSnapshot(t *testing.T) {
	s := Snapshot(mapInput{KeyRight: true, KeyW: true})

	if !s.Pressed(KeyRight) || !s.Pressed(KeyW) {
		t.Error("Expected Right and W to be pressed")
	}
	if s.Pressed(KeyLeft) || s.Pressed(KeyS) {
		t.Error("Expected Left and S to be released")
	}
	if s != Keys(KeyRight, KeyW) {
		t.Errorf("Expected snapshot to equal Keys(Right, W), got %v", s)
	}
}

func TestKeyStateAxis(t *testing.T) {
	tests := []struct {
		name     string
		state    KeyState
		expected float64
	}{
		{"none", Keys(), 0},
		{"positive", Keys(KeyRight), 1},
		{"negative", Keys(KeyLeft), -1},
		{"both cancel", Keys(KeyLeft, KeyRight), 0},
		{"other axis ignored", Keys(KeyUp), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.state.Axis(KeyRight, KeyLeft); got != tc.expected {
				t.Errorf("Axis() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestKeyStateOutOfRange(t *testing.T) {
	s := Keys(Key(-1), Key(100))
	if s != (KeyState{}) {
		t.Errorf("Expected out-of-range keys to be ignored, got %v", s)
	}
	if s.Pressed(Key(100)) {
		t.Error("Expected out-of-range key to report released")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		key  Key
	}{
		{"up", KeyUp},
		{"Right", KeyRight},
		{" d ", KeyD},
		{"W", KeyW},
	}
	for _, tc := range tests {
		k, err := ParseKey(tc.name)
		if err != nil {
			t.Errorf("ParseKey(%q) failed: %v", tc.name, err)
			continue
		}
		if k != tc.key {
			t.Errorf("ParseKey(%q) = %v, expected %v", tc.name, k, tc.key)
		}
	}

	if _, err := ParseKey("space"); err == nil {
		t.Error("Expected an error for an unknown key")
	}
}
