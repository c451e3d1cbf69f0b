package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("NewInputFrame() is not empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionPause)
	f.Set(ActionNone)

	tests := []struct {
		action   Action
		expected bool
	}{
		{ActionLeft, true},
		{ActionPause, true},
		{ActionRight, false},
		{ActionNone, false},
		{Action(200), false},
	}
	for _, tt := range tests {
		if got := f.Has(tt.action); got != tt.expected {
			t.Errorf("Has(%v) = %v, expected %v", tt.action, got, tt.expected)
		}
	}

	copied := f
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() left actions set")
	}
	if !copied.Has(ActionLeft) {
		t.Error("Clear() affected a copied frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.action.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestColorANSI(t *testing.T) {
	if got := ColorDefault.ANSI(); got != "" {
		t.Errorf("ColorDefault.ANSI() = %q, expected empty", got)
	}
	for c := ColorGray; c <= ColorBrightRed; c++ {
		if c.ANSI() == "" {
			t.Errorf("Color(%d).ANSI() is empty", c)
		}
	}
}
