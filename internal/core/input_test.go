package core

import "testing"

func TestInputFrameCount(t *testing.T) {
	f := NewInputFrame()
	if f.Count() != 0 {
		t.Errorf("Count() = %d, expected 0 for empty frame", f.Count())
	}

	f.Set(ActionLeft)
	f.Set(ActionFire)
	f.Set(ActionFire)
	if f.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", f.Count())
	}
	if !f.Has(ActionFire) {
		t.Error("Has(ActionFire) should be true")
	}
	if f.Has(ActionRight) {
		t.Error("Has(ActionRight) should be false")
	}

	f.Clear()
	if f.Count() != 0 {
		t.Errorf("Count() after Clear = %d, expected 0", f.Count())
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should have no actions")
	}
	if f.Count() != 0 {
		t.Error("zero frame should count 0 keys")
	}
	f.Set(ActionContinue)
	if !f.Has(ActionContinue) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSoundOff)

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionSoundOff) {
		t.Error("clone should keep actions after original is cleared")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"green", ColorGreen, true},
		{" Bright_Cyan ", ColorBrightCyan, true},
		{"orange", ColorOrange, true},
		{"chartreuse", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("ParseColor(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
