package detect

import "testing"

func TestMapClassName(t *testing.T) {
	tests := []struct {
		name string
		want Class
	}{
		{"cell phone", ClassPhone},
		{"book", ClassNotes},
		{"laptop", ClassOther},
		{"person", ClassOther},
		{"", ClassOther},
	}

	for _, tc := range tests {
		if got := MapClassName(tc.name); got != tc.want {
			t.Errorf("MapClassName(%q): got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClass_String(t *testing.T) {
	if ClassPhone.String() != "phone" || ClassNotes.String() != "notes" || ClassOther.String() != "other" {
		t.Errorf("class names: got %q, %q, %q", ClassPhone, ClassNotes, ClassOther)
	}
}

func TestRect_Center(t *testing.T) {
	r := Rect{X: 100, Y: 200, W: 40, H: 60}
	c := r.Center()
	if c.X != 120 || c.Y != 230 {
		t.Errorf("Center: got (%v, %v), want (120, 230)", c.X, c.Y)
	}
}

func TestPoint_Dist(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist: got %v, want 5", got)
	}
}
