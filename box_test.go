package pixlayout

import (
	"image"
	"testing"
)

func TestBox_Dimensions(t *testing.T) {
	tests := []struct {
		name   string
		box    Box
		width  int
		height int
		empty  bool
	}{
		{"unit", NewBox(0, 0, 0, 0), 1, 1, false},
		{"hd", NewBox(0, 0, 1919, 1079), 1920, 1080, false},
		{"negative origin", NewBox(-10, -5, 9, 4), 20, 10, false},
		{"empty x", NewBox(0, 0, -1, 5), 0, 0, true},
		{"empty y", NewBox(3, 3, 4, 2), 0, 0, true},
		{"zero value", Box{}, 1, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.box.Width() != tt.width || tt.box.Height() != tt.height || tt.box.Empty() != tt.empty {
				t.Errorf("got %dx%d empty=%v, want %dx%d empty=%v",
					tt.box.Width(), tt.box.Height(), tt.box.Empty(), tt.width, tt.height, tt.empty)
			}
		})
	}
}

func TestBox_Rect(t *testing.T) {
	b := NewBox(2, 3, 5, 7)
	r := b.Rect()
	if r != image.Rect(2, 3, 6, 8) {
		t.Errorf("Rect() = %v", r)
	}
	if BoxFromRect(r) != b {
		t.Errorf("BoxFromRect(Rect()) = %v", BoxFromRect(r))
	}
	if !NewBox(1, 1, 0, 0).Rect().Empty() {
		t.Error("empty box should convert to an empty rectangle")
	}
	if !b.Contains(image.Pt(5, 7)) || b.Contains(image.Pt(6, 7)) {
		t.Error("Contains should treat bounds as inclusive")
	}
	if got := b.String(); got != "[(2,3)-(5,7)]" {
		t.Errorf("String() = %q", got)
	}
}

func TestFlip_Involution(t *testing.T) {
	displays := []Box{
		NewBox(0, 0, 99, 49),
		NewBox(-20, 10, 20, 30),
	}
	points := []image.Point{{0, 0}, {5, 7}, {-3, 40}, {99, 49}}
	boxes := []Box{NewBox(0, 0, 9, 9), NewBox(-5, 2, 5, 20)}

	for _, d := range displays {
		for _, p := range points {
			if got := FlipPoint(FlipPoint(p, d), d); got != p {
				t.Errorf("FlipPoint twice(%v, %v) = %v", p, d, got)
			}
		}
		for _, b := range boxes {
			f := DataToDisplay(b, d)
			if f.Empty() {
				t.Errorf("flipped %v became empty", b)
			}
			if f.Width() != b.Width() || f.Height() != b.Height() {
				t.Errorf("flip changed size of %v: %v", b, f)
			}
			if got := DisplayToData(f, d); got != b {
				t.Errorf("round trip of %v = %v", b, got)
			}
		}
	}
}

func TestFlip_Corners(t *testing.T) {
	d := NewBox(0, 0, 99, 49)
	if got := FlipPoint(image.Pt(3, 0), d); got != image.Pt(3, 49) {
		t.Errorf("top row maps to %v, want (3,49)", got)
	}
	if got := FlipBox(NewBox(0, 0, 99, 9), d); got != NewBox(0, 40, 99, 49) {
		t.Errorf("top band maps to %v", got)
	}
}
