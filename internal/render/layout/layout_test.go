package layout

import (
	"image"
	"testing"
)

func TestInset(t *testing.T) {
	r := image.Rect(0, 0, 100, 50)
	if got := Inset(r, 10); got != image.Rect(10, 10, 90, 40) {
		t.Fatalf("Inset = %v", got)
	}
	if got := Inset(r, 0); got != r {
		t.Fatalf("Inset(0) = %v", got)
	}
	if got := Inset(r, 30); got.Min.Y > got.Max.Y {
		t.Fatalf("Inset past the middle is not normalized: %v", got)
	}
}

func TestAnchorTopLeft(t *testing.T) {
	r := image.Rect(10, 20, 110, 70)
	if got := AnchorTopLeft(r, 30, 10); got != image.Rect(10, 20, 40, 30) {
		t.Fatalf("AnchorTopLeft = %v", got)
	}
	if got := AnchorTopLeft(r, 500, -4); got != image.Rect(10, 20, 110, 20) {
		t.Fatalf("clamped AnchorTopLeft = %v", got)
	}
}
