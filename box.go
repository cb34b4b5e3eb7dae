package pixlayout

import (
	"fmt"
	"image"
)

// Box is an axis-aligned integer box with inclusive bounds. A box whose
// Max is below its Min on either axis is empty.
type Box struct {
	Min, Max image.Point
}

// NewBox returns the box spanning (x0, y0) to (x1, y1) inclusive.
func NewBox(x0, y0, x1, y1 int) Box {
	return Box{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// BoxFromRect converts a half-open image.Rectangle to a Box.
func BoxFromRect(r image.Rectangle) Box {
	r = r.Canon()
	return Box{Min: r.Min, Max: r.Max.Sub(image.Pt(1, 1))}
}

// Rect converts b to a half-open image.Rectangle.
func (b Box) Rect() image.Rectangle {
	if b.Empty() {
		return image.Rectangle{}
	}
	return image.Rectangle{Min: b.Min, Max: b.Max.Add(image.Pt(1, 1))}
}

// Empty reports whether b holds no points.
func (b Box) Empty() bool { return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y }

// Width returns the number of columns, 0 for an empty box.
func (b Box) Width() int {
	if b.Empty() {
		return 0
	}
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows, 0 for an empty box.
func (b Box) Height() int {
	if b.Empty() {
		return 0
	}
	return b.Max.Y - b.Min.Y + 1
}

// Contains reports whether p lies in b.
func (b Box) Contains(p image.Point) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

func (b Box) String() string {
	return fmt.Sprintf("[%v-%v]", b.Min, b.Max)
}

// FlipPoint converts p between the Y-down data convention and the Y-up
// display convention of the display window. It is its own inverse.
func FlipPoint(p image.Point, display Box) image.Point {
	return image.Pt(p.X, display.Min.Y+display.Max.Y-p.Y)
}

// FlipBox converts b between the Y-down data convention and the Y-up
// display convention of the display window. It is its own inverse.
func FlipBox(b, display Box) Box {
	lo := FlipPoint(b.Max, display)
	hi := FlipPoint(b.Min, display)
	return Box{Min: image.Pt(b.Min.X, lo.Y), Max: image.Pt(b.Max.X, hi.Y)}
}

// DataToDisplay converts a data-space box to display space.
func DataToDisplay(b, display Box) Box { return FlipBox(b, display) }

// DisplayToData converts a display-space box to data space.
func DisplayToData(b, display Box) Box { return FlipBox(b, display) }
