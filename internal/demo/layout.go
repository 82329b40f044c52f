package demo

import "time"

// Grid layout of the week view, in window fractions.
const (
	firstHour = 8
	lastHour  = 20

	margin       = 0.01
	gutterWidth  = 0.06
	headerHeight = 0.08
)

// columnWidth is the width of one day column, margins included.
const columnWidth = (1 - gutterWidth - margin) / 7

// hourFraction maps a time of day to [0, 1] over the visible hours.
func hourFraction(t time.Time) float32 {
	h := float32(t.Hour()) + float32(t.Minute())/60
	f := (h - firstHour) / (lastHour - firstHour)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}

// gridTop is the top edge of the hour grid.
func gridTop() float32 { return 1 - headerHeight - margin }

// gridHeight is the height of the hour grid.
func gridHeight() float32 { return gridTop() - margin }

// columnX returns the left edge of day d.
func columnX(d int) float32 {
	return gutterWidth + float32(d)*columnWidth
}

// eventRect returns the box of e in the column of its day, relative to
// monday. ok is false when the event is outside the week or the visible
// hours.
func eventRect(e Event, monday time.Time) (pos, dims [2]float32, ok bool) {
	d, ok := dayIndex(monday, e.Start)
	if !ok {
		return pos, dims, false
	}
	top := gridTop() - hourFraction(e.Start)*gridHeight()
	bottom := gridTop() - hourFraction(e.End)*gridHeight()
	if top-bottom <= 0 {
		return pos, dims, false
	}
	pos = [2]float32{columnX(d) + margin/2, bottom}
	dims = [2]float32{columnWidth - margin, top - bottom}
	return pos, dims, true
}

// dayIndex returns the column of t in the week starting at monday.
func dayIndex(monday, t time.Time) (int, bool) {
	if t.Before(monday) {
		return 0, false
	}
	d := int(t.Sub(monday) / (24 * time.Hour))
	return d, d < 7
}

// EventCenter returns the center of e's box in window fractions, origin
// bottom-left. ok is false when e is not on the grid.
func EventCenter(e Event, monday time.Time) (center [2]float32, ok bool) {
	pos, dims, ok := eventRect(e, monday)
	if !ok {
		return center, false
	}
	return [2]float32{pos[0] + dims[0]/2, pos[1] + dims[1]/2}, true
}
