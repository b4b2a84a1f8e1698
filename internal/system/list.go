package system

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gotube/internal/tubing"
)

// ErrIndexOutOfRange is returned for a segment position outside the list
var ErrIndexOutOfRange = errors.New("segment index out of range")

// List is the ordered sequence of segments making up a tubing run.
// Order defines routing and the continuity chain; the list never reorders
// itself. A List is owned by a single caller and is not safe for
// concurrent mutation.
type List struct {
	segments []tubing.Segment
}

// NewList creates a list holding segs in order
func NewList(segs ...tubing.Segment) *List {
	l := &List{segments: make([]tubing.Segment, 0, len(segs))}
	l.segments = append(l.segments, segs...)
	return l
}

// Append adds seg at the end of the run
func (l *List) Append(seg tubing.Segment) {
	l.segments = append(l.segments, seg)
}

// Remove deletes the segment at i, keeping the order of the rest
func (l *List) Remove(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.segments = append(l.segments[:i], l.segments[i+1:]...)
	return nil
}

// Replace swaps the segment at i for seg
func (l *List) Replace(i int, seg tubing.Segment) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.segments[i] = seg
	return nil
}

// Clear removes every segment
func (l *List) Clear() {
	l.segments = l.segments[:0]
}

func (l *List) Len() int {
	return len(l.segments)
}

// At returns the segment at i
func (l *List) At(i int) (tubing.Segment, error) {
	if err := l.checkIndex(i); err != nil {
		return tubing.Segment{}, err
	}
	return l.segments[i], nil
}

// Segments returns a copy of the segments in order
func (l *List) Segments() []tubing.Segment {
	out := make([]tubing.Segment, len(l.segments))
	copy(out, l.segments)
	return out
}

// Totals aggregates the current segments
func (l *List) Totals() Totals {
	return ComputeTotals(l.segments)
}

// Breakdown returns each segment's share of the totals
func (l *List) Breakdown() []Share {
	return Breakdown(l.segments)
}

// Layout projects the current segments onto the position axis
func (l *List) Layout() Layout {
	return Project(l.segments)
}

func (l *List) checkIndex(i int) error {
	if i < 0 || i >= len(l.segments) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(l.segments))
	}
	return nil
}
