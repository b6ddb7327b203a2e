// Package ledger tracks the occupancy counters the schedulers must respect:
// how many employees are simultaneously on vacation on a given day, and how
// many employees of a given client are on vacation within a given
// measurement window.
package ledger

import "time"

// Window is the subset of a measurement window the ledger needs: its id,
// client scope is supplied separately per call since a window itself has no
// client.
type Window struct {
	ID    string
	Start time.Time
	End   time.Time
}

// Ledger is a per-request, single-threaded occupancy tracker. It is never
// shared between concurrent optimizations.
type Ledger struct {
	dayCount           map[string]int
	windowClientCount  map[windowClientKey]int
}

type windowClientKey struct {
	WindowID string
	ClientID string
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{
		dayCount:          make(map[string]int),
		windowClientCount: make(map[windowClientKey]int),
	}
}

func dateKey(d time.Time) string {
	return d.Format("2006-01-02")
}

// GlobalCount returns the number of employees currently overlapping day d.
func (l *Ledger) GlobalCount(d time.Time) int {
	return l.dayCount[dateKey(d)]
}

// WindowClientCount returns the number of clientID's employees currently
// overlapping windowID.
func (l *Ledger) WindowClientCount(windowID, clientID string) int {
	return l.windowClientCount[windowClientKey{WindowID: windowID, ClientID: clientID}]
}

// overlaps reports whether [start, end] intersects [wStart, wEnd].
func overlaps(start, end, wStart, wEnd time.Time) bool {
	return !end.Before(wStart) && !start.After(wEnd)
}

// OverlappingWindows returns the subset of windows that intersect
// [start, end].
func OverlappingWindows(start, end time.Time, windows []Window) []Window {
	var out []Window
	for _, w := range windows {
		if overlaps(start, end, w.Start, w.End) {
			out = append(out, w)
		}
	}
	return out
}

// CanPlace reports whether adding the interval [start, end] would keep every
// day's global occupancy at or below maxSimultaneous.
func (l *Ledger) CanPlace(start, end time.Time, maxSimultaneous int) bool {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if l.GlobalCount(d)+1 > maxSimultaneous {
			return false
		}
	}
	return true
}

// CanPlaceInWindows reports whether adding the interval for clientID would
// keep every overlapping window's per-client occupancy at or below limit.
func (l *Ledger) CanPlaceInWindows(overlapping []Window, clientID string, limit int) bool {
	for _, w := range overlapping {
		if l.WindowClientCount(w.ID, clientID)+1 > limit {
			return false
		}
	}
	return true
}

// Commit records the interval [start, end] for clientID against both the
// global day counter and the per-(window, client) counters of every window
// in overlapping.
func (l *Ledger) Commit(start, end time.Time, overlapping []Window, clientID string) {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		l.dayCount[dateKey(d)]++
	}
	for _, w := range overlapping {
		key := windowClientKey{WindowID: w.ID, ClientID: clientID}
		l.windowClientCount[key]++
	}
}

// Uncommit reverses a prior Commit of the same arguments, used by the ILP
// search to backtrack out of a branch without rebuilding the ledger.
func (l *Ledger) Uncommit(start, end time.Time, overlapping []Window, clientID string) {
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := dateKey(d)
		l.dayCount[key]--
		if l.dayCount[key] <= 0 {
			delete(l.dayCount, key)
		}
	}
	for _, w := range overlapping {
		key := windowClientKey{WindowID: w.ID, ClientID: clientID}
		l.windowClientCount[key]--
		if l.windowClientCount[key] <= 0 {
			delete(l.windowClientCount, key)
		}
	}
}

// MaxSimultaneous computes max(1, round(employeeCount * percent/100)).
func MaxSimultaneous(employeeCount, percent int) int {
	raw := float64(employeeCount) * float64(percent) / 100.0
	rounded := int(raw + 0.5)
	if rounded < 1 {
		return 1
	}
	return rounded
}

// PerClientCap computes max(1, floor(0.1 * clientSize)).
func PerClientCap(clientSize int) int {
	limit := clientSize / 10
	if limit < 1 {
		return 1
	}
	return limit
}

// PerClientCapCeil computes max(1, ceil(0.1 * clientSize)), the ceiling
// counterpart of PerClientCap. The schedulers use PerClientCap.
func PerClientCapCeil(clientSize int) int {
	limit := (clientSize + 9) / 10
	if limit < 1 {
		return 1
	}
	return limit
}
