package flametext

import "sort"

// ellipsis is the marker glyph used for center-elided labels, and the
// minimum renderable label: a frame too narrow for it gets no text at all.
const ellipsis = "…"

// elideRunes builds the center-elided form keeping n runes of r: a head of
// ceil(n/2) runes, the ellipsis, and a tail of floor(n/2) runes. The head
// gets the extra rune so a recognizable prefix survives aggressive
// truncation.
func elideRunes(r []rune, n int) string {
	head := (n + 1) / 2
	tail := n - head
	return string(r[:head]) + ellipsis + string(r[len(r)-tail:])
}

// fitText finds the widest form of label that measures at most avail pixels.
//
// The full label is returned unmodified when it already fits. Otherwise the
// result is the center-elided form keeping the largest rune count that still
// fits, found by binary search: elided width grows monotonically with the
// kept-rune count, so each probe halves the range and every probe's width
// goes through measure (and therefore the metrics cache) rather than being
// accumulated per character.
//
// Returns ("", false) only when avail is too narrow for the bare ellipsis;
// the caller draws nothing in that case.
func fitText(measure func(string) float64, label string, avail float64) (string, bool) {
	if measure(label) <= avail {
		return label, true
	}
	if measure(ellipsis) > avail {
		return "", false
	}

	runes := []rune(label)
	// Smallest kept-count whose elided form overflows; everything below fits.
	n := sort.Search(len(runes), func(i int) bool {
		return measure(elideRunes(runes, i+1)) > avail
	})
	if n == 0 {
		return ellipsis, true
	}
	return elideRunes(runes, n), true
}
