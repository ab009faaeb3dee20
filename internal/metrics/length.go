package metrics

import "github.com/rivo/uniseg"

// Length returns the number of user-perceived text elements: extended
// grapheme clusters per UAX #29. A base letter with combining marks or an
// emoji built from several code points each count once, unlike Characters
// (code points) or len (bytes).
//
// Input is expected in Normalization Form C; unnormalized input still
// returns a well-defined cluster count, it just may differ from the NFC
// count.
func Length(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
