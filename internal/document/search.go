package document

import "unicode"

// Search looks for needle starting at offset from, first forward to the end
// of text and then, wrapping, among matches that start before from. A
// forward match always wins over a wrapped one.
func Search(text []rune, needle string, from int, matchCase bool) (Range, bool) {
	pat := []rune(needle)
	if len(pat) == 0 || len(pat) > len(text) {
		return Range{}, false
	}
	from = clampInt(from, 0, len(text))

	hay := text
	if !matchCase {
		hay = fold(text)
		pat = fold(pat)
	}

	last := len(hay) - len(pat)
	for i := from; i <= last; i++ {
		if matchAt(hay, pat, i) {
			return Range{Start: i, End: i + len(pat)}, true
		}
	}
	for i := 0; i < from && i <= last; i++ {
		if matchAt(hay, pat, i) {
			return Range{Start: i, End: i + len(pat)}, true
		}
	}
	return Range{}, false
}

// Find runs Search from the cursor.
func (d *Doc) Find(needle string, matchCase bool) (Range, bool) {
	return Search(d.text, needle, d.cursor, matchCase)
}

func matchAt(hay, pat []rune, i int) bool {
	for j, r := range pat {
		if hay[i+j] != r {
			return false
		}
	}
	return true
}

// fold lower-cases rune by rune so offsets stay aligned with the original.
func fold(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}
