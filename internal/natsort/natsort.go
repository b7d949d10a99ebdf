// Package natsort compares strings in natural order: runs of digits
// compare by numeric value, so "file2" sorts before "file10". Directory
// entries are ordered with it before they reach the renderer.
package natsort

import "unicode"

// Compare returns -1, 0 or +1 ordering a relative to b in natural
// order. Letters compare case-insensitively; when two strings are
// naturally equal ("File01" vs "file1") the tie is broken by a plain
// byte comparison so ordering stays total and deterministic.
func Compare(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0

	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]

		if isDigit(ca) && isDigit(cb) {
			na, ni := digitRun(ra, i)
			nb, nj := digitRun(rb, j)
			if c := compareNumeric(na, nb); c != 0 {
				return c
			}
			i, j = ni, nj
			continue
		}

		la, lb := unicode.ToLower(ca), unicode.ToLower(cb)
		if la != lb {
			if la < lb {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case i < len(ra):
		return 1
	case j < len(rb):
		return -1
	}

	// Naturally equal; fall back to exact comparison.
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Less reports whether a orders before b.
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// digitRun returns the digit run starting at i and the index just past it.
func digitRun(rs []rune, i int) ([]rune, int) {
	start := i
	for i < len(rs) && isDigit(rs[i]) {
		i++
	}
	return rs[start:i], i
}

// compareNumeric compares two digit runs by value: strip leading
// zeros, then a longer run is larger, then compare digit-wise.
func compareNumeric(a, b []rune) int {
	a = trimZeros(a)
	b = trimZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for k := range a {
		if a[k] != b[k] {
			if a[k] < b[k] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func trimZeros(rs []rune) []rune {
	for len(rs) > 1 && rs[0] == '0' {
		rs = rs[1:]
	}
	return rs
}
