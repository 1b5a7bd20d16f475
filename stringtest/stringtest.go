// Package stringtest provides helpers for building expected string values in
// tests.
package stringtest

import "strings"

// JoinLF joins the given lines with LF line endings, without a trailing
// newline. Use it to spell out expected multi-line output one line at a time:
//
//	want := stringtest.JoinLF(
//		"header",
//		"body",
//	) // -> "header\nbody"
func JoinLF(lines ...string) string {
	return strings.Join(lines, "\n")
}
