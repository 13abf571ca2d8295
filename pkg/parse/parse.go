// Package parse turns delimiter-separated free-text form input into clean
// string slices. Empty and whitespace-only segments are dropped, remaining
// segments are trimmed, and input order is preserved.
package parse

import "strings"

// List splits comma-separated input (skills, tags).
func List(s string) []string {
	return split(s, ",")
}

// Lines splits newline-separated input (requirements, benefits).
func Lines(s string) []string {
	return split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}

func split(s, sep string) []string {
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
