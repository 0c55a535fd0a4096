package util

import "strings"

// CollapseWhitespace trims and squashes runs of whitespace to single spaces.
func CollapseWhitespace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
