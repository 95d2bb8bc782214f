package tei

import "strings"

// CollapseSpace reduces every run of Unicode whitespace to a single ASCII
// space and trims the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
