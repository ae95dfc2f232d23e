// Package options validates mutually exclusive inputs shared by the oasdoc
// front ends.
package options

import "fmt"

// count returns how many of set are true.
func count(set []bool) int {
	n := 0
	for _, s := range set {
		if s {
			n++
		}
	}
	return n
}

// ExactlyOne ensures exactly one input source is specified.
// noneMsg is the error message when no source is specified.
// manyMsg is the error message when multiple sources are specified.
func ExactlyOne(noneMsg, manyMsg string, set ...bool) error {
	switch count(set) {
	case 0:
		return fmt.Errorf("%s", noneMsg)
	case 1:
		return nil
	default:
		return fmt.Errorf("%s", manyMsg)
	}
}

// AtMostOne ensures no more than one input source is specified.
func AtMostOne(manyMsg string, set ...bool) error {
	if count(set) > 1 {
		return fmt.Errorf("%s", manyMsg)
	}
	return nil
}
