// Package steps classifies the rows of a "Số TT"/"Nội dung công việc" work
// table and detects whether a tender's process uses 21 or 23 steps.
package steps

import "strings"

// IsSubStep reports whether a step label names a sub-step. A label made
// purely of digits is a main step; single or double letters, letters
// followed by ')' and any other non-numeric label count as sub-steps and
// are rendered in italic. Empty labels are not sub-steps.
func IsSubStep(label string) bool {
	label = strings.TrimSpace(label)
	if label == "" {
		return false
	}
	for _, r := range label {
		if r < '0' || r > '9' {
			return true
		}
	}
	return false
}
