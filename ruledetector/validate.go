package ruledetector

import "github.com/jafaripur/avicenna-logic-system/proof"

// CheckUserRule reports whether cur's user-cited rule is a correct
// justification for the line: a Premise or Assume line is always
// auto-valid (self-justifying), and any other line is valid iff its
// normalised user rule equals the detected rule.
func CheckUserRule(cur proof.Line) bool {
	if cur.IsSelfJustifying() {
		return true
	}
	return cur.UserRule != "" && cur.UserRule == cur.DetectedRule
}
