package proof

import (
	"fmt"

	"go.uber.org/multierr"
)

// ValidateDeduction checks every non-self-justifying line's user-cited rule
// against its detected rule and collects every mismatch, rather than
// stopping at the first one — useful for a linting-style report over a
// whole deduction. checkRule is ruledetector.CheckUserRule; it is injected
// here rather than imported directly to avoid a proof→ruledetector import
// cycle (ruledetector already imports proof).
func ValidateDeduction(lines []Line, checkRule func(Line) bool) error {
	var errs error
	for _, l := range lines {
		if l.IsSelfJustifying() {
			continue
		}
		if !checkRule(l) {
			errs = multierr.Append(errs, fmt.Errorf(
				"line %d: cited rule %q does not match detected rule %q", l.Number, l.UserRule, l.DetectedRule))
		}
	}
	return errs
}
