// Package rulename normalises a user-written rule name (as cited in a
// Lemmon proof line's trailing details) to one of the short rule codes the
// detector package produces.
package rulename

import "strings"

// aliases maps a normalised key (lower-cased, with spaces/hyphens/
// underscores stripped) to its short rule code.
var aliases = map[string]string{
	// Replacement rules
	"dist": "Dist", "distribution": "Dist", "distributive": "Dist",
	"comm": "Comm", "commutation": "Comm", "commutative": "Comm",
	"assoc": "Assoc", "association": "Assoc", "associative": "Assoc", "associativity": "Assoc",
	"exp": "Exp", "exportation": "Exp",
	"dn": "DN", "doublenegation": "DN",
	"dem": "DeM", "demorgan": "DeM", "demorgans": "DeM",
	"contra": "Contra", "contraposition": "Contra",
	"simp": "Simp", "mi": "Simp", "matimp": "Simp", "materialimplication": "Simp",
	"be": "BE", "bce": "BE", "bicondexchange": "BE", "biconditionalexchange": "BE",
	"t": "T", "taut": "T", "tautology": "T",

	// Inference rules
	"mp": "MP", "modusponens": "MP",
	"mt": "MT", "modustollens": "MT",
	"mpt": "MPT", "modusponendotollens": "MPT",
	"hs": "HS", "hypotheticalsyllogism": "HS",
	"ds": "DS", "disjunctivesyllogism": "DS",
	"cd": "CD", "constructivedilemma": "CD",
	"dd": "DD", "destructivedilemma": "DD",
	"∧i": "∧I", "ci": "∧I", "andi": "∧I", "conjunctionintroduction": "∧I",
	"∧e": "∧E", "ce": "∧E", "ande": "∧E", "conjunctionelimination": "∧E",
	"∨i": "∨I", "oi": "∨I", "ori": "∨I", "disjunctionintroduction": "∨I", "addition": "∨I",
	"∨e": "∨E", "oe": "∨E", "ore": "∨E", "disjunctionelimination": "∨E",
	"abs": "Abs", "absorption": "Abs",
	"cpa": "CPA", "conditionalproof": "CPA", "conditionalproofassumption": "CPA",
	"raa": "RAA", "reductio": "RAA", "reductioadabsurdum": "RAA",
	"¬i": "¬I", "ni": "¬I", "negi": "¬I", "negationintroduction": "¬I",

	// Self-justifying lines, included so checkUserRuleIsValid-style callers
	// can normalise the whole details field uniformly.
	"premise": "Premise",
	"assume":  "Assume", "assumption": "Assume",
}

// Normalize lowercases raw and strips spaces, hyphens, and underscores, then
// looks the result up in the alias table. It returns the short rule code
// and true on a match, or ("", false) for unrecognised text.
func Normalize(raw string) (string, bool) {
	key := normalizeKey(raw)
	if key == "" {
		return "", false
	}
	code, ok := aliases[key]
	return code, ok
}

func normalizeKey(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		switch r {
		case ' ', '\t', '\n', '\r', '-', '_':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
