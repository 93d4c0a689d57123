// Package debug provides opt-in diagnostic logging, gated by boolean
// environment variables, sinking to a structured go.uber.org/zap logger
// rather than a raw stderr write, since the diagnostics this package emits
// (parser failures, rule mismatches) carry structured fields worth
// querying rather than one free-form blob. With no AVICENNA_DEBUG_*
// variable set, the logger is zap's no-op Nop() instance and every call
// below costs a single boolean check.
package debug

import (
	"os"
	"strconv"
	"sync"

	"go.uber.org/zap"
)

type flags struct {
	Parse        bool
	RuleDetector bool
	Truthtable   bool
}

var (
	d        flags
	logger   *zap.Logger
	initOnce sync.Once
)

func init() {
	d.Parse = boolEnv("AVICENNA_DEBUG_PARSE")
	d.RuleDetector = boolEnv("AVICENNA_DEBUG_RULE_DETECTOR")
	d.Truthtable = boolEnv("AVICENNA_DEBUG_TRUTHTABLE")
}

func boolEnv(name string) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	b, _ := strconv.ParseBool(v)
	return b
}

func log() *zap.Logger {
	initOnce.Do(func() {
		if !d.Parse && !d.RuleDetector && !d.Truthtable {
			logger = zap.NewNop()
			return
		}
		built, err := zap.NewDevelopment()
		if err != nil {
			logger = zap.NewNop()
			return
		}
		logger = built
	})
	return logger
}

// Parse reports whether AVICENNA_DEBUG_PARSE is set.
func Parse() bool { return d.Parse }

// RuleDetector reports whether AVICENNA_DEBUG_RULE_DETECTOR is set.
func RuleDetector() bool { return d.RuleDetector }

// Truthtable reports whether AVICENNA_DEBUG_TRUTHTABLE is set.
func Truthtable() bool { return d.Truthtable }

// LogParseError records a parser failure. Call only when Parse() is true.
func LogParseError(input string, err error) {
	log().Debug("parse failed", zap.String("input", input), zap.Error(err))
}

// LogRuleMismatch records a line whose user-cited rule did not match the
// detector's finding, including a formatted diff (internal/formatdiff)
// between the two rule codes. Call only when RuleDetector() is true.
func LogRuleMismatch(lineNumber int, userRule, detectedRule, diff string) {
	log().Debug("rule mismatch",
		zap.Int("line", lineNumber),
		zap.String("user_rule", userRule),
		zap.String("detected_rule", detectedRule),
		zap.String("diff", diff),
	)
}

// LogAnalysis records a truth-table analysis summary. Call only when
// Truthtable() is true.
func LogAnalysis(variableCount, lineCount int, valid bool) {
	log().Debug("analysis complete",
		zap.Int("variables", variableCount),
		zap.Int("lines", lineCount),
		zap.Bool("valid", valid),
	)
}

// Sync flushes any buffered log entries. Safe to call even when logging was
// never enabled.
func Sync() error {
	if logger == nil {
		return nil
	}
	return logger.Sync()
}
