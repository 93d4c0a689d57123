package main

import (
	"github.com/fatih/color"

	"github.com/jafaripur/avicenna-logic-system/truthtable"
)

// colors is a classification/verdict-to-sprint-function lookup table, but
// returns the plain label when disabled rather than going through a
// SprintfFunc that happens to be a no-op, so the plain and colorized paths
// stay visibly distinct.
type colors struct {
	enabled bool
	byClass map[truthtable.Classification]func(string, ...any) string
	valid   func(string, ...any) string
	invalid func(string, ...any) string
	errFn   func(string, ...any) string
}

func newColors(enabled bool) *colors {
	c := &colors{enabled: enabled}
	if !enabled {
		return c
	}
	c.byClass = map[truthtable.Classification]func(string, ...any) string{
		truthtable.Tautology:     sprintFunc(color.FgGreen, color.Bold),
		truthtable.Contradiction: sprintFunc(color.FgRed, color.Bold),
		truthtable.Contingent:    sprintFunc(color.FgYellow),
	}
	c.valid = sprintFunc(color.FgGreen, color.Bold)
	c.invalid = sprintFunc(color.FgRed, color.Bold)
	c.errFn = sprintFunc(color.FgRed)
	return c
}

// sprintFunc forces color on regardless of color.NoColor, which fatih/color
// otherwise derives from whether stdout is a terminal: the caller already
// made that decision (newColors's enabled argument), so each *Color
// instance must not second-guess it.
func sprintFunc(attrs ...color.Attribute) func(string, ...any) string {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintfFunc()
}

func (c *colors) classification(k truthtable.Classification) string {
	if !c.enabled {
		return k.String()
	}
	if f, ok := c.byClass[k]; ok {
		return f(k.String())
	}
	return k.String()
}

func (c *colors) verdict(valid bool) string {
	if !valid {
		if c.enabled {
			return c.invalid("invalid")
		}
		return "invalid"
	}
	if c.enabled {
		return c.valid("valid")
	}
	return "valid"
}

func (c *colors) err(msg string) string {
	if c.enabled {
		return c.errFn(msg)
	}
	return msg
}
