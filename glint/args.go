package glint

import "fmt"

type argsCountKind int

const (
	argsExact argsCountKind = iota
	argsMin
)

// ArgsCount declares a command's requirement on the number of leftover
// positional arguments. Build one with ExactArgs or MinArgs.
type ArgsCount struct {
	kind  argsCountKind
	count int
}

// ExactArgs requires exactly n positional arguments
func ExactArgs(n int) ArgsCount {
	return ArgsCount{kind: argsExact, count: n}
}

// MinArgs requires at least n positional arguments
func MinArgs(n int) ArgsCount {
	return ArgsCount{kind: argsMin, count: n}
}

// satisfied reports whether n positional arguments meet the rule
func (c ArgsCount) satisfied(n int) bool {
	if c.kind == argsMin {
		return n >= c.count
	}
	return n == c.count
}

// expectation describes the rule for arity mismatch diagnostics
func (c ArgsCount) expectation() string {
	if c.kind == argsMin {
		return fmt.Sprintf("at least %d", c.count)
	}
	return fmt.Sprintf("exactly %d", c.count)
}

// open reports whether the rule accepts an unbounded number of arguments
func (c ArgsCount) open() bool {
	return c.kind == argsMin
}
