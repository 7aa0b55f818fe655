package pegrat

import (
	"regexp"
	"strconv"
	"strings"
)

// FixedWidth is a terminal rule matching a literal string
// code-unit-for-code-unit at the current offset.
type FixedWidth struct {
	ruleBase
	Value string
}

// Literal builds a FixedWidth rule.
func Literal(s string) *FixedWidth {
	return &FixedWidth{ruleBase: newRuleBase(), Value: s}
}

func (r *FixedWidth) evaluate(in *Input, offset int) (*Match, bool) {
	n := len(r.Value)
	if offset+n > in.Len() {
		return nil, false
	}
	if in.Slice(offset, n) != r.Value {
		return nil, false
	}
	return newMatch(r, in, offset, n, nil, nil), true
}

func (r *FixedWidth) ToPeg() string    { return quotePeg(r.Value) }
func (r *FixedWidth) subrules() []Rule { return nil }

func quotePeg(s string) string {
	return strconv.Quote(s)
}

// Expression is a terminal rule matching a regular expression
// anchored at the current offset. Captures from the regex are
// exposed on the resulting match as an ordered list of substrings.
type Expression struct {
	ruleBase
	Pattern *regexp.Regexp
}

// Regex builds an Expression rule from a pattern string, wrapping a
// compile failure as a host error naming the pattern.
func Regex(pattern string) (*Expression, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, wrapHostError(err, pattern)
	}
	return &Expression{ruleBase: newRuleBase(), Pattern: re}, nil
}

// MustRegex is Regex but panics on a compile failure, for use in
// grammar construction code that treats a bad pattern as a
// programmer error rather than a recoverable one.
func MustRegex(pattern string) *Expression {
	r, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Expression) evaluate(in *Input, offset int) (*Match, bool) {
	loc := r.Pattern.FindStringSubmatchIndex(in.Remainder(offset))
	// FindStringSubmatchIndex searches the whole remainder; reject
	// any match that doesn't begin at position 0 of it, since PEG
	// terminals only ever match anchored at the cursor.
	if loc == nil || loc[0] != 0 {
		return nil, false
	}
	length := loc[1]
	captures := submatchesToCaptures(in.Remainder(offset), loc)
	return newMatch(r, in, offset, length, nil, captures), true
}

func submatchesToCaptures(s string, loc []int) []string {
	if len(loc) <= 2 {
		return nil
	}
	captures := make([]string, 0, len(loc)/2-1)
	for i := 2; i < len(loc); i += 2 {
		if loc[i] < 0 {
			captures = append(captures, "")
			continue
		}
		captures = append(captures, s[loc[i]:loc[i+1]])
	}
	return captures
}

func (r *Expression) ToPeg() string    { return "/" + strings.ReplaceAll(r.Pattern.String(), "/", `\/`) + "/" }
func (r *Expression) subrules() []Rule { return nil }
