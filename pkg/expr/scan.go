package expr

import "unicode"

// Named special functions, longest first so that "arcsin" wins over "sin".
var specialNames = []string{"arcsin", "arccos", "arctan", "sin", "cos", "tan", "ln", "log"}

var trigTags = map[string]rune{
	"sin":    TagSin,
	"cos":    TagCos,
	"tan":    TagTan,
	"arcsin": TagArcsin,
	"arccos": TagArccos,
	"arctan": TagArctan,
}

// marks holds the rightmost depth-zero position of each operator class,
// or -1 when the class does not occur.
type marks struct {
	add, sub, mult, div, exp int
	implied                  int
	call                     int
	special, specialParen    int
	deriv                    int
}

func newMarks() marks {
	return marks{-1, -1, -1, -1, -1, -1, -1, -1, -1, -1}
}

// scan walks rs once. Brackets must already be balanced.
func scan(rs []rune) marks {
	m := newMarks()
	depth := 0
	var prev rune
	for i := 0; i < len(rs); i++ {
		c := rs[i]
		if depth > 0 {
			switch c {
			case '(':
				depth++
			case ')':
				depth--
			}
			prev = c
			continue
		}

		if impliedMult(prev, c) {
			m.implied = i
		}
		if _, paren, ok := matchSpecial(rs, i); ok {
			// Jump into the argument so name letters never mark anything.
			m.special, m.specialParen = i, paren
			i = paren
			depth = 1
			prev = '('
			continue
		}

		switch c {
		case '+':
			m.add = i
		case '-':
			if !unaryPosition(prev) {
				m.sub = i
			}
		case '*':
			m.mult = i
		case '/':
			m.div = i
		case '^':
			m.exp = i
		case '\'':
			m.deriv = i
		case '(':
			if unicode.IsLetter(prev) {
				m.call = i
			}
			depth++
		}
		prev = c
	}
	return m
}

// matchSpecial checks for a named special function at rs[i]. It returns the
// matched name and the index of the opening bracket of its argument.
func matchSpecial(rs []rune, i int) (string, int, bool) {
	for _, name := range specialNames {
		if !hasPrefixAt(rs, i, name) {
			continue
		}
		j := i + len(name)
		if name == "log" {
			for j < len(rs) && isLogBaseRune(rs[j]) {
				j++
			}
		}
		if j < len(rs) && rs[j] == '(' {
			return name, j, true
		}
	}
	return "", -1, false
}

// SpecialNameAt reports the special function name starting at rune offset i
// of text and the offset of its argument's opening bracket. Any log base
// lies between the two. The name is empty if there is no match.
func SpecialNameAt(text []rune, i int) (string, int) {
	name, paren, _ := matchSpecial(text, i)
	return name, paren
}

func hasPrefixAt(rs []rune, i int, prefix string) bool {
	for _, p := range prefix {
		if i >= len(rs) || rs[i] != p {
			return false
		}
		i++
	}
	return true
}

func isOperator(r rune) bool {
	switch r {
	case '+', '-', '*', '/', '^', '\'':
		return true
	}
	return false
}

func isNumeric(r rune) bool {
	return (r >= '0' && r <= '9') || r == '.'
}

func isLogBaseRune(r rune) bool {
	return unicode.IsLetter(r) || isNumeric(r)
}

func isLogBaseText(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if !isLogBaseRune(r) {
			return false
		}
	}
	return true
}

// impliedMult reports whether two adjacent depth-zero runes are operands
// with no operator between them, e.g. "2x" or ")(".
func impliedMult(prev, cur rune) bool {
	if prev == 0 || isOperator(prev) || isOperator(cur) {
		return false
	}
	if prev == '(' || cur == ')' {
		return false
	}
	if isNumeric(prev) && isNumeric(cur) {
		return false
	}
	// f( is a call, not f*(...)
	return !(unicode.IsLetter(prev) && cur == '(')
}

// unaryPosition reports whether a '-' following prev is a sign rather than
// a subtraction.
func unaryPosition(prev rune) bool {
	return prev == 0 || (isOperator(prev) && prev != '\'')
}

// closingBracket returns the index of the bracket closing rs[open].
func closingBracket(rs []rune, open int) int {
	depth := 0
	for i := open; i < len(rs); i++ {
		switch rs[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// unwrap strips every layer of fully redundant wrapping brackets.
func unwrap(rs []rune) []rune {
	for len(rs) >= 2 && rs[0] == '(' && closingBracket(rs, 0) == len(rs)-1 {
		rs = rs[1 : len(rs)-1]
	}
	return rs
}

// isGroup reports whether rs is exactly one bracketed group.
func isGroup(rs []rune) bool {
	return len(rs) >= 2 && rs[0] == '(' && closingBracket(rs, 0) == len(rs)-1
}

func checkBrackets(rs []rune) error {
	var open []int
	for i, r := range rs {
		switch r {
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				return parseErr(ErrUnbalancedBrackets, rs, i)
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) > 0 {
		return parseErr(ErrUnbalancedBrackets, rs, open[len(open)-1])
	}
	return nil
}
