package expr

import (
	"math/big"
	"unicode"
)

// MaxParseDepth bounds the parser's recursion.
const MaxParseDepth = 512

// Parse converts a formula into a tree. The formula is split at the
// rightmost depth-zero operator of the loosest class present, checking
// classes in the order + - * / ^, implied multiplication, function call,
// named special function and derivative marker.
func Parse(text string) (Node, error) {
	rs := make([]rune, 0, len(text))
	for _, r := range text {
		if !unicode.IsSpace(r) {
			rs = append(rs, r)
		}
	}
	if len(rs) == 0 {
		return nil, &ParseError{Kind: ErrEmptyInput, Text: text, Pos: -1}
	}
	if err := checkBrackets(rs); err != nil {
		return nil, err
	}
	return parse(rs, 0)
}

// MustParse is like Parse but panics on error. It is meant for formulas
// known to be valid, such as test fixtures.
func MustParse(text string) Node {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

func parse(rs []rune, depth int) (Node, error) {
	if depth > MaxParseDepth {
		return nil, parseErr(ErrTooDeep, rs, -1)
	}
	rs = unwrap(rs)
	if len(rs) == 0 {
		return nil, parseErr(ErrEmptyOperand, rs, -1)
	}

	m := scan(rs)
	splits := []struct {
		pos int
		op  Operation
	}{
		{m.add, OpAdd},
		{m.sub, OpSub},
		{m.mult, OpMult},
		{m.div, OpDiv},
		{m.exp, OpExp},
	}
	for _, s := range splits {
		if s.pos >= 0 {
			return binary(rs, s.op, rs[:s.pos], rs[s.pos+1:], s.pos, depth)
		}
	}
	if m.implied >= 0 {
		return binary(rs, OpMult, rs[:m.implied], rs[m.implied:], m.implied, depth)
	}

	if isRationalLiteral(rs) {
		return parseRational(rs)
	}
	if rs[0] == '-' {
		if len(rs) == 1 {
			return nil, parseErr(ErrEmptyOperand, rs, 0)
		}
		operand, err := parse(rs[1:], depth+1)
		if err != nil {
			return nil, err
		}
		return Equation(OpSub, Int(0), operand), nil
	}

	switch {
	case m.call >= 0:
		return parseCall(rs, m.call, depth)
	case m.special >= 0:
		return parseSpecial(rs, m.special, depth)
	case m.deriv >= 0:
		return parseDeriv(rs, m.deriv, depth)
	}
	return parseLeaf(rs)
}

func binary(rs []rune, op Operation, left, right []rune, pos, depth int) (Node, error) {
	if len(left) == 0 || len(right) == 0 {
		return nil, parseErr(ErrEmptyOperand, rs, pos)
	}
	e1, err := parse(left, depth+1)
	if err != nil {
		return nil, err
	}
	e2, err := parse(right, depth+1)
	if err != nil {
		return nil, err
	}
	return Equation(op, e1, e2), nil
}

func parseCall(rs []rune, paren, depth int) (Node, error) {
	callee, err := parse(rs[:paren], depth+1)
	if err != nil {
		return nil, err
	}
	if _, ok := callee.(*VarNode); !ok {
		return nil, parseErr(ErrUnexpectedText, rs, 0)
	}
	arg, err := parse(rs[paren:], depth+1)
	if err != nil {
		return nil, err
	}
	return Equation(OpFunc, callee, arg), nil
}

func parseSpecial(rs []rune, start, depth int) (Node, error) {
	if start != 0 {
		return nil, parseErr(ErrUnexpectedText, rs, 0)
	}
	name, paren, _ := matchSpecial(rs, start)
	arg, err := parse(rs[paren:], depth+1)
	if err != nil {
		return nil, err
	}
	if tag, ok := trigTags[name]; ok {
		return Equation(OpTrig, Var(tag), arg), nil
	}

	var base Node
	switch {
	case name == "ln":
		base = Var(NaturalBase)
	case paren == start+len(name):
		base = Int(10)
	default:
		// The base is a single number or letter; anything longer could not
		// be printed back after "log".
		text := rs[start+len(name) : paren]
		if !isRationalLiteral(text) && !(len(text) == 1 && unicode.IsLetter(text[0])) {
			return nil, parseErr(ErrUnexpectedText, rs, start+len(name))
		}
		base, err = parse(text, depth+1)
		if err != nil {
			return nil, err
		}
	}
	return Equation(OpLog, base, arg), nil
}

func parseDeriv(rs []rune, mark, depth int) (Node, error) {
	if mark == 0 {
		return nil, parseErr(ErrEmptyOperand, rs, mark)
	}
	// f'(x): the bracketed argument after the marker is dropped; the
	// derivative is taken at the ambient point, as for calls.
	if rest := rs[mark+1:]; len(rest) > 0 && !isGroup(rest) {
		return nil, parseErr(ErrUnexpectedText, rs, mark+1)
	}
	inner, err := parse(rs[:mark], depth+1)
	if err != nil {
		return nil, err
	}
	return Deriv(inner), nil
}

func parseLeaf(rs []rune) (Node, error) {
	if len(rs) > 1 {
		return nil, parseErr(ErrMultiCharacterIdentifier, rs, 1)
	}
	if !unicode.IsLetter(rs[0]) {
		return nil, parseErr(ErrInvalidCharacter, rs, 0)
	}
	return Var(rs[0]), nil
}

// isRationalLiteral accepts an optional sign followed by digits with at most
// one decimal point, e.g. "12", "-3", "2.5" or ".5".
func isRationalLiteral(rs []rune) bool {
	i := 0
	if len(rs) > 0 && rs[0] == '-' {
		i++
	}
	digits, afterDot, dot := 0, 0, false
	for ; i < len(rs); i++ {
		switch r := rs[i]; {
		case r >= '0' && r <= '9':
			digits++
			if dot {
				afterDot++
			}
		case r == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0 && (!dot || afterDot > 0)
}

func parseRational(rs []rune) (Node, error) {
	text := string(rs)
	switch {
	case text[0] == '.':
		text = "0" + text
	case len(text) > 1 && text[0] == '-' && text[1] == '.':
		text = "-0" + text[1:]
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, parseErr(ErrInvalidCharacter, rs, -1)
	}
	return &ConstNode{val: r}, nil
}
