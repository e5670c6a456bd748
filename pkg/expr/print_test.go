package expr

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"2+3*4", "(2)+((3)(4))"},
		{"a-b", "(a)-(b)"},
		{"2x", "(2)(x)"},
		{"1/x", "(1)/(x)"},
		{"x^2", "((x)^(2))"},
		{"-x", "(0)-(x)"},
		{"f(x)", "(f(x))"},
		{"f'", "((f)')"},
		{"sin(x)^2", "(((sin(x)))^(2))"},
		{"arctan(x)", "(arctan(x))"},
		{"ln(x)", "(ln(x))"},
		{"log(x)", "(log(x))"},
		{"log2(x)", "(log2(x))"},
		{"logb(x)", "(logb(x))"},
		{"2.5", "2.5"},
		{"-3", "-3"},
	}
	for _, tt := range tests {
		n := MustParse(tt.text)
		if got := n.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestStringConstants(t *testing.T) {
	tests := []struct {
		c    *ConstNode
		want string
	}{
		{Int(0), "0"},
		{Const(rat(-1, 8)), "-0.125"},
		{Const(rat(3, 20)), "0.15"},
		{Const(rat(1, 3)), "(1/3)"},
		{Const(rat(-2, 6)), "(-1/3)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestStringHandBuilt(t *testing.T) {
	x := Var('x')

	composite := Equation(OpLog, add(x, Int(1)), x)
	if got, want := composite.String(), "((ln(x)))/((ln((x)+(1))))"; got != want {
		t.Errorf("composite log base = %q, want %q", got, want)
	}

	unknownTag := Equation(OpTrig, Var('q'), x)
	if got, want := unknownTag.String(), "(q(x))"; got != want {
		t.Errorf("unknown trig tag = %q, want %q", got, want)
	}

	bad := Equation(Operation(42), x, Int(1))
	if got, want := bad.String(), "(x?1)"; got != want {
		t.Errorf("unknown operation = %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	formulas := []string{
		"2+3*4",
		"a-b+c",
		"(a-b)2",
		"1/2x",
		"-x^2",
		"2^-3",
		"f(x)+g(2x)",
		"f''",
		"f'(x)",
		"sin(x)cos(x)",
		"arcsin(x/2)",
		"log2(x)+ln(x)-log(x)",
		"logb(x)",
		"logx(x)",
		"log10(x)",
		"log2.5(x)",
		"log.5(x)",
		"loge(x)",
		"3x+g(5)",
		"30(5x-20)-5",
		".5x",
		"((x))",
	}
	for _, text := range formulas {
		first := MustParse(text)
		again, err := Parse(first.String())
		if err != nil {
			t.Errorf("re-parse of %q (%q) failed: %v", text, first.String(), err)
			continue
		}
		if !again.Equal(first) {
			t.Errorf("round trip of %q: %s != %s", text, again, first)
		}
	}
}

func TestLaTeX(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"1/x", "\\frac{1}{x}"},
		{"x^2", "{x}^{2}"},
		{"a+b", "{a} + {b}"},
		{"2x", "{2} \\cdot {x}"},
		{"sin(x)", "\\sin{(x)}"},
		{"ln(x)", "\\ln{(x)}"},
		{"log2(x)", "\\log_{2}{(x)}"},
		{"f'", "{f}'"},
		{"f(x)", "f(x)"},
	}
	for _, tt := range tests {
		n := MustParse(tt.text)
		if got := n.LaTeX(); got != tt.want {
			t.Errorf("Parse(%q).LaTeX() = %q, want %q", tt.text, got, tt.want)
		}
	}

	if got := Const(rat(-1, 2)).LaTeX(); got != "-\\frac{1}{2}" {
		t.Errorf("Const(-1/2).LaTeX() = %q", got)
	}
}
