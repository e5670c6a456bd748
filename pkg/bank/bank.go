// Package bank stores the named functions and variables that formulas refer
// to. Names are single characters and are resolved late: replacing an entry
// changes every later lookup without reparsing the formulas that use it.
package bank

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/exp/slices"

	"github.com/wildfunctions/apcalc/pkg/expr"
)

// Letter is the kind of a bank entry.
type Letter int

const (
	Function Letter = iota
	Variable
)

func (l Letter) String() string {
	if l == Function {
		return "function"
	}
	return "variable"
}

// Entry is a bank binding. A nil Expr means the name is known but undefined.
type Entry struct {
	Letter Letter
	Expr   expr.Node
}

// Defined reports whether the entry holds an expression.
func (e Entry) Defined() bool { return e.Expr != nil }

// Bank maps names to entries. It is safe for concurrent use; entries are
// replaced but never removed.
type Bank struct {
	mu      sync.RWMutex
	entries map[rune]Entry
}

// New creates a bank from a top-level definition. Every letter in text is
// entered as an undefined variable, or an undefined function when it is
// directly followed by "(", unless it is already present, part of a named
// special function, the free variable or name itself. name is then bound
// as a function to the parsed text.
func New(name rune, text string) (*Bank, error) {
	n, err := expr.Parse(text)
	if err != nil {
		return nil, err
	}

	b := &Bank{entries: make(map[rune]Entry)}
	seed := func(r rune, letter Letter) {
		if !unicode.IsLetter(r) || r == name || r == expr.FreeVariable {
			return
		}
		if _, ok := b.entries[r]; !ok {
			b.entries[r] = Entry{Letter: letter}
		}
	}

	rs := []rune(strings.Join(strings.Fields(text), ""))
	for i := 0; i < len(rs); i++ {
		if special, paren := expr.SpecialNameAt(rs, i); special != "" {
			// log bases are plain references
			for _, r := range rs[i+len(special) : paren] {
				seed(r, Variable)
			}
			i = paren
			continue
		}
		letter := Variable
		if i+1 < len(rs) && rs[i+1] == '(' {
			letter = Function
		}
		seed(rs[i], letter)
	}
	b.entries[name] = Entry{Letter: Function, Expr: n}
	return b, nil
}

// DefineFunction binds name to the parsed text as a function, replacing any
// existing entry. On a parse error the bank is unchanged.
func (b *Bank) DefineFunction(name rune, text string) error {
	return b.define(name, Function, text)
}

// DefineVariable binds name to the parsed text as a variable.
func (b *Bank) DefineVariable(name rune, text string) error {
	return b.define(name, Variable, text)
}

func (b *Bank) define(name rune, letter Letter, text string) error {
	n, err := expr.Parse(text)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[name] = Entry{Letter: letter, Expr: n}
	return nil
}

// Lookup returns the expression bound to name, whichever its Letter.
func (b *Bank) Lookup(name rune) (expr.Node, error) {
	e, ok := b.Entry(name)
	if !ok {
		return nil, &LookupError{Kind: ErrUnboundName, Name: name}
	}
	if !e.Defined() {
		return nil, &LookupError{Kind: ErrUndefinedIdentifier, Name: name}
	}
	return e.Expr, nil
}

// Entry returns the raw entry for name.
func (b *Bank) Entry(name rune) (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.entries[name]
	return e, ok
}

// Names returns every entered name in ascending order.
func (b *Bank) Names() []rune {
	b.mu.RLock()
	names := make([]rune, 0, len(b.entries))
	for r := range b.entries {
		names = append(names, r)
	}
	b.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Render returns the canonical text of the expression bound to name.
func (b *Bank) Render(name rune) (string, error) {
	n, err := b.Lookup(name)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}
