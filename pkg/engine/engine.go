package engine

import (
	"fmt"
	"math/big"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/wildfunctions/apcalc/pkg/bank"
	"github.com/wildfunctions/apcalc/pkg/deriv"
	"github.com/wildfunctions/apcalc/pkg/eval"
	"github.com/wildfunctions/apcalc/pkg/expr"
)

// Engine owns a Bank and evaluates, renders and differentiates its entries.
type Engine struct {
	cfg  Config
	bank *bank.Bank
	eval *eval.Evaluator
	log  *log.Entry
}

// New creates an engine whose bank is seeded from the definition of name.
func New(cfg Config, name rune, text string) (*Engine, error) {
	level := log.InfoLevel
	if cfg.LogLevel != "" {
		var err error
		if level, err = log.ParseLevel(cfg.LogLevel); err != nil {
			return nil, fmt.Errorf("engine config: %w", err)
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New()
		logger.SetLevel(level)
	}

	b, err := bank.New(name, text)
	if err != nil {
		return nil, fmt.Errorf("define %q: %w", name, err)
	}

	e := &Engine{
		cfg:  cfg,
		bank: b,
		eval: eval.New(b,
			eval.WithMaxDepth(cfg.MaxEvalDepth),
			eval.WithResolver(deriv.Resolver{MaxDepth: cfg.MaxResolveDepth}),
			eval.WithLogger(logger.WithField("component", "eval")),
		),
		log: logger.WithField("component", "engine"),
	}
	e.log.WithField("names", string(b.Names())).Infof("created bank from %c", name)
	return e, nil
}

// Bank returns the engine's bank.
func (e *Engine) Bank() *bank.Bank { return e.bank }

// DefineFunction binds name to text as a function.
func (e *Engine) DefineFunction(name rune, text string) error {
	if err := e.bank.DefineFunction(name, text); err != nil {
		return fmt.Errorf("define %q: %w", name, err)
	}
	e.log.Debugf("defined function %c = %s", name, text)
	return nil
}

// DefineVariable binds name to text as a variable.
func (e *Engine) DefineVariable(name rune, text string) error {
	if err := e.bank.DefineVariable(name, text); err != nil {
		return fmt.Errorf("define %q: %w", name, err)
	}
	e.log.Debugf("defined variable %c = %s", name, text)
	return nil
}

// Evaluate computes the entry name at x.
func (e *Engine) Evaluate(name rune, x *big.Rat) (*big.Rat, error) {
	v, err := e.eval.Evaluate(expr.Var(name), x)
	if err != nil {
		return nil, fmt.Errorf("evaluate %c at %s: %w", name, ratString(x), err)
	}
	return v, nil
}

// Render returns the canonical text of the entry name.
func (e *Engine) Render(name rune) (string, error) {
	return e.bank.Render(name)
}

// Derivative returns the unsimplified derivative of the entry name.
func (e *Engine) Derivative(name rune) (expr.Node, error) {
	n, err := e.bank.Lookup(name)
	if err != nil {
		return nil, err
	}
	d, err := deriv.Differentiate(n)
	if err != nil {
		return nil, fmt.Errorf("differentiate %c: %w", name, err)
	}
	return d, nil
}

// Tabulate evaluates the entry name at every point in parallel. Failures are
// recorded per sample. Each sample looks the entry up afresh, so a
// concurrent redefinition affects only samples evaluated after it.
func (e *Engine) Tabulate(name rune, points []*big.Rat) Table {
	t := Table{
		Name:    string(name),
		Samples: make([]Sample, len(points)),
	}
	if n, err := e.bank.Lookup(name); err == nil {
		t.Formula = n.String()
		t.LaTeX = n.LaTeX()
	}

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	type job struct {
		idx int
		x   *big.Rat
	}

	jobs := make(chan job, len(points))
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				v, err := e.Evaluate(name, j.x)
				t.Samples[j.idx] = Sample{X: copyRat(j.x), Value: v, Err: err}
			}
		}()
	}

	for i, x := range points {
		jobs <- job{idx: i, x: x}
	}
	close(jobs)
	wg.Wait()

	failed := 0
	for _, s := range t.Samples {
		if s.Err != nil {
			failed++
		}
	}
	e.log.Debugf("tabulated %c at %d points, %d failed", name, len(points), failed)
	return t
}

func copyRat(r *big.Rat) *big.Rat {
	if r == nil {
		return nil
	}
	return new(big.Rat).Set(r)
}

func ratString(r *big.Rat) string {
	if r == nil {
		return "<nil>"
	}
	return r.RatString()
}
