package rewrite

import (
	"github.com/gitnlsn/ncas/expr"
)

// Config tunes a Simplifier
type Config struct {
	// Policy chooses among competing alternatives, MaxOrder when nil
	Policy Policy
	// MaxPasses bounds the top-level loop, 0 means until nothing changes
	MaxPasses int
	// Rules lists the node-local rules per identity, applied in order.
	// DefaultRules when nil.
	Rules map[expr.Identity][]Rule
}

func DefaultRules() map[expr.Identity][]Rule {
	return map[expr.Identity][]Rule{
		expr.IdentityAddition:       {AdditiveCommonAddend, RationalsAddition},
		expr.IdentityMultiplication: {MultiplicativeCommonFactor, RationalsMultiplication},
		expr.IdentityPower:          {InversePowerLog},
		expr.IdentityLogarithm:      {InversePowerLog},
	}
}

func DefaultConfig() Config {
	return Config{
		Policy: MaxOrder{},
		Rules:  DefaultRules(),
	}
}

type Simplifier struct {
	config Config
}

func NewSimplifier(config Config) *Simplifier {
	if config.Policy == nil {
		config.Policy = MaxOrder{}
	}
	if config.Rules == nil {
		config.Rules = DefaultRules()
	}
	return &Simplifier{config: config}
}

var defaultSimplifier = NewSimplifier(DefaultConfig())

// Simplify runs the default Simplifier on e
func Simplify(e expr.Expression) expr.Expression {
	return defaultSimplifier.Simplify(e)
}

// Simplify repeats simplification passes over e until one leaves it
// structurally unchanged or MaxPasses is reached.
func (s *Simplifier) Simplify(e expr.Expression) expr.Expression {
	current := e
	for pass := 1; ; pass++ {
		next := s.simplifyNode(current)
		if expr.Equal(next, current) {
			logger.Debug("simplified", "expr", e, "result", next, "passes", pass)
			return next
		}
		if s.config.MaxPasses > 0 && pass >= s.config.MaxPasses {
			logger.Info("stopped before reaching a fixed point", "expr", e, "result", next, "passes", pass)
			return next
		}
		current = next
	}
}

func (s *Simplifier) simplifyNode(e expr.Expression) expr.Expression {
	if expr.IsLeaf(e) {
		return e
	}
	e = Expand(e)
	if expr.IsLeaf(e) {
		return e
	}
	e = rebuild(e, s.simplifyNode)
	for _, rule := range s.config.Rules[e.Identity()] {
		alternatives := distinctAlternatives(rule, e)
		if len(alternatives) == 0 {
			continue
		}
		picked := s.config.Policy.Pick(alternatives)
		logger.Debug("rule applied", "rule", rule.Name(), "from", e, "to", picked, "alternatives", len(alternatives))
		e = picked
	}
	return e
}
