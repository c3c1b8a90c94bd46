// Package script builds expressions from Go source snippets such as
//
//	expr.Pow(expr.Add(expr.Var("a"), expr.Var("b")), expr.Int(2))
//
// by interpreting them with yaegi against the expr and rewrite packages.
package script

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/internal/log"
	"github.com/gitnlsn/ncas/ncaserr"
	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

var logger = log.DefaultLogger.With("section", "script")

const preamble = `import (
	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/rewrite"
)`

// Interpreter is safe for concurrent use, scripts are evaluated one at a time
type Interpreter struct {
	mu sync.Mutex
	i  *interp.Interpreter
}

func New() (*Interpreter, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("could not load standard library symbols: %w", err)
	}
	if err := i.Use(Symbols); err != nil {
		return nil, fmt.Errorf("could not load expression symbols: %w", err)
	}
	if _, err := i.Eval(preamble); err != nil {
		return nil, fmt.Errorf("could not import expression packages: %w", err)
	}
	return &Interpreter{i: i}, nil
}

// Eval interprets source, whose last statement must produce an expr.Expression.
// Declarations made by earlier calls stay visible to later ones.
func (in *Interpreter) Eval(source string) (res expr.Expression, err error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			err = ncaserr.New(ncaserr.NewScript{Source: source, From: fmt.Errorf("panic: %v", r)})
		}
	}()

	value, err := in.i.Eval(source)
	if err != nil {
		return nil, ncaserr.New(ncaserr.NewScript{Source: source, From: err})
	}
	res, err = asExpression(value)
	if err != nil {
		return nil, ncaserr.New(ncaserr.NewScript{Source: source, From: err})
	}
	logger.Debug("evaluated script", "source", source, "result", res.String())
	return res, nil
}

func asExpression(value reflect.Value) (expr.Expression, error) {
	if !value.IsValid() || !value.CanInterface() {
		return nil, fmt.Errorf("script produced no value")
	}
	e, ok := value.Interface().(expr.Expression)
	if !ok || e == nil {
		return nil, fmt.Errorf("script produced a %s, not an expression", value.Type())
	}
	return e, nil
}

// Eval interprets source in a fresh Interpreter
func Eval(source string) (expr.Expression, error) {
	in, err := New()
	if err != nil {
		return nil, err
	}
	return in.Eval(source)
}
