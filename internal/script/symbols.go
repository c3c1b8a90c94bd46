package script

import (
	"reflect"

	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/rewrite"
	"github.com/traefik/yaegi/interp"
)

// Symbols exposes the expr and rewrite packages to interpreted scripts,
// keyed the way yaegi extract would key them
var Symbols = interp.Exports{}

func init() {
	Symbols["github.com/gitnlsn/ncas/expr/expr"] = map[string]reflect.Value{
		// constructors
		"Int":               reflect.ValueOf(expr.Int),
		"BigInt":            reflect.ValueOf(expr.BigInt),
		"Float":             reflect.ValueOf(expr.Float),
		"Var":               reflect.ValueOf(expr.Var),
		"NewAddition":       reflect.ValueOf(expr.NewAddition),
		"NewMultiplication": reflect.ValueOf(expr.NewMultiplication),
		"NewPower":          reflect.ValueOf(expr.NewPower),
		"NewLogarithm":      reflect.ValueOf(expr.NewLogarithm),
		"NewSubtraction":    reflect.ValueOf(expr.NewSubtraction),
		"NewDivision":       reflect.ValueOf(expr.NewDivision),

		// operators
		"Add": reflect.ValueOf(expr.Add),
		"Sub": reflect.ValueOf(expr.Sub),
		"Mul": reflect.ValueOf(expr.Mul),
		"Div": reflect.ValueOf(expr.Div),
		"Pow": reflect.ValueOf(expr.Pow),
		"Log": reflect.ValueOf(expr.Log),
		"Neg": reflect.ValueOf(expr.Neg),

		"Equal":     reflect.ValueOf(expr.Equal),
		"Compare":   reflect.ValueOf(expr.Compare),
		"Evaluate":  reflect.ValueOf(expr.Evaluate),
		"Variables": reflect.ValueOf(expr.Variables),

		// types
		"Expression":     reflect.ValueOf((*expr.Expression)(nil)),
		"Integer":        reflect.ValueOf((*expr.Integer)(nil)),
		"Real":           reflect.ValueOf((*expr.Real)(nil)),
		"Variable":       reflect.ValueOf((*expr.Variable)(nil)),
		"Addition":       reflect.ValueOf((*expr.Addition)(nil)),
		"Multiplication": reflect.ValueOf((*expr.Multiplication)(nil)),
		"Power":          reflect.ValueOf((*expr.Power)(nil)),
		"Logarithm":      reflect.ValueOf((*expr.Logarithm)(nil)),
		"Bindings":       reflect.ValueOf((*expr.Bindings)(nil)),
	}

	Symbols["github.com/gitnlsn/ncas/rewrite/rewrite"] = map[string]reflect.Value{
		"Expand":   reflect.ValueOf(rewrite.Expand),
		"Simplify": reflect.ValueOf(rewrite.Simplify),
		"Compare":  reflect.ValueOf(rewrite.Compare),
	}
}
