//go:build js && wasm

package script

import (
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/gitnlsn/ncas/expr"
	"github.com/gitnlsn/ncas/rewrite"
)

// Simplify interprets its single script argument and returns the simplified expression.
//
// output: { error: string } | { value: string }
func Simplify(_ js.Value, args []js.Value) any {
	return withScript(args, func(e expr.Expression) (string, error) {
		return rewrite.Simplify(e).String(), nil
	})
}

// Expand is Simplify with the expansion pass only
func Expand(_ js.Value, args []js.Value) any {
	return withScript(args, func(e expr.Expression) (string, error) {
		return rewrite.Expand(e).String(), nil
	})
}

// Evaluate returns the numeric value of its script argument
func Evaluate(_ js.Value, args []js.Value) any {
	return withScript(args, func(e expr.Expression) (string, error) {
		value, err := expr.Evaluate(e)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	})
}

func withScript(args []js.Value, f func(expr.Expression) (string, error)) (ret any) {
	errorObj := func(err string) any {
		return js.ValueOf(map[string]any{
			"error": err,
		})
	}
	defer func() {
		if r := recover(); r != nil {
			ret = errorObj("ncas panicked: " + fmt.Sprint(r))
		}
	}()

	if len(args) != 1 {
		return errorObj(fmt.Sprintf("expected 1 argument, got %d", len(args)))
	}
	e, err := Eval(args[0].String())
	if err != nil {
		return errorObj(err.Error())
	}
	res, err := f(e)
	if err != nil {
		return errorObj(err.Error())
	}
	return js.ValueOf(map[string]any{
		"value": res,
	})
}
