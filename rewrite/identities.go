package rewrite

import (
	"github.com/gitnlsn/ncas/expr"
)

// InversePowerLog cancels a power against a logarithm of the same base:
// b^log(x, b) and log(b^x, b) are both x
var InversePowerLog = NewRule("inverse-power-log", inversePowerLog)

func inversePowerLog(e expr.Expression) []expr.Expression {
	switch v := e.(type) {
	case expr.Power:
		if logarithm, ok := v.Exponent().(expr.Logarithm); ok && expr.Equal(logarithm.Base(), v.Base()) {
			return single(logarithm.Argument())
		}
	case expr.Logarithm:
		if power, ok := v.Argument().(expr.Power); ok && expr.Equal(power.Base(), v.Base()) {
			return single(power.Exponent())
		}
	}
	return nil
}
