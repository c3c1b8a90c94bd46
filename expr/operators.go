package expr

// NewSubtraction is a + (-1 * b); subtraction is not a stored node kind
func NewSubtraction(a, b Expression) Expression {
	return NewAddition(a, NewMultiplication(Int(-1), b))
}

// NewDivision is a * b^-1; division is not a stored node kind
func NewDivision(a, b Expression) Expression {
	return NewMultiplication(a, NewPower(b, Int(-1)))
}

func Add(a, b Expression) Expression { return NewAddition(a, b) }

func Sub(a, b Expression) Expression { return NewSubtraction(a, b) }

func Mul(a, b Expression) Expression { return NewMultiplication(a, b) }

func Div(a, b Expression) Expression { return NewDivision(a, b) }

func Pow(base, exponent Expression) Expression { return NewPower(base, exponent) }

func Log(argument, base Expression) Expression { return NewLogarithm(argument, base) }

// Neg is -1 * a
func Neg(a Expression) Expression {
	return NewMultiplication(Int(-1), a)
}
