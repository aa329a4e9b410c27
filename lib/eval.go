package lib

import (
	"math"
	"strconv"
)

// Evaluate tokenizes, converts and evaluates an infix arithmetic
// expression. Every failure is an *EvaluationError.
func Evaluate(expr string) (float64, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return 0, err
	}
	postfix, err := ToPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return EvaluatePostfix(postfix)
}

// EvaluatePostfix reduces a postfix token sequence to a single value.
// Division by zero is not an error: it yields ±Inf or NaN.
func EvaluatePostfix(postfix []Token) (float64, error) {
	e := evaluator{reader: newTokenBufferFrom(postfix)}
	return e.scan()
}

type evaluator struct {
	reader   tokenReader
	operands []float64
}

func (e *evaluator) scan() (float64, error) {
	for {
		tok, done := e.reader.Next()
		if done {
			break
		}

		if tok.Type == TokenTypeNumber {
			value, err := parseNumber(tok)
			if err != nil {
				return 0, err
			}
			e.operands = append(e.operands, value)
			continue
		}

		if !tok.IsOperator() {
			return 0, errorf(UnknownOperator, tok.Location, "cannot apply <%s>", tokenString(tok))
		}
		if len(e.operands) < 2 {
			return 0, errorf(MalformedExpression, tok.Location, "'%s' needs two operands", tok)
		}

		// a was pushed last, so it is the right-hand operand.
		a := e.operands[len(e.operands)-1]
		b := e.operands[len(e.operands)-2]
		e.operands = e.operands[:len(e.operands)-2]
		e.operands = append(e.operands, apply(tok.Type, b, a))
	}

	switch len(e.operands) {
	case 0:
		return 0, errorf(MalformedExpression, Location{}, "empty expression")
	case 1:
		return e.operands[0], nil
	default:
		return 0, errorf(MalformedExpression, Location{}, "%d values left without an operator", len(e.operands))
	}
}

// Only operator token types are meaningful here; anything else is NaN.
func apply(op TokenType, b, a float64) float64 {
	switch op {
	case TokenTypePlus:
		return b + a
	case TokenTypeMinus:
		return b - a
	case TokenTypeAsterisk:
		return b * a
	case TokenTypeSlash:
		return b / a
	case TokenTypeCaret:
		return math.Pow(b, a)
	default:
		return math.NaN()
	}
}

func parseNumber(tok Token) (float64, error) {
	value, err := strconv.ParseFloat(tok.Value, 64)
	if err != nil {
		return 0, &EvaluationError{
			Kind:     NumericParse,
			Location: tok.Location,
			Message:  "'" + tok.Value + "' is not a valid number",
			Err:      err,
		}
	}
	return value, nil
}

// FormatResult renders a value with the fewest digits that round-trip.
func FormatResult(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
