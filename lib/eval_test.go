package lib

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func requireEval(t *testing.T, expr string, expected float64) {
	actual, err := Evaluate(expr)
	require.NoError(t, err, expr)
	require.InDelta(t, expected, actual, 1e-9, expr)
}

func TestEvaluatePrecedence(t *testing.T) {
	requireEval(t, "3+4*2", 11)
}

func TestEvaluateParentheses(t *testing.T) {
	requireEval(t, "(3+4)*2", 14)
}

func TestEvaluateMixed(t *testing.T) {
	requireEval(t, "3/3*(3-1)+2.5+343.23123", 347.73123)
}

func TestEvaluatePowerLeftAssociative(t *testing.T) {
	requireEval(t, "2^3^2", 64)
}

func TestEvaluateSubtractionLeftToRight(t *testing.T) {
	requireEval(t, "10-2-3", 5)
	requireEval(t, "100/10/5", 2)
}

func TestEvaluateOperandOrder(t *testing.T) {
	requireEval(t, "7-2", 5)
	requireEval(t, "8/2", 4)
	requireEval(t, "2^10", 1024)
}

func TestEvaluateSingleNumber(t *testing.T) {
	requireEval(t, "0", 0)
	requireEval(t, "12.5", 12.5)
	requireEval(t, ".5", 0.5)
	requireEval(t, "((7))", 7)
}

func TestEvaluateWithWhitespace(t *testing.T) {
	requireEval(t, " ( 3 + 4 ) * 2 ", 14)
}

func TestEvaluateIdempotent(t *testing.T) {
	first, err := Evaluate("3/3*(3-1)+2.5+343.23123")
	require.NoError(t, err)
	second, err := Evaluate("3/3*(3-1)+2.5+343.23123")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEvaluateDivisionByZero(t *testing.T) {
	value, err := Evaluate("1/0")
	require.NoError(t, err)
	require.True(t, math.IsInf(value, 1))

	value, err = Evaluate("0-1/0")
	require.NoError(t, err)
	require.True(t, math.IsInf(value, -1))

	value, err = Evaluate("0/0")
	require.NoError(t, err)
	require.True(t, math.IsNaN(value))
}

func TestEvaluateEmpty(t *testing.T) {
	_, err := Evaluate("")
	require.ErrorIs(t, err, ErrMalformedExpression)
	require.Equal(t, "Error: empty expression", err.Error())

	_, err = Evaluate("   ")
	require.ErrorIs(t, err, ErrMalformedExpression)

	_, err = Evaluate("()")
	require.ErrorIs(t, err, ErrMalformedExpression)
}

func TestEvaluateUnbalanced(t *testing.T) {
	_, err := Evaluate("(1+2")
	require.ErrorIs(t, err, ErrUnbalancedParentheses)

	_, err = Evaluate("1+2)")
	require.ErrorIs(t, err, ErrUnbalancedParentheses)
}

func TestEvaluateMissingOperand(t *testing.T) {
	_, err := Evaluate("1+")
	require.ErrorIs(t, err, ErrMalformedExpression)
	require.Equal(t, "Error at line 1:2: '+' needs two operands", err.Error())

	_, err = Evaluate("(1.5+)*(3+4)")
	require.ErrorIs(t, err, ErrMalformedExpression)

	_, err = Evaluate("-1")
	require.ErrorIs(t, err, ErrMalformedExpression)
}

func TestEvaluateLeftoverOperands(t *testing.T) {
	_, err := Evaluate("1 2")
	require.ErrorIs(t, err, ErrMalformedExpression)
	require.Equal(t, "Error: 2 values left without an operator", err.Error())
}

func TestEvaluateNumericParse(t *testing.T) {
	_, err := Evaluate("1.2.3+1")
	require.ErrorIs(t, err, ErrNumericParse)
	require.ErrorIs(t, err, strconv.ErrSyntax)

	var numErr *strconv.NumError
	require.ErrorAs(t, err, &numErr)
	require.Equal(t, "1.2.3", numErr.Num)

	_, err = Evaluate(".")
	require.ErrorIs(t, err, ErrNumericParse)
}

func TestEvaluateOverflowingLiteral(t *testing.T) {
	_, err := Evaluate("1" + strings.Repeat("0", 400))
	require.ErrorIs(t, err, ErrNumericParse)
	require.ErrorIs(t, err, strconv.ErrRange)
}

func TestApply(t *testing.T) {
	require.Equal(t, float64(1024), apply(TokenTypeCaret, 2, 10))
	require.Equal(t, float64(5), apply(TokenTypeMinus, 7, 2))
	require.Equal(t, float64(4), apply(TokenTypeSlash, 8, 2))
	require.True(t, math.IsNaN(apply(TokenTypeLParen, 1, 2)))
}

func TestEvaluateInvalidCharacter(t *testing.T) {
	_, err := Evaluate("2x3")
	require.ErrorIs(t, err, ErrInvalidCharacter)
	kind, ok := KindOf(err)
	require.True(t, ok)
	require.Equal(t, InvalidCharacter, kind)
}

func TestEvaluatePostfixUnknownToken(t *testing.T) {
	_, err := EvaluatePostfix([]Token{
		{Type: TokenTypeNumber, Value: "1"},
		{Type: TokenTypeNumber, Value: "2"},
		{Type: TokenTypeLParen, Location: Location{Line: 1, Col: 3}},
	})
	require.ErrorIs(t, err, ErrUnknownOperator)
}

func TestKindOfForeignError(t *testing.T) {
	_, ok := KindOf(strconv.ErrSyntax)
	require.False(t, ok)
}

func TestFormatResult(t *testing.T) {
	require.Equal(t, "11", FormatResult(11))
	require.Equal(t, "347.73123", FormatResult(347.73123))
	require.Equal(t, "-0.5", FormatResult(-0.5))
	require.Equal(t, "+Inf", FormatResult(math.Inf(1)))
	require.Equal(t, "NaN", FormatResult(math.NaN()))
}
