package natrix

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runProgram(t *testing.T, text string, arg *int64) (string, error) {
	t.Helper()
	res, err := ParseString("t", text)
	require.NoError(t, err)

	var out bytes.Buffer
	ev := NewEvaluator(res.Source, &out)
	err = ev.Run(res.Stmts, arg)
	return out.String(), err
}

func TestEvalPrintArithmetic(t *testing.T) {
	out, err := runProgram(t, "print(1 + 2 * 3)\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestEvalWhileLoopFactorial(t *testing.T) {
	src := "n = arg\nresult = 1\nwhile n > 0:\n    result = result * n\n    n = n - 1\nprint(result)\n"
	arg := int64(5)
	out, err := runProgram(t, src, &arg)
	require.NoError(t, err)
	assert.Equal(t, "120\n", out)
}

func TestEvalListMutationAndSubscript(t *testing.T) {
	src := "xs = [1, 2, 3]\nxs[1] = 99\nprint(xs[1])\nprint(xs[-1])\n"
	out, err := runProgram(t, src, nil)
	require.NoError(t, err)
	assert.Equal(t, "99\n3\n", out)
}

func TestEvalStringConcatAndPrint(t *testing.T) {
	out, err := runProgram(t, `print("a" + "b")`+"\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "ab\n", out)
}

func TestEvalUndefinedVariableFault(t *testing.T) {
	_, err := runProgram(t, "print(missing)\n", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable")
}

func TestEvalDivisionByZeroFault(t *testing.T) {
	_, err := runProgram(t, "x = 1 / 0\n", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestEvalMixedTypeArithmeticFault(t *testing.T) {
	_, err := runProgram(t, `x = 1 + "a"`+"\n", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported operand type")
}

func TestEvalListIndexOutOfRangeFault(t *testing.T) {
	_, err := runProgram(t, "xs = [1]\nprint(xs[5])\n", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index out of range")
}

func TestEvalIfElifElse(t *testing.T) {
	src := "x = 2\nif x == 1:\n    print(1)\nelif x == 2:\n    print(2)\nelse:\n    print(3)\n"
	out, err := runProgram(t, src, nil)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEvalIntegerOverflowFault(t *testing.T) {
	_, err := runProgram(t, "x = 99999999999999999999999999999\n", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestEvalArgDefaultsToZeroWhenUnsupplied(t *testing.T) {
	out, err := runProgram(t, "print(arg)\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestEvalNonIntegerConditionFaults(t *testing.T) {
	_, err := runProgram(t, "if [1]:\n    pass\n", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Condition must be an integer")
}

func TestEvalNonIntegerWhileConditionFaults(t *testing.T) {
	_, err := runProgram(t, "while \"x\":\n    pass\n", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Condition must be an integer")
}
