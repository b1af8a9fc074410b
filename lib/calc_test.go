package contador

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name  string
		input CalculatorInput
		want  float64
		errIs error
	}{
		{"add", CalculatorInput{2, 3, "add"}, 5, nil},
		{"subtract", CalculatorInput{10, 4, "subtract"}, 6, nil},
		{"multiply", CalculatorInput{3, 5, "multiply"}, 15, nil},
		{"divide", CalculatorInput{10, 2, "divide"}, 5, nil},
		{"divide fraction", CalculatorInput{1, 4, "divide"}, 0.25, nil},
		{"divide by zero", CalculatorInput{10, 0, "divide"}, 0, ErrDivideByZero},
		{"divide by negative zero", CalculatorInput{10, negativeZero(), "divide"}, 0, ErrDivideByZero},
		{"unknown operation", CalculatorInput{1, 2, "modulo"}, 0, ErrInvalidOperation},
		{"empty operation", CalculatorInput{1, 2, ""}, 0, ErrInvalidOperation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func negativeZero() float64 {
	z := 0.0
	return -z
}

func TestParseCalculatorInput(t *testing.T) {
	input, err := ParseCalculatorInput(url.Values{
		"num1":      {"1.5"},
		"num2":      {"-2"},
		"operation": {"add"},
	})
	require.NoError(t, err)
	assert.Equal(t, CalculatorInput{Num1: 1.5, Num2: -2, Operation: "add"}, input)

	for name, form := range map[string]url.Values{
		"missing num1":      {"num2": {"1"}, "operation": {"add"}},
		"missing num2":      {"num1": {"1"}, "operation": {"add"}},
		"missing operation": {"num1": {"1"}, "num2": {"1"}},
		"non-numeric num1":  {"num1": {"abc"}, "num2": {"1"}, "operation": {"add"}},
		"empty num2":        {"num1": {"1"}, "num2": {""}, "operation": {"add"}},
		"digit separator":   {"num1": {"1_0"}, "num2": {"1"}, "operation": {"add"}},
		"hex float":         {"num1": {"0x1p4"}, "num2": {"1"}, "operation": {"add"}},
		"signed hex float":  {"num1": {"1"}, "num2": {"-0X10"}, "operation": {"add"}},
		"binary prefix":     {"num1": {"0b1"}, "num2": {"1"}, "operation": {"add"}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCalculatorInput(form)
			assert.Error(t, err)
		})
	}
}

func TestParseCalculatorInputOverflow(t *testing.T) {
	input, err := ParseCalculatorInput(url.Values{
		"num1":      {"1e400"},
		"num2":      {"-1e400"},
		"operation": {"add"},
	})
	require.NoError(t, err)
	assert.True(t, math.IsInf(input.Num1, 1))
	assert.True(t, math.IsInf(input.Num2, -1))

	input, err = ParseCalculatorInput(url.Values{
		"num1":      {"0.5"},
		"num2":      {"01"},
		"operation": {"add"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, input.Num2)
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "El resultado de la operacion es: 5", FormatResult(5))
	assert.Equal(t, "El resultado de la operacion es: 2.5", FormatResult(2.5))
	assert.Equal(t, "El resultado de la operacion es: -0.1", FormatResult(-0.1))
	assert.Equal(t, "El resultado de la operacion es: inf", FormatResult(math.Inf(1)))
	assert.Equal(t, "El resultado de la operacion es: -inf", FormatResult(math.Inf(-1)))
	assert.Equal(t, "El resultado de la operacion es: NaN", FormatResult(math.NaN()))
}
