package contador

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrDivideByZero     = errors.New("Error: No se puede dividir por cero")
	ErrInvalidOperation = errors.New("Operación no válida")
)

type CalculatorInput struct {
	Num1      float64
	Num2      float64
	Operation string
}

func parseField(form url.Values, name string) (float64, error) {
	if !form.Has(name) {
		return 0, fmt.Errorf("missing field `%s`", name)
	}
	raw := form.Get(name)
	if !plainDecimal(raw) {
		return 0, fmt.Errorf("invalid field `%s`: %q is not a decimal number", name, raw)
	}
	// Overflow yields ±Inf together with ErrRange; keep the infinity.
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid field `%s`: %w", name, err)
	}
	return v, nil
}

// plainDecimal rejects the Go literal extensions ParseFloat accepts:
// digit separators and base prefixes.
func plainDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	s = strings.TrimLeft(s, "+-")
	return !(len(s) >= 2 && s[0] == '0' && strings.ContainsRune("xXbBoO", rune(s[1])))
}

// ParseCalculatorInput reads num1, num2 and operation from a decoded form.
func ParseCalculatorInput(form url.Values) (CalculatorInput, error) {
	var input CalculatorInput
	var err error

	if input.Num1, err = parseField(form, "num1"); err != nil {
		return input, err
	}
	if input.Num2, err = parseField(form, "num2"); err != nil {
		return input, err
	}
	if !form.Has("operation") {
		return input, errors.New("missing field `operation`")
	}
	input.Operation = form.Get("operation")
	return input, nil
}

func Calculate(input CalculatorInput) (float64, error) {
	switch input.Operation {
	case "add":
		return input.Num1 + input.Num2, nil
	case "subtract":
		return input.Num1 - input.Num2, nil
	case "multiply":
		return input.Num1 * input.Num2, nil
	case "divide":
		if input.Num2 == 0.0 {
			return 0, ErrDivideByZero
		}
		return input.Num1 / input.Num2, nil
	default:
		return 0, ErrInvalidOperation
	}
}

func FormatResult(result float64) string {
	var text string
	switch {
	case math.IsInf(result, 1):
		text = "inf"
	case math.IsInf(result, -1):
		text = "-inf"
	default:
		text = strconv.FormatFloat(result, 'f', -1, 64)
	}
	return "El resultado de la operacion es: " + text
}
