package utils

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValueInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
		ok       bool
	}{
		{name: "Número simples com separador de milhar", input: "1,234", expected: 1234, ok: true},
		{name: "Sufixo m com fração", input: "2.5m", expected: 2_500_000, ok: true},
		{name: "Sufixo k", input: "10k", expected: 10_000, ok: true},
		{name: "Sufixo b", input: "1b", expected: 1_000_000_000, ok: true},
		{name: "Sufixo maiúsculo é normalizado", input: "3K", expected: 3_000, ok: true},
		{name: "Espaços nas bordas são ignorados", input: "  500  ", expected: 500, ok: true},
		{name: "Fração sem sufixo arredonda", input: "2.5", expected: 3, ok: true},
		{name: "Texto não numérico", input: "abc", ok: false},
		{name: "Entrada vazia", input: "", ok: false},
		{name: "Dois pontos decimais", input: "1.2.3", ok: false},
		{name: "Sufixo duplicado", input: "2kk", ok: false},
		{name: "Sufixo desconhecido", input: "2t", ok: false},
		{name: "Número negativo não é aceito", input: "-5", ok: false},
		{name: "Lixo após o sufixo", input: "2m!", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseValueInput(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestFormatValueOutput(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
		ok       bool
	}{
		{name: "Milhões sem casas decimais", input: 2_000_000, expected: "2m", ok: true},
		{name: "Milhões com meia casa", input: 2_500_000, expected: "2.5m", ok: true},
		{name: "Milhares", input: 1_500, expected: "1.5k", ok: true},
		{name: "Bilhões", input: 1_000_000_000, expected: "1b", ok: true},
		{name: "Duas casas preservadas", input: 2_550_000, expected: "2.55m", ok: true},
		{name: "Abaixo de mil fica literal", input: 999, expected: "999", ok: true},
		{name: "Zero", input: 0, expected: "0", ok: true},
		{name: "NaN é rejeitado", input: math.NaN(), ok: false},
		{name: "Infinito é rejeitado", input: math.Inf(1), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FormatValueOutput(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestFormatValueOutputBelowThousandIsIdentity(t *testing.T) {
	for v := 0; v < 1000; v++ {
		got, ok := FormatValueOutput(float64(v))
		assert.True(t, ok)
		assert.Equal(t, strconv.Itoa(v), got)
	}
}

// O par parse/format não reproduz a string original, mas precisa recuperar um
// valor equivalente dentro da precisão de duas casas da exibição.
func TestParseFormatRoundTrip(t *testing.T) {
	values := []int64{0, 999, 1_000, 1_500, 42_000, 2_000_000, 2_500_000, 2_550_000, 1_000_000_000, 7_250_000_000}

	for _, v := range values {
		formatted, ok := FormatValueOutput(float64(v))
		assert.True(t, ok)

		parsed, ok := ParseValueInput(formatted)
		assert.True(t, ok, "entrada %q deveria ser aceita", formatted)
		assert.Equal(t, v, parsed)
	}
}
