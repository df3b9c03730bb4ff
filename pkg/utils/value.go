package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Padrão aceito para valores digitados: dígitos, fração decimal opcional e
// um único sufixo k/m/b opcional. Qualquer coisa além disso é rejeitada.
var valueInputPattern = regexp.MustCompile(`^(\d+(\.\d+)?)([kmb])?$`)

// ParseValueInput converte um valor digitado por um participante ("1,234",
// "2.5m", "10k") no inteiro correspondente. Vírgulas de milhar são removidas
// e o sufixo multiplica por 1e3/1e6/1e9. Entrada fracionária sem sufixo é
// arredondada para o inteiro mais próximo ("2.5" vira 3). Retorna ok=false
// para entrada vazia ou fora do padrão; quem chama decide a mensagem de
// validação para o usuário.
func ParseValueInput(input string) (int64, bool) {
	normalized := strings.TrimSpace(strings.ReplaceAll(strings.ToLower(input), ",", ""))
	if normalized == "" {
		return 0, false
	}

	match := valueInputPattern.FindStringSubmatch(normalized)
	if match == nil {
		return 0, false
	}

	num, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, false
	}

	multiplier := 1.0
	switch match[3] {
	case "k":
		multiplier = 1_000
	case "m":
		multiplier = 1_000_000
	case "b":
		multiplier = 1_000_000_000
	}

	return int64(math.Round(num * multiplier)), true
}

// FormatValueOutput é a transformação inversa, apenas para exibição: escolhe
// o maior sufixo aplicável e formata com até duas casas decimais, removendo
// zeros à direita (2000000 vira "2m", 2500000 vira "2.5m"). É uma conversão
// com perda: o par parse/format só garante equivalência dentro da precisão
// de duas casas. Retorna ok=false para NaN/Inf.
func FormatValueOutput(value float64) (string, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", false
	}

	switch {
	case value >= 1_000_000_000:
		return trimZeros(value/1_000_000_000) + "b", true
	case value >= 1_000_000:
		return trimZeros(value/1_000_000) + "m", true
	case value >= 1_000:
		return trimZeros(value/1_000) + "k", true
	default:
		return strconv.FormatFloat(value, 'f', -1, 64), true
	}
}

func trimZeros(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
