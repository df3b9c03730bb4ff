package domain

import "strings"

// NormalizeRSN padroniza um nome de jogador para comparação (minúsculas, sem espaços nas bordas).
func NormalizeRSN(rsn string) string {
	return strings.ToLower(strings.TrimSpace(rsn))
}

// SplitRSNs separa uma lista de RSNs delimitada por vírgula em nomes normalizados,
// descartando entradas vazias.
func SplitRSNs(raw string) []string {
	parts := strings.Split(raw, ",")
	rsns := make([]string, 0, len(parts))
	for _, part := range parts {
		rsn := NormalizeRSN(part)
		if rsn == "" {
			continue
		}
		rsns = append(rsns, rsn)
	}
	return rsns
}

// JoinRSNs normaliza e reagrupa uma lista delimitada por vírgula no formato armazenado.
func JoinRSNs(raw string) string {
	return strings.Join(SplitRSNs(raw), ",")
}

// RSNAliases mapeia RSNs que mudaram de nome no meio do evento para o nome
// atual no hiscore. O nome antigo continua registrado no evento; as consultas
// ao hiscore usam o alias.
var RSNAliases = map[string]string{
	"lvl 4 zebak": "phrukurself",
}
