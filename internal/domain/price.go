package domain

// ItemPrices mapeia o nome de exibição do item para o preço "high" mais recente.
type ItemPrices map[string]int64
