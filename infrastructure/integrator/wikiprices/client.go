// Package wikiprices integra com a API de preços em tempo real do wiki do
// Old School RuneScape.
package wikiprices

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ItemPrice é a cotação instantânea de um item: último insta-buy e insta-sell.
type ItemPrice struct {
	High     int64 `json:"high"`
	HighTime int64 `json:"highTime"`
	Low      int64 `json:"low"`
	LowTime  int64 `json:"lowTime"`
}

type Client interface {
	GetLatestPrices() (map[string]ItemPrice, error)
}

type WikiPricesClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &WikiPricesClient{
		Cfg: cfg,
	}
}

// GetLatestPrices busca a cotação de todos os itens. A API exige User-Agent
// descritivo e devolve os preços indexados pelo ID numérico do item.
func (c *WikiPricesClient) GetLatestPrices() (map[string]ItemPrice, error) {
	data, err := utils.MakeRequestWithUserAgent(c.Cfg.WikiPrices.URL, c.Cfg.WikiPrices.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar preços do wiki: %w", err)
	}

	var response struct {
		Data map[string]ItemPrice `json:"data"`
	}
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("erro ao desserializar preços do wiki: %w", err)
	}

	return response.Data, nil
}
