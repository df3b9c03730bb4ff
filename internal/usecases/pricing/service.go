// Package pricing expõe as cotações dos itens acompanhados no evento, com
// cache de curta duração em cima da API do wiki.
package pricing

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/infrastructure/integrator/wikiprices"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

// DefaultTrackedItems mapeia os IDs dos itens do boss atual (Yama) para os
// nomes exibidos. Só esses itens saem na resposta de preços.
var DefaultTrackedItems = map[string]string{
	"30759": "Soulflame horn",
	// Peças de oathplate
	"30765": "Oathplate Shards",
	"30750": "Oathplate helm",
	"30753": "Oathplate chest",
	"30756": "Oathplate legs",
	// Contratos
	"30816": "Contract of bloodied blows",
	"30831": "Contract of catalyst acquisition",
	"30819": "Contract of divine severance",
	"30840": "Contract of familiar acquisition",
	"30822": "Contract of forfeit breath",
	"30810": "Contract of glyphic attenuation",
	"30837": "Contract of harmony acquisition",
	"30825": "Contract of oathplate acquisition",
	"30813": "Contract of sensory clouding",
	"30828": "Contract of shard acquisition",
	"30834": "Contract of worm acquisition",
}

type Service interface {
	GetTrackedPrices() (domain.ItemPrices, error)
}

type service struct {
	cfg     *config.Config
	client  wikiprices.Client
	tracked map[string]string
	now     func() time.Time

	mu          sync.Mutex
	cached      domain.ItemPrices
	lastFetched time.Time
}

func NewService(cfg *config.Config, client wikiprices.Client) Service {
	return &service{
		cfg:     cfg,
		client:  client,
		tracked: DefaultTrackedItems,
		now:     time.Now,
	}
}

// GetTrackedPrices devolve o preço insta-buy dos itens acompanhados. O
// resultado fica em cache pelo TTL configurado; se a API falhar com cache
// populado, devolve o cache velho em vez de errar.
func (s *service) GetTrackedPrices() (domain.ItemPrices, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ttl := time.Duration(s.cfg.WikiPrices.CacheTTLSeconds) * time.Second
	if s.cached != nil && s.now().Sub(s.lastFetched) < ttl {
		logrus.Info("prices: usando cotações em cache")
		return s.cached, nil
	}

	latest, err := s.client.GetLatestPrices()
	if err != nil {
		if s.cached != nil {
			logrus.WithError(err).Warn("prices: falha ao atualizar, devolvendo cache antigo")
			return s.cached, nil
		}
		return nil, fmt.Errorf("erro ao buscar cotações: %w", err)
	}

	prices := make(domain.ItemPrices, len(s.tracked))
	for itemID, itemName := range s.tracked {
		if price, ok := latest[itemID]; ok {
			prices[itemName] = price.High
		}
	}

	s.cached = prices
	s.lastFetched = s.now()
	logrus.WithField("itens", len(prices)).Info("prices: cotações atualizadas")

	return prices, nil
}
