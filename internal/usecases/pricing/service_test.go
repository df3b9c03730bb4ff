package pricing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/osrsclan/event-manager-api/infrastructure/integrator/wikiprices"
	"github.com/osrsclan/event-manager-api/internal/config"
)

type fakePricesClient struct {
	prices map[string]wikiprices.ItemPrice
	err    error
	calls  int
}

func (f *fakePricesClient) GetLatestPrices() (map[string]wikiprices.ItemPrice, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.prices, nil
}

func newTestService(client wikiprices.Client, now func() time.Time) *service {
	cfg := &config.Config{}
	cfg.WikiPrices.CacheTTLSeconds = 300

	return &service{
		cfg:    cfg,
		client: client,
		tracked: map[string]string{
			"30759": "Soulflame horn",
			"30750": "Oathplate helm",
		},
		now: now,
	}
}

func TestGetTrackedPricesFiltraItensAcompanhados(t *testing.T) {
	client := &fakePricesClient{
		prices: map[string]wikiprices.ItemPrice{
			"30759": {High: 150_000_000, Low: 148_000_000},
			"30750": {High: 80_000_000, Low: 79_000_000},
			"4151":  {High: 1_500_000, Low: 1_450_000}, // não acompanhado
		},
	}

	svc := newTestService(client, time.Now)

	prices, err := svc.GetTrackedPrices()
	require.NoError(t, err)

	assert.Len(t, prices, 2)
	assert.Equal(t, int64(150_000_000), prices["Soulflame horn"])
	assert.Equal(t, int64(80_000_000), prices["Oathplate helm"])
	assert.NotContains(t, prices, "Abyssal whip")
}

func TestGetTrackedPricesUsaCacheDentroDoTTL(t *testing.T) {
	client := &fakePricesClient{
		prices: map[string]wikiprices.ItemPrice{
			"30759": {High: 100},
		},
	}

	clock := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(client, func() time.Time { return clock })

	_, err := svc.GetTrackedPrices()
	require.NoError(t, err)

	// Dentro do TTL a segunda chamada não vai à API
	clock = clock.Add(4 * time.Minute)
	_, err = svc.GetTrackedPrices()
	require.NoError(t, err)
	assert.Equal(t, 1, client.calls)

	// Passado o TTL, busca de novo
	clock = clock.Add(2 * time.Minute)
	_, err = svc.GetTrackedPrices()
	require.NoError(t, err)
	assert.Equal(t, 2, client.calls)
}

func TestGetTrackedPricesDevolveCacheQuandoAPIFalha(t *testing.T) {
	client := &fakePricesClient{
		prices: map[string]wikiprices.ItemPrice{
			"30759": {High: 100},
		},
	}

	clock := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestService(client, func() time.Time { return clock })

	first, err := svc.GetTrackedPrices()
	require.NoError(t, err)

	client.err = errors.New("api fora do ar")
	clock = clock.Add(10 * time.Minute)

	second, err := svc.GetTrackedPrices()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetTrackedPricesErraSemCache(t *testing.T) {
	client := &fakePricesClient{err: errors.New("api fora do ar")}
	svc := newTestService(client, time.Now)

	_, err := svc.GetTrackedPrices()
	assert.Error(t, err)
}
