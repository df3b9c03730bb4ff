package osrsclient

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	osrsdomain "github.com/osrsclan/event-manager-api/infrastructure/integrator/osrs/domain"
	"github.com/osrsclan/event-manager-api/internal/config"
)

// ErrPlayerNotFound indica RSN inexistente no hiscore (404). Não adianta
// repetir a chamada; quem consome decide pular o jogador.
var ErrPlayerNotFound = errors.New("jogador não encontrado no hiscore")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetPlayerHiscore(rsn string) (*osrsdomain.HiscoreLiteResponse, error)
}

type OSRSClient struct {
	Cfg *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &OSRSClient{
		Cfg: cfg,
	}
}

func (c *OSRSClient) GetPlayerHiscore(rsn string) (*osrsdomain.HiscoreLiteResponse, error) {
	requestURL := fmt.Sprintf("%s?player=%s", c.Cfg.OSRS.HiscoreURL, url.QueryEscape(rsn))

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	if c.Cfg.OSRS.UserAgent != "" {
		req.Header.Set("User-Agent", c.Cfg.OSRS.UserAgent)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrPlayerNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hiscore retornou status inesperado %s para %s", resp.Status, rsn)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var hiscore osrsdomain.HiscoreLiteResponse
	if err := json.Unmarshal(data, &hiscore); err != nil {
		return nil, fmt.Errorf("erro ao desserializar hiscore de %s: %w", rsn, err)
	}

	return &hiscore, nil
}
