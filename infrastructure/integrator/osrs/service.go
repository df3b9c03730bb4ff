// Package osrs integra com o hiscore oficial do Old School RuneScape,
// convertendo o payload plano do index_lite no formato seccionado que os
// snapshots persistem.
package osrs

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	osrsdomain "github.com/osrsclan/event-manager-api/infrastructure/integrator/osrs/domain"
	"github.com/osrsclan/event-manager-api/infrastructure/integrator/osrs/osrsclient"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

type Integrator interface {
	FetchPlayerStats(rsn string) (*domain.PlayerStats, error)
}

type OSRSIntegrator struct {
	cfg    *config.Config
	Client osrsclient.Client
}

func New(cfg *config.Config, client osrsclient.Client) *OSRSIntegrator {
	return &OSRSIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchPlayerStats busca o hiscore de um RSN com retry. Erros transitórios
// são repetidos com intervalo fixo; 404 é definitivo e sobe na hora.
func (s *OSRSIntegrator) FetchPlayerStats(rsn string) (*domain.PlayerStats, error) {
	attempts := s.cfg.OSRS.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	delay := time.Duration(s.cfg.OSRS.RetryDelaySeconds) * time.Second

	var lastErr error
	for i := 0; i < attempts; i++ {
		hiscore, err := s.Client.GetPlayerHiscore(rsn)
		if err == nil {
			return factoryPlayerStats(hiscore), nil
		}

		if errors.Is(err, osrsclient.ErrPlayerNotFound) {
			logrus.WithField("rsn", rsn).Warn("hiscore: RSN não encontrado, pulando")
			return nil, err
		}

		lastErr = err
		logrus.WithFields(logrus.Fields{
			"rsn":       rsn,
			"tentativa": i + 1,
			"error":     err.Error(),
		}).Error("hiscore: falha ao buscar stats, tentando novamente")

		if i < attempts-1 {
			time.Sleep(delay)
		}
	}

	return nil, lastErr
}

// factoryPlayerStats secciona o payload plano: skills viram skills, e as
// atividades viram bosses ou minigames conforme o nome (o hiscore não marca
// a categoria). Ranks -1 significam "sem rank"; o valor é mantido como veio.
func factoryPlayerStats(hiscore *osrsdomain.HiscoreLiteResponse) *domain.PlayerStats {
	stats := domain.EmptyPlayerStats()

	for _, skill := range hiscore.Skills {
		stats.Skills[skill.Name] = domain.StatLine{
			"rank":  skill.Rank,
			"level": skill.Level,
			"xp":    skill.XP,
		}
	}

	for _, activity := range hiscore.Activities {
		if _, isBoss := bossActivities[activity.Name]; isBoss {
			stats.Bosses[activity.Name] = domain.StatLine{
				"rank":  activity.Rank,
				"kills": activity.Score,
			}
			continue
		}
		stats.Minigames[activity.Name] = domain.StatLine{
			"rank":  activity.Rank,
			"score": activity.Score,
		}
	}

	return &stats
}

// bossActivities enumera as atividades do hiscore que são bosses. Atividades
// fora da lista (clues, LMS, Bounty Hunter etc.) caem em minigames.
var bossActivities = map[string]struct{}{
	"Abyssal Sire":                       {},
	"Alchemical Hydra":                   {},
	"Amoxliatl":                          {},
	"Araxxor":                            {},
	"Artio":                              {},
	"Barrows Chests":                     {},
	"Bryophyta":                          {},
	"Callisto":                           {},
	"Calvar'ion":                         {},
	"Cerberus":                           {},
	"Chambers of Xeric":                  {},
	"Chambers of Xeric: Challenge Mode":  {},
	"Chaos Elemental":                    {},
	"Chaos Fanatic":                      {},
	"Commander Zilyana":                  {},
	"Corporeal Beast":                    {},
	"Crazy Archaeologist":                {},
	"Dagannoth Prime":                    {},
	"Dagannoth Rex":                      {},
	"Dagannoth Supreme":                  {},
	"Deranged Archaeologist":             {},
	"Doom of Mokhaiotl":                  {},
	"Duke Sucellus":                      {},
	"General Graardor":                   {},
	"Giant Mole":                         {},
	"Grotesque Guardians":                {},
	"Hespori":                            {},
	"Kalphite Queen":                     {},
	"King Black Dragon":                  {},
	"Kraken":                             {},
	"Kree'Arra":                          {},
	"K'ril Tsutsaroth":                   {},
	"Lunar Chests":                       {},
	"Mimic":                              {},
	"Nex":                                {},
	"Nightmare":                          {},
	"Phosani's Nightmare":                {},
	"Obor":                               {},
	"Phantom Muspah":                     {},
	"Sarachnis":                          {},
	"Scorpia":                            {},
	"Scurrius":                           {},
	"Skotizo":                            {},
	"Sol Heredit":                        {},
	"Spindel":                            {},
	"Tempoross":                          {},
	"The Gauntlet":                       {},
	"The Corrupted Gauntlet":             {},
	"The Hueycoatl":                      {},
	"The Leviathan":                      {},
	"The Royal Titans":                   {},
	"The Whisperer":                      {},
	"Theatre of Blood":                   {},
	"Theatre of Blood: Hard Mode":        {},
	"Thermonuclear Smoke Devil":          {},
	"Tombs of Amascut":                   {},
	"Tombs of Amascut: Expert Mode":      {},
	"TzKal-Zuk":                          {},
	"TzTok-Jad":                          {},
	"Vardorvis":                          {},
	"Venenatis":                          {},
	"Vet'ion":                            {},
	"Vorkath":                            {},
	"Wintertodt":                         {},
	"Yama":                               {},
	"Zalcano":                            {},
	"Zulrah":                             {},
}
