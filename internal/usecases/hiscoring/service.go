// Package hiscoring calcula o progresso de cada participante durante o
// evento: diff entre o snapshot mais antigo e o mais recente do hiscore,
// com EHP/EHB derivados das tabelas do Wise Old Man.
package hiscoring

import (
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/infrastructure/repository"
	"github.com/osrsclan/event-manager-api/internal/domain"
)

// ErrNoActiveEvent indica que não há evento ativo para calcular progresso.
var ErrNoActiveEvent = errors.New("nenhum evento ativo")

// ironRSNs lista os participantes com conta iron, que usam tabelas de taxa
// próprias. Mantido em código como no evento original; vira configuração se
// a lista começar a mudar por evento.
var ironRSNs = map[string]struct{}{
	"ruto":         {},
	"politoed22":   {},
	"manlikemooks": {},
	"sniken":       {},
	"bottommeirl":  {},
	"papi chubb":   {},
	"a llergic":    {},
	"fe sekiro":    {},
	"lil dodgyy":   {},
	"clue relic":   {},
	"eatan":        {},
	"pepper fe":    {},
	"luckylothory": {},
	"biverlyhills": {},
	"toxic dane":   {},
	"no 1 goblin":  {},
}

type Service interface {
	LoadHiscore() (map[string]*domain.PlayerProgress, error)
}

type cachedProgress struct {
	progress   *domain.PlayerProgress
	computedAt time.Time
}

type service struct {
	events    repository.EventRepository
	snapshots repository.SnapshotRepository
	rates     *RateSource
	ttl       time.Duration
	now       func() time.Time

	mu    sync.Mutex
	cache map[string]cachedProgress
}

func NewService(events repository.EventRepository, snapshots repository.SnapshotRepository, rates *RateSource, ttl time.Duration) Service {
	return &service{
		events:    events,
		snapshots: snapshots,
		rates:     rates,
		ttl:       ttl,
		now:       time.Now,
		cache:     make(map[string]cachedProgress),
	}
}

// LoadHiscore monta o progresso de todos os RSNs do evento ativo. O cálculo
// de cada RSN é caro (dois snapshots + tabelas de taxa), então o resultado
// fica em cache pelo TTL configurado; novos snapshots só chegam duas vezes
// ao dia. Erros individuais não derrubam o conjunto: o RSN sai com o campo
// de erro preenchido.
func (s *service) LoadHiscore() (map[string]*domain.PlayerProgress, error) {
	event, err := s.events.GetActiveEvent()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar evento ativo")
	}
	if event == nil {
		return nil, ErrNoActiveEvent
	}

	participants, err := s.events.ListParticipants(event.ID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar participantes")
	}

	rsns := make([]string, 0, len(participants))
	for _, participant := range participants {
		for _, rsn := range domain.SplitRSNs(participant.RSN) {
			rsns = append(rsns, strings.ToLower(rsn))
		}
	}

	since := sql.NullTime{Time: event.StartDate, Valid: true}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rsn := range rsns {
		if cached, ok := s.cache[rsn]; ok && s.now().Sub(cached.computedAt) < s.ttl {
			continue
		}

		progress, err := s.calculateProgress(rsn, since)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"rsn":   rsn,
				"error": err.Error(),
			}).Error("hiscore: erro ao calcular progresso")
			s.cache[rsn] = cachedProgress{
				progress:   &domain.PlayerProgress{RSN: rsn, Error: err.Error()},
				computedAt: s.now(),
			}
			continue
		}
		if progress == nil {
			logrus.WithField("rsn", rsn).Warn("hiscore: nenhum snapshot encontrado")
			delete(s.cache, rsn)
			continue
		}

		s.cache[rsn] = cachedProgress{progress: progress, computedAt: s.now()}
	}

	result := make(map[string]*domain.PlayerProgress, len(s.cache))
	for rsn, cached := range s.cache {
		result[rsn] = cached.progress
	}
	return result, nil
}

// calculateProgress faz o diff de um RSN. Sem snapshot final (nem pelo
// alias) não há o que mostrar e o retorno é nil; sem snapshot inicial o
// início é implícito em zero.
func (s *service) calculateProgress(rsn string, since sql.NullTime) (*domain.PlayerProgress, error) {
	earliest, err := s.snapshots.GetEarliestSince(rsn, since)
	if err != nil {
		return nil, err
	}

	latest, err := s.snapshots.GetLatest(rsn)
	if err != nil {
		return nil, err
	}
	if latest == nil {
		if alias, ok := domain.RSNAliases[rsn]; ok {
			latest, err = s.snapshots.GetLatest(alias)
			if err != nil {
				return nil, err
			}
		}
	}
	if latest == nil {
		return nil, nil
	}

	start := domain.EmptyPlayerStats()
	if earliest != nil {
		start = earliest.Stats
	}
	end := latest.Stats

	diff := domain.PlayerStats{
		Skills:    diffSection(start.Skills, end.Skills, []string{"rank", "level", "xp"}),
		Minigames: diffSection(start.Minigames, end.Minigames, []string{"rank", "score"}),
		Bosses:    diffSection(start.Bosses, end.Bosses, []string{"rank", "kills"}),
	}

	accountType := accountTypeFor(rsn)

	ehpRates, err := s.rates.EhpRates(accountType)
	if err != nil {
		return nil, err
	}
	ehbRates, err := s.rates.EhbRates(accountType)
	if err != nil {
		return nil, err
	}

	return &domain.PlayerProgress{
		RSN:   rsn,
		Start: start,
		End:   end,
		Diff:  diff,
		EHP:   CalculateEhp(ehpRates, diff.Skills),
		EHB:   CalculateEhb(ehbRates, diff.Bosses),
	}, nil
}

// diffSection subtrai o valor inicial do final para cada stat, guiado pelas
// chaves do snapshot final: entradas novas contam a partir de zero, entradas
// que sumiram não aparecem.
func diffSection(start, end map[string]domain.StatLine, stats []string) map[string]domain.StatLine {
	result := make(map[string]domain.StatLine, len(end))
	for key, endLine := range end {
		line := make(domain.StatLine, len(stats))
		for _, stat := range stats {
			var startVal int64
			if startLine, ok := start[key]; ok {
				startVal = startLine[stat]
			}
			line[stat] = endLine[stat] - startVal
		}
		result[key] = line
	}
	return result
}

func accountTypeFor(rsn string) AccountType {
	if _, ok := ironRSNs[strings.ToLower(rsn)]; ok {
		return AccountIron
	}
	return AccountMain
}
