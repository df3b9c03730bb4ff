package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/osrsclan/event-manager-api/infrastructure/database/postgres"
	"github.com/osrsclan/event-manager-api/infrastructure/integrator/osrs"
	"github.com/osrsclan/event-manager-api/infrastructure/integrator/osrs/osrsclient"
	"github.com/osrsclan/event-manager-api/infrastructure/integrator/wikiprices"
	"github.com/osrsclan/event-manager-api/infrastructure/repository"
	"github.com/osrsclan/event-manager-api/internal/api"
	"github.com/osrsclan/event-manager-api/internal/config"
	"github.com/osrsclan/event-manager-api/internal/scheduler"
	"github.com/osrsclan/event-manager-api/internal/usecases/authenticating"
	"github.com/osrsclan/event-manager-api/internal/usecases/eventing"
	"github.com/osrsclan/event-manager-api/internal/usecases/hiscoring"
	"github.com/osrsclan/event-manager-api/internal/usecases/milestoning"
	"github.com/osrsclan/event-manager-api/internal/usecases/pricing"
	"github.com/osrsclan/event-manager-api/internal/usecases/submitting"
	"github.com/osrsclan/event-manager-api/internal/usecases/teaming"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	eventRepo := repository.NewEventRepository(pgConn)
	teamRepo := repository.NewTeamRepository(pgConn)
	submissionRepo := repository.NewSubmissionRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	discordUserRepo := repository.NewDiscordUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	osrsClient := osrsclient.NewClient(cfg)
	osrsIntegrator := osrs.New(cfg, osrsClient)

	pricesClient := wikiprices.NewClient(cfg)

	eventService := eventing.NewService(eventRepo, discordUserRepo)
	teamService := teaming.NewService(teamRepo, eventRepo, submissionRepo)
	submissionService := submitting.NewService(cfg, submissionRepo, eventRepo, teamRepo)
	milestoneService := milestoning.NewService(cfg, eventRepo, submissionRepo)
	priceService := pricing.NewService(cfg, pricesClient)

	rateSource := hiscoring.NewRateSource(
		cfg.Efficiency.RatesDir,
		time.Duration(cfg.Efficiency.CacheTTLSeconds)*time.Second,
	)
	hiscoreService := hiscoring.NewService(
		eventRepo,
		snapshotRepo,
		rateSource,
		time.Duration(cfg.Hiscore.CacheTTLSeconds)*time.Second,
	)

	// Inicializa o agendador de snapshots do hiscore
	snapshotSyncService := scheduler.NewHiscoreSnapshotSyncService(
		eventRepo,
		snapshotRepo,
		osrsIntegrator,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do hiscore")
	} else {
		logrus.Info("Agendador de snapshots do hiscore iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		eventService,
		teamService,
		submissionService,
		milestoneService,
		hiscoreService,
		priceService,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
