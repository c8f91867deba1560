package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/pecbr/acaboi/internal/config"
	"github.com/pecbr/acaboi/internal/repository/postgres"
	"github.com/pecbr/acaboi/internal/server/handlers"
	"github.com/pecbr/acaboi/internal/server/router"
	agendasvc "github.com/pecbr/acaboi/internal/service/agenda"
	authsvc "github.com/pecbr/acaboi/internal/service/auth"
	dashboardsvc "github.com/pecbr/acaboi/internal/service/dashboard"
	importacaosvc "github.com/pecbr/acaboi/internal/service/importacao"
	relatoriosvc "github.com/pecbr/acaboi/internal/service/relatorio"
	"github.com/pecbr/acaboi/pkg/clients/gotrue"
	"github.com/pecbr/acaboi/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	db, err := postgres.Connect(cfg.Database)
	if err != nil {
		baseLogger.Fatal("failed to init database", zap.Error(err))
	}

	produtorRepo := postgres.NewProdutorRepository(db)
	propriedadeRepo := postgres.NewPropriedadeRepository(db)
	frigorificoRepo := postgres.NewFrigorificoRepository(db)
	categoriaRepo := postgres.NewCategoriaRepository(db)
	abateRepo := postgres.NewAbateRepository(db)
	escalaRepo := postgres.NewEscalaRepository(db)
	profileRepo := postgres.NewProfileRepository(db)

	gotrueClient := gotrue.NewClient(cfg.Supabase)

	authService := authsvc.NewService(gotrueClient, profileRepo, baseLogger.Named("svc.auth"))
	agendaService := agendasvc.NewService(escalaRepo, baseLogger.Named("svc.agenda"))
	importacaoService := importacaosvc.NewService(abateRepo, baseLogger.Named("svc.importacao"))
	relatorioService := relatoriosvc.NewService(abateRepo, baseLogger.Named("svc.relatorio"))
	dashboardService := dashboardsvc.NewService(abateRepo, baseLogger.Named("svc.dashboard"))

	engine := router.New(router.Handlers{
		Auth:        handlers.NewAuthHandler(authService, baseLogger.Named("handlers.auth")),
		Produtor:    handlers.NewProdutorHandler(produtorRepo, baseLogger.Named("handlers.produtor")),
		Propriedade: handlers.NewPropriedadeHandler(propriedadeRepo, baseLogger.Named("handlers.propriedade")),
		Frigorifico: handlers.NewFrigorificoHandler(frigorificoRepo, baseLogger.Named("handlers.frigorifico")),
		Categoria:   handlers.NewCategoriaHandler(categoriaRepo, baseLogger.Named("handlers.categoria")),
		Abate:       handlers.NewAbateHandler(abateRepo, baseLogger.Named("handlers.abate")),
		Escala:      handlers.NewEscalaHandler(escalaRepo, baseLogger.Named("handlers.escala")),
		Agenda:      handlers.NewAgendaHandler(agendaService, baseLogger.Named("handlers.agenda")),
		Importacao:  handlers.NewImportacaoHandler(importacaoService, baseLogger.Named("handlers.importacao")),
		Relatorio:   handlers.NewRelatorioHandler(relatorioService, baseLogger.Named("handlers.relatorio")),
		Dashboard:   handlers.NewDashboardHandler(dashboardService, baseLogger.Named("handlers.dashboard")),
		User:        handlers.NewUserHandler(authService, baseLogger.Named("handlers.user")),
	}, authService, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
