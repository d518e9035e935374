package main

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpadapter "tasktracker/internal/adapter/http"
	"tasktracker/internal/adapter/http/handlers"
	httpmiddleware "tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/adapter/storage"
	appservice "tasktracker/internal/app/service"
	"tasktracker/internal/config"
	"tasktracker/internal/core/domain"
	"tasktracker/pkg/translator"
)

func main() {
	cfg := config.LoadConfig()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  cfg.TranslationFolder,
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	}); err != nil {
		logger.Warn("error messages will not be translated", zap.Error(err))
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("backend", cfg.StoreBackend), zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	userService := appservice.NewUserService(store, appservice.NewPasswordHasher(appservice.DefaultBcryptCost), logger)
	preferenceService := appservice.NewPreferenceService(store, logger)
	taskService := appservice.NewTaskService(store, logger)
	if err := taskService.Hydrate(ctx); err != nil {
		if !errors.Is(err, domain.ErrParseFailed) {
			logger.Fatal("failed to load tasks", zap.Error(err))
		}
		logger.Warn("stored tasks were unreadable and have been set aside", zap.Error(err))
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("proxies", cfg.TrustedProxies), zap.Error(err))
	}
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	httpadapter.RegisterRoutes(r, userService, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(store, cfg.StoreBackend),
		Tasks:       handlers.NewTaskHandler(taskService),
		Session:     handlers.NewSessionHandler(userService),
		Preferences: handlers.NewPreferenceHandler(preferenceService),
	})

	addr := cfg.AppHost + ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr), zap.String("backend", cfg.StoreBackend))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	parsed, err := zap.ParseAtomicLevel(level)
	if err == nil {
		zcfg.Level = parsed
	}
	return zcfg.Build()
}
