package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tasktracker/internal/adapter/storage"
	appservice "tasktracker/internal/app/service"
	"tasktracker/internal/core/domain"
)

var errNotLoggedIn = errors.New("not logged in, run `taskctl login` first")

type storeOpener func(ctx context.Context, logger *zap.Logger) (storage.Store, error)

// app holds the services a command runs against. It is filled in by the root
// command's pre-run hook.
type app struct {
	open   storeOpener
	hasher *appservice.PasswordHasher

	logLevel string
	logger   *zap.Logger
	store    storage.Store

	tasks       *appservice.TaskService
	users       *appservice.UserService
	preferences *appservice.PreferenceService
}

func (a *app) init(ctx context.Context) error {
	logger, err := newLogger(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logger

	store, err := a.open(ctx, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = store

	a.users = appservice.NewUserService(store, a.hasher, logger)
	a.preferences = appservice.NewPreferenceService(store, logger)
	a.tasks = appservice.NewTaskService(store, logger)
	if err := a.tasks.Hydrate(ctx); err != nil {
		if !errors.Is(err, domain.ErrParseFailed) {
			return err
		}
		logger.Warn("stored tasks were unreadable and have been set aside", zap.Error(err))
	}
	return nil
}

func (a *app) close() error {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.store == nil {
		return nil
	}
	err := a.store.Close()
	a.store = nil
	return err
}

func (a *app) currentUserID(ctx context.Context) (domain.UserID, error) {
	userID, ok, err := a.users.CurrentUserID(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errNotLoggedIn
	}
	return userID, nil
}

// resolveTask finds one of the session user's tasks by full id or by a
// unique id suffix, as printed by list.
func (a *app) resolveTask(ctx context.Context, ref string) (domain.Task, error) {
	userID, err := a.currentUserID(ctx)
	if err != nil {
		return domain.Task{}, err
	}

	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Task{}, domain.ErrTaskNotFound
	}

	var matches []domain.Task
	for _, task := range a.tasks.List(ctx) {
		if task.UserID != userID {
			continue
		}
		if string(task.ID) == ref {
			return task, nil
		}
		if strings.HasSuffix(string(task.ID), ref) {
			matches = append(matches, task)
		}
	}

	switch len(matches) {
	case 0:
		return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return domain.Task{}, fmt.Errorf("id %q matches %d tasks", ref, len(matches))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	zcfg.Level = parsed
	return zcfg.Build()
}
