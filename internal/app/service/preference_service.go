package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
)

type PreferenceService struct {
	store  ports.KVStore
	logger *zap.Logger
}

func NewPreferenceService(store ports.KVStore, logger *zap.Logger) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{store: store, logger: logger}
}

// Theme returns the stored theme, light when none or an unknown one is stored.
func (s *PreferenceService) Theme(ctx context.Context) (domain.Theme, error) {
	value, found, err := s.store.Get(ctx, ThemeKey)
	if err != nil {
		return domain.ThemeLight, &domain.StoreError{Op: "read", Key: ThemeKey, Kind: domain.ErrReadFailed, Err: err}
	}
	if !found {
		return domain.ThemeLight, nil
	}

	// Older clients stored the value JSON encoded.
	theme, err := domain.ParseTheme(strings.Trim(value, `"`))
	if err != nil {
		s.logger.Warn("ignoring stored theme", zap.String("theme", value))
		return domain.ThemeLight, nil
	}
	return theme, nil
}

func (s *PreferenceService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if _, err := domain.ParseTheme(string(theme)); err != nil {
		return err
	}
	if err := s.store.Set(ctx, ThemeKey, string(theme)); err != nil {
		return &domain.StoreError{Op: "write", Key: ThemeKey, Kind: domain.ErrWriteFailed, Err: err}
	}
	return nil
}

var _ ports.PreferenceService = (*PreferenceService)(nil)
