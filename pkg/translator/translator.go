// Package translator loads the TOML message bundles used for API error messages.
package translator

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

// InitTranslator loads <lang>.toml from the translation folder for every
// supported language. A file that fails to load is logged and skipped; an
// error is returned only when nothing could be loaded.
func InitTranslator(cfg Config) error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	Translator = bundle

	langs := cfg.SupportedLanguages
	if len(langs) == 0 {
		langs = []string{LanguageEn, LanguageFr}
	}

	loaded := 0
	for _, lang := range langs {
		path := filepath.Join(cfg.TranslationFolder, lang+".toml")
		if _, err := bundle.LoadMessageFile(path); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", path), zap.Error(err))
			continue
		}
		loaded++
	}

	if loaded == 0 {
		return fmt.Errorf("no translation files loaded from %s", cfg.TranslationFolder)
	}
	return nil
}

// Localize translates id into lang. A message missing from lang is looked up
// in English, since a localizer only ever reads its one matched language.
func Localize(lang, id string) (string, error) {
	if Translator == nil {
		return "", errors.New("translator not initialised")
	}
	cfg := &i18n.LocalizeConfig{MessageID: id}
	msg, err := i18n.NewLocalizer(Translator, lang).Localize(cfg)
	var notFound *i18n.MessageNotFoundErr
	if err != nil && errors.As(err, &notFound) && lang != LanguageEn {
		return i18n.NewLocalizer(Translator, LanguageEn).Localize(cfg)
	}
	return msg, err
}
