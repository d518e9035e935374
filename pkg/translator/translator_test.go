package translator_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/pkg/translator"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func localize(t *testing.T, lang, id string) string {
	t.Helper()
	msg, err := translator.Localize(lang, id)
	require.NoError(t, err)
	return msg
}

func TestInitTranslator_LoadsSupportedLanguages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.toml", `taskNotFound = "Task not found"`+"\n"+`noSession = "No user is signed in"`)
	writeFile(t, dir, "fr.toml", `taskNotFound = "Tâche introuvable"`)
	writeFile(t, dir, "de.toml", `taskNotFound = "Aufgabe nicht gefunden"`)

	err := translator.InitTranslator(translator.Config{
		TranslationFolder:  dir,
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tâche introuvable", localize(t, translator.LanguageFr, "taskNotFound"))
	assert.Equal(t, "No user is signed in", localize(t, translator.LanguageFr, "noSession"))
	assert.Equal(t, "Task not found", localize(t, "de", "taskNotFound"))
}

func TestLocalize_UnknownMessage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.toml", `taskNotFound = "Task not found"`)
	writeFile(t, dir, "fr.toml", `taskNotFound = "Tâche introuvable"`)
	require.NoError(t, translator.InitTranslator(translator.Config{TranslationFolder: dir}))

	_, err := translator.Localize(translator.LanguageFr, "missing")
	require.Error(t, err)
}

func TestInitTranslator_MissingFolder(t *testing.T) {
	err := translator.InitTranslator(translator.Config{TranslationFolder: "/path/does/not/exist"})
	require.Error(t, err)
	require.NotNil(t, translator.Translator)
}

func TestTranslationFiles_DefineTheSameKeys(t *testing.T) {
	keysOf := func(lang string) []string {
		data, err := os.ReadFile(filepath.Join("translation", lang+".toml"))
		require.NoError(t, err)
		var messages map[string]string
		require.NoError(t, toml.Unmarshal(data, &messages))
		keys := make([]string, 0, len(messages))
		for key := range messages {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		return keys
	}

	assert.Equal(t, keysOf(translator.LanguageEn), keysOf(translator.LanguageFr))
}
