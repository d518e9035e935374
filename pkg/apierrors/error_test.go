package apierrors_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/pkg/apierrors"
	"tasktracker/pkg/translator"
)

func TestMain(m *testing.M) {
	if err := translator.InitTranslator(translator.Config{
		TranslationFolder:  "../translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestCreateError_TranslatesMessage(t *testing.T) {
	err := apierrors.CreateError(404, apierrors.MsgTaskNotFound, translator.LanguageEn)
	assert.Equal(t, 404, err.Details.Code)
	assert.Equal(t, "taskNotFound", err.Details.Key)
	assert.Equal(t, "Task not found", err.Details.Message)

	err = apierrors.CreateError(404, apierrors.MsgTaskNotFound, translator.LanguageFr)
	assert.Equal(t, "Tâche introuvable", err.Details.Message)
}

func TestMessage_FallsBack(t *testing.T) {
	assert.Equal(t, "Invalid email or password", apierrors.Message(apierrors.MsgInvalidCredentials, "de"))
	assert.Equal(t, "unknown_key", apierrors.Message("unknown_key", translator.LanguageEn))
}

func TestMessage_EveryKeyIsTranslated(t *testing.T) {
	keys := []string{
		apierrors.MsgFailListTask, apierrors.MsgInvalidTaskPayload, apierrors.MsgEmptyTaskTitle,
		apierrors.MsgInvalidDate, apierrors.MsgInvalidViewParams, apierrors.MsgTaskNotFound,
		apierrors.MsgFailCreateTask, apierrors.MsgFailUpdateTask, apierrors.MsgFailDeleteTask,
		apierrors.MsgFailPersistTask, apierrors.MsgNoSession, apierrors.MsgFailSession,
		apierrors.MsgInvalidUserPayload, apierrors.MsgEmailTaken, apierrors.MsgInvalidCredentials,
		apierrors.MsgPasswordMismatch, apierrors.MsgFailSignup, apierrors.MsgInvalidTheme,
		apierrors.MsgFailTheme,
	}

	for _, key := range keys {
		for _, lang := range []string{translator.LanguageEn, translator.LanguageFr} {
			require.NotEqual(t, key, apierrors.Message(key, lang), "%s has no %s message", key, lang)
		}
	}
}

func TestErrorResponse_Error(t *testing.T) {
	err := apierrors.CreateError(500, apierrors.MsgFailPersistTask, translator.LanguageEn)
	assert.Equal(t, "Code: 500, Key: failPersistTask, Message: The change was applied but could not be saved", err.Error())
}
