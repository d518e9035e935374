// Package apierrors builds the translated JSON error bodies returned by the API.
package apierrors

import (
	"fmt"

	"go.uber.org/zap"

	"tasktracker/pkg/translator"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Details ErrorDetails `json:"error"`
}

// ErrorDetails carries the status code, the stable message key and the
// message translated for the request language.
type ErrorDetails struct {
	Code    int    `json:"code"`
	Key     string `json:"key"`
	Message string `json:"message"`
}

func (e ErrorResponse) Error() string {
	return fmt.Sprintf("Code: %d, Key: %s, Message: %s", e.Details.Code, e.Details.Key, e.Details.Message)
}

// CreateError builds an ErrorResponse whose message is msgKey translated to lang.
func CreateError(code int, msgKey string, lang string) ErrorResponse {
	return ErrorResponse{Details: ErrorDetails{Code: code, Key: msgKey, Message: Message(msgKey, lang)}}
}

// Message translates msgKey, falling back to English and then to the key itself.
func Message(msgKey string, lang string) string {
	msg, err := translator.Localize(lang, msgKey)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
