package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"tasktracker/pkg/translator"
)

const langKey = "lang"

var langMatcher = language.NewMatcher([]language.Tag{language.English, language.French})

// LanguageMiddleware stores the best supported match for Accept-Language
// (en or fr) on the context, defaulting to en.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, matchLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func matchLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := langMatcher.Match(tags...)
	if confidence == language.No || index != 1 {
		return translator.LanguageEn
	}
	return translator.LanguageFr
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
