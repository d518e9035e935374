package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tasktracker/pkg/translator"
)

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{header: "", want: translator.LanguageEn},
		{header: "fr", want: translator.LanguageFr},
		{header: "fr-CA,fr;q=0.9", want: translator.LanguageFr},
		{header: "de-DE,fr;q=0.8,en;q=0.5", want: translator.LanguageFr},
		{header: "en-US,fr;q=0.9", want: translator.LanguageEn},
		{header: "de", want: translator.LanguageEn},
		{header: ";;;", want: translator.LanguageEn},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, matchLanguage(tt.header))
		})
	}
}

func TestLanguageMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(LanguageMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetLang(c))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-FR")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, translator.LanguageFr, rec.Body.String())
}

func TestGetLang_DefaultsToEnglish(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, translator.LanguageEn, GetLang(c))
}
