package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/pkg/bilingual"
)

const ContextKeyLang = "lang"

// ResolveLanguage determines the display language for the request from the
// lang query param, then Accept-Language, defaulting to Bengali. The choice
// is carried in the request context rather than any process-wide state.
func ResolveLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.Query("lang"))
		if raw == "" {
			raw = preferredFromHeader(c.GetHeader("Accept-Language"))
		}
		c.Set(ContextKeyLang, string(bilingual.Normalize(raw)))
		c.Next()
	}
}

// Lang returns the resolved display language for the request.
func Lang(c *gin.Context) bilingual.Lang {
	return bilingual.Lang(Language(c))
}

// Language returns the resolved language code as a plain string.
func Language(c *gin.Context) string {
	v, _ := c.Get(ContextKeyLang)
	lang, _ := v.(string)
	if lang == "" {
		return string(bilingual.LangBn)
	}
	return lang
}

func preferredFromHeader(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if tag == "" {
			continue
		}
		switch {
		case strings.HasPrefix(tag, "bn"):
			return "bn"
		case strings.HasPrefix(tag, "en"):
			return "en"
		}
	}
	return ""
}
