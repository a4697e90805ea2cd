package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/yigit/gpacalc/internal/pkg/i18n"
)

// Context keys set by Locale
const (
	ContextKeyLocale  = "locale"
	ContextKeyCatalog = "catalog"

	// LangParam selects the label language, e.g. ?lang=ar
	LangParam = "lang"
)

// RequestLogger logs every request once it completes
func RequestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		event := lgr.Info()
		switch {
		case status >= 500:
			event = lgr.Error()
		case status >= 400:
			event = lgr.Warn()
		}

		event = event.
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Str("clientIP", c.ClientIP()).
			Dur("latency", time.Since(start))

		if sessionID, ok := SessionIDFrom(c); ok {
			event = event.Str("sessionID", sessionID.String())
		}
		if len(c.Errors) > 0 {
			event = event.Str("errors", c.Errors.String())
		}
		event.Msg("Request handled")
	}
}

// Locale resolves the label language from ?lang= then Accept-Language,
// falling back to defaultLocale.
func Locale(catalog *i18n.Catalog, defaultLocale string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := catalog.Match(c.Query(LangParam), c.GetHeader("Accept-Language"), defaultLocale)
		c.Set(ContextKeyLocale, tag)
		c.Set(ContextKeyCatalog, catalog)
		c.Header("Content-Language", tag.String())
		c.Next()
	}
}

// LocaleFrom returns the tag set by Locale, or the base locale
func LocaleFrom(c *gin.Context) language.Tag {
	if value, exists := c.Get(ContextKeyLocale); exists {
		if tag, ok := value.(language.Tag); ok {
			return tag
		}
	}
	return language.MustParse(i18n.BaseLocale)
}

// CatalogFrom returns the catalog set by Locale
func CatalogFrom(c *gin.Context) (*i18n.Catalog, bool) {
	value, exists := c.Get(ContextKeyCatalog)
	if !exists {
		return nil, false
	}
	catalog, ok := value.(*i18n.Catalog)
	return catalog, ok
}
