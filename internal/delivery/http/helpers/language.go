package helpers

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// RequestLanguage picks the content language: the "language" query parameter, then the
// highest ranked Accept-Language entry, then fallback. Only an explicit base language
// counts, so wildcards fall through.
func RequestLanguage(r *http.Request, fallback string) string {
	if q := strings.TrimSpace(r.URL.Query().Get("language")); q != "" {
		if tag, err := language.Parse(q); err == nil {
			if base, conf := tag.Base(); conf == language.Exact {
				return base.String()
			}
		}
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err == nil {
		for _, tag := range tags {
			if base, conf := tag.Base(); conf == language.Exact {
				return base.String()
			}
		}
	}
	return fallback
}
