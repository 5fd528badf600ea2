package domain

import "sort"

// Translation holds the language-specific fields of an event.
type Translation struct {
	Title            string   `json:"title"`
	Slug             string   `json:"slug"`
	ShortDescription string   `json:"short_description"`
	Location         string   `json:"location"`
	LocationLat      *float64 `json:"location_lat,omitempty"`
	LocationLng      *float64 `json:"location_lng,omitempty"`
}

// Translations maps a language code (e.g. "en", "de") to its Translation.
type Translations map[string]Translation

// Languages returns the language codes in sorted order.
func (t Translations) Languages() []string {
	langs := make([]string, 0, len(t))
	for lang := range t {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Get returns the translation for lang, falling back to fallback and then to the
// first language in sorted order. The returned language code is the one actually used.
func (t Translations) Get(lang, fallback string) (Translation, string, bool) {
	if tr, ok := t[lang]; ok {
		return tr, lang, true
	}
	if tr, ok := t[fallback]; ok {
		return tr, fallback, true
	}
	for _, l := range t.Languages() {
		return t[l], l, true
	}
	return Translation{}, "", false
}

// Title returns the title in lang with the same fallback rules as Get.
func (t Translations) Title(lang, fallback string) string {
	tr, _, _ := t.Get(lang, fallback)
	return tr.Title
}
