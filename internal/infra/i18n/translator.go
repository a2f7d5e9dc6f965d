package i18n

import (
	"embed"
	"encoding/json"
	"io/fs"
	"sort"
	"strings"

	"komani-booking/internal/pkg/errs"
)

//go:embed messages/*.json
var messagesFS embed.FS

const fallbackLanguage = "en"

// Translator resolves dotted message keys ("Booking.successTitle",
// "ToursData.boat-tour.inclusions") against per-language bundles embedded at
// build time. Unknown languages fall back to English; unknown keys fall back
// to the key itself so a missing translation never blanks the display.
type Translator struct {
	byLanguage map[string]map[string]any
}

func NewTranslator() (*Translator, error) {
	entries, err := fs.Glob(messagesFS, "messages/*.json")
	if err != nil {
		return nil, errs.Wrap(err, "list message bundles")
	}

	tr := &Translator{byLanguage: make(map[string]map[string]any, len(entries))}
	for _, name := range entries {
		raw, err := messagesFS.ReadFile(name)
		if err != nil {
			return nil, errs.Wrap(err, "read message bundle "+name)
		}
		var bundle map[string]any
		if err := json.Unmarshal(raw, &bundle); err != nil {
			return nil, errs.Wrap(err, "decode message bundle "+name)
		}
		lang := strings.TrimSuffix(strings.TrimPrefix(name, "messages/"), ".json")
		tr.byLanguage[lang] = bundle
	}

	if _, ok := tr.byLanguage[fallbackLanguage]; !ok {
		return nil, errs.New("missing fallback message bundle: " + fallbackLanguage)
	}
	return tr, nil
}

func (tr *Translator) Languages() []string {
	out := make([]string, 0, len(tr.byLanguage))
	for lang := range tr.byLanguage {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

// Normalize maps an arbitrary locale hint to a supported language tag.
func (tr *Translator) Normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	if _, ok := tr.byLanguage[locale]; ok {
		return locale
	}
	return fallbackLanguage
}

// T returns the message for key, with {placeholder} interpolation.
func (tr *Translator) T(lang, key string, args map[string]string) string {
	value, ok := tr.lookup(lang, key)
	if !ok {
		value, ok = tr.lookup(fallbackLanguage, key)
	}
	msg, isString := value.(string)
	if !ok || !isString {
		return key
	}
	for name, v := range args {
		msg = strings.ReplaceAll(msg, "{"+name+"}", v)
	}
	return msg
}

// Raw returns the structured value behind key, such as an inclusion list.
func (tr *Translator) Raw(lang, key string) (any, bool) {
	if value, ok := tr.lookup(lang, key); ok {
		return value, true
	}
	return tr.lookup(fallbackLanguage, key)
}

// StringList is Raw narrowed to a list of strings, which is the shape every
// inclusion list has.
func (tr *Translator) StringList(lang, key string) []string {
	value, ok := tr.Raw(lang, key)
	if !ok {
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (tr *Translator) lookup(lang, key string) (any, bool) {
	bundle, ok := tr.byLanguage[lang]
	if !ok {
		return nil, false
	}
	var current any = bundle
	for _, part := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = node[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
