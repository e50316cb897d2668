package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Translator resolves UI labels for one locale, falling back to English.
type Translator struct {
	localizer *goi18n.Localizer
	tag       language.Tag
}

func NewBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("list locale files: %w", err)
	}
	for _, entry := range entries {
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("load locale file %s: %w", entry.Name(), err)
		}
	}

	return bundle, nil
}

func NewTranslator(locale string) (*Translator, error) {
	bundle, err := NewBundle()
	if err != nil {
		return nil, err
	}

	tag := language.English
	if trimmed := strings.TrimSpace(locale); trimmed != "" {
		parsed, err := language.Parse(trimmed)
		if err != nil {
			return nil, fmt.Errorf("parse locale %q: %w", locale, err)
		}
		tag = parsed
	}

	matcher := language.NewMatcher(bundle.LanguageTags())
	matched, _, _ := matcher.Match(tag)
	base, _ := matched.Base()

	return &Translator{
		localizer: goi18n.NewLocalizer(bundle, base.String(), language.English.String()),
		tag:       tag,
	}, nil
}

func (t *Translator) Tag() language.Tag {
	return t.tag
}

// T returns the message for id. Unknown ids come back as the id itself so a
// missing translation shows up on screen instead of failing the render.
func (t *Translator) T(id string, data map[string]any) string {
	cfg := &goi18n.LocalizeConfig{MessageID: id, TemplateData: data}
	if count, ok := data["Count"]; ok {
		cfg.PluralCount = count
	}

	msg, err := t.localizer.Localize(cfg)
	if err != nil {
		return id
	}

	return msg
}
