// Package locale supplies translated widget text from embedded TOML message files.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var messages embed.FS

// Catalog resolves message ids for one language. English is used for any id
// the language does not translate.
type Catalog struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	tag       language.Tag
}

// New loads the embedded catalogs and selects lang, a BCP 47 tag such as
// "en" or "de-AT". An empty lang selects English.
func New(lang string) (*Catalog, error) {
	tag := language.English
	if lang != "" {
		var err error
		tag, err = language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("locale: parse language %q: %w", lang, err)
		}
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messages, "messages/*.toml")
	if err != nil {
		return nil, fmt.Errorf("locale: list messages: %w", err)
	}
	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(messages, file); err != nil {
			return nil, fmt.Errorf("locale: load %s: %w", path.Base(file), err)
		}
	}

	return &Catalog{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		tag:       tag,
	}, nil
}

// Text returns the translation of id, or fallback if no catalog has it.
func (c *Catalog) Text(id, fallback string) string {
	msg, _ := c.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:      id,
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if msg == "" {
		return fallback
	}
	return msg
}

// Language returns the requested language tag.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Languages returns the languages with an embedded catalog.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}
