// Package i18n localises menu titles and screen text.
//
// Message files are TOML or JSON in the go-i18n format. Until one of the
// Init functions is called every lookup returns its fallback text, so
// menus without translations work unchanged.
package i18n

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	mu      sync.RWMutex
	current *Localizer
)

// Localizer resolves message IDs for one preferred language.
type Localizer struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	lang      language.Tag
}

// MessageFile is an in-memory message file. Name must carry the language
// and format, e.g. "active.es.toml".
type MessageFile struct {
	Name    string
	Content []byte
}

func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

// New builds a Localizer from message files on disk.
func New(lang language.Tag, paths ...string) (*Localizer, error) {
	bundle := newBundle()
	for _, path := range paths {
		if _, err := bundle.LoadMessageFile(path); err != nil {
			return nil, fmt.Errorf("i18n: load %s: %w", path, err)
		}
	}
	return newLocalizer(bundle, lang), nil
}

// NewFromBytes builds a Localizer from in-memory message files.
func NewFromBytes(lang language.Tag, files ...MessageFile) (*Localizer, error) {
	bundle := newBundle()
	for _, f := range files {
		if _, err := bundle.ParseMessageFileBytes(f.Content, f.Name); err != nil {
			return nil, fmt.Errorf("i18n: parse %s: %w", f.Name, err)
		}
	}
	return newLocalizer(bundle, lang), nil
}

func newLocalizer(bundle *i18n.Bundle, lang language.Tag) *Localizer {
	return &Localizer{
		bundle:    bundle,
		localizer: i18n.NewLocalizer(bundle, lang.String(), language.English.String()),
		lang:      lang,
	}
}

// Language returns the preferred language.
func (l *Localizer) Language() language.Tag {
	return l.lang
}

// WithLanguage returns a Localizer over the same messages for another language.
func (l *Localizer) WithLanguage(lang language.Tag) *Localizer {
	return newLocalizer(l.bundle, lang)
}

// Localize returns the translation of id, or fallback when the ID is empty
// or has no message in any loaded language.
func (l *Localizer) Localize(id, fallback string) string {
	if l == nil || id == "" {
		return fallback
	}

	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

// Init loads message files from disk into the package-level localizer.
func Init(lang language.Tag, paths ...string) error {
	l, err := New(lang, paths...)
	if err != nil {
		return err
	}
	setCurrent(l)
	return nil
}

// InitFromBytes loads in-memory message files into the package-level localizer.
func InitFromBytes(lang language.Tag, files ...MessageFile) error {
	l, err := NewFromBytes(lang, files...)
	if err != nil {
		return err
	}
	setCurrent(l)
	return nil
}

// SetWithCode switches the package-level language from a BCP 47 code.
func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return fmt.Errorf("i18n: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = newLocalizer(newBundle(), lang)
		return nil
	}
	current = current.WithLanguage(lang)
	return nil
}

// Localize translates id with the package-level localizer.
func Localize(id, fallback string) string {
	mu.RLock()
	l := current
	mu.RUnlock()
	return l.Localize(id, fallback)
}

func setCurrent(l *Localizer) {
	mu.Lock()
	current = l
	mu.Unlock()
}
