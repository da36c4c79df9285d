// Package i18n holds the localized strings used by controls and the gallery.
//
// Bundles are embedded YAML files keyed by locale. Lookups resolve against the
// active locale, then the fallback locale, and finally degrade to the key
// itself, so Translate never fails.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/tr"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/bookmeza/internal/logger"
	bookmezaerrors "github.com/alexisbeaulieu97/bookmeza/pkg/errors"
)

// FallbackLocale is used whenever a key or locale is missing.
const FallbackLocale = "en"

//go:embed locales/*.yaml
var bundles embed.FS

var localeConstructors = map[string]func() locales.Translator{
	"en": en.New,
	"tr": tr.New,
}

// Store is the localization resource store.
type Store struct {
	mu     sync.RWMutex
	uni    *ut.UniversalTranslator
	locale string
	log    *logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLocale sets the initial active locale.
func WithLocale(locale string) Option {
	return func(s *Store) {
		s.locale = Normalize(locale)
	}
}

// WithLogger attaches a logger used to report missing keys.
func WithLogger(log *logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New loads the embedded bundles and returns a Store.
func New(opts ...Option) (*Store, error) {
	s := &Store{locale: FallbackLocale}
	for _, opt := range opts {
		opt(s)
	}
	if s.locale == "" {
		s.locale = FallbackLocale
	}

	uni := ut.New(en.New())
	for _, name := range sortedLocales() {
		if err := uni.AddTranslator(localeConstructors[name](), true); err != nil {
			return nil, fmt.Errorf("register locale %s: %w", name, err)
		}
		if err := loadBundle(uni, name); err != nil {
			return nil, err
		}
	}
	s.uni = uni
	return s, nil
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns a shared English store. The embedded bundles are part of
// the binary, so a load failure is a programming error.
func Default() *Store {
	defaultOnce.Do(func() {
		store, err := New()
		if err != nil {
			panic(fmt.Sprintf("i18n: load embedded bundles: %v", err))
		}
		defaultStore = store
	})
	return defaultStore
}

func loadBundle(uni *ut.UniversalTranslator, locale string) error {
	file := path.Join("locales", locale+".yaml")
	data, err := bundles.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read bundle %s: %w", file, err)
	}

	var entries map[string]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return bookmezaerrors.NewParseError(file, 0, err)
	}

	trans, found := uni.GetTranslator(locale)
	if !found {
		return fmt.Errorf("locale %s not registered", locale)
	}
	for key, text := range entries {
		if err := trans.Add(key, text, true); err != nil {
			return fmt.Errorf("add %s/%s: %w", locale, key, err)
		}
	}
	return nil
}

// Translate resolves key against the active locale, then FallbackLocale.
// A key missing from both is returned unchanged.
func (s *Store) Translate(key string) string {
	if s == nil {
		return key
	}
	locale := s.Locale()

	if trans, found := s.uni.GetTranslator(locale); found {
		if text, err := trans.T(key); err == nil {
			return text
		}
	}

	if text, err := s.uni.GetFallback().T(key); err == nil {
		if locale != FallbackLocale {
			s.log.WithFields(map[string]any{"key": key, "locale": locale}).Debug("translation served from fallback locale")
		}
		return text
	}

	s.log.WithFields(map[string]any{"key": key, "locale": locale}).Debug("translation missing")
	return key
}

// Locale returns the active locale.
func (s *Store) Locale() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.locale
}

// SetLocale switches the active locale. Unconfigured locales are accepted and
// served from the fallback bundle.
func (s *Store) SetLocale(locale string) {
	normalized := Normalize(locale)
	if normalized == "" {
		normalized = FallbackLocale
	}
	s.mu.Lock()
	s.locale = normalized
	s.mu.Unlock()
}

// Toggle flips between English and Turkish and returns the new locale.
func (s *Store) Toggle() string {
	next := "tr"
	if s.Locale() == "tr" {
		next = "en"
	}
	s.SetLocale(next)
	return next
}

// Locales lists the locales that have a bundle.
func (s *Store) Locales() []string {
	return sortedLocales()
}

// Supported reports whether a bundle exists for locale.
func Supported(locale string) bool {
	_, ok := localeConstructors[Normalize(locale)]
	return ok
}

// Normalize reduces a locale identifier such as "tr_TR.UTF-8" or "en-GB" to
// its base language ("tr", "en"). Unparseable input yields "".
func Normalize(locale string) string {
	raw := strings.TrimSpace(locale)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// Detect derives the locale from the host environment, consulting LC_ALL,
// LC_MESSAGES and LANG in that order. It returns FallbackLocale when none of
// them names a language.
func Detect(lookup func(string) string) string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if locale := Normalize(lookup(key)); locale != "" {
			return locale
		}
	}
	return FallbackLocale
}

func sortedLocales() []string {
	names := make([]string, 0, len(localeConstructors))
	for name := range localeConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
