// Package i18n provides the UI strings and date formatting for the
// supported locales: Ukrainian (uk-UA) and English, the fallback.
package i18n

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/uk_UA"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// Key identifies a UI string.
type Key string

const (
	Header       Key = "header"
	Counter      Key = "counter" // {0} done, {1} total
	OpenGallery  Key = "open_gallery"
	GalleryTitle Key = "gallery_title"
	GrantAccess  Key = "grant_access"
	Found        Key = "found" // cardinal, {0} count
	Empty        Key = "empty"
	LoadFailed   Key = "load_failed"
	Back         Key = "back"
)

var supported = []language.Tag{
	language.English, // fallback, must stay first
	language.MustParse("uk-UA"),
}

// dateLayouts are the numeric calendar dates with a four-digit year, keyed by
// translator locale. The locales' own short dates use a two-digit year.
var dateLayouts = map[string]string{
	"en":    "1/2/2006",
	"uk_UA": "02.01.2006",
}

// Catalog is a locale-bound set of UI strings and formatters.
type Catalog struct {
	tag   language.Tag
	trans ut.Translator
	loc   *time.Location
}

// New returns the catalog best matching locale, a BCP 47 tag such as "uk-UA".
// Unsupported languages get English. Dates are shown in loc; nil means time.Local.
func New(locale string, loc *time.Location) (*Catalog, error) {
	want, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	_, idx, conf := language.NewMatcher(supported).Match(want)
	if conf == language.No {
		idx = 0
	}

	fallback := en.New()
	uni := ut.New(fallback, fallback, uk_UA.New())
	if err := register(uni); err != nil {
		return nil, err
	}

	id := "en"
	if idx == 1 {
		id = "uk_UA"
	}
	trans, ok := uni.GetTranslator(id)
	if !ok {
		return nil, fmt.Errorf("no translator for %s", id)
	}

	if loc == nil {
		loc = time.Local
	}
	return &Catalog{tag: supported[idx], trans: trans, loc: loc}, nil
}

// Tag returns the matched locale.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// T returns the string for key with {n} placeholders filled from params.
// Missing keys render as the key itself.
func (c *Catalog) T(key Key, params ...string) string {
	s, err := c.trans.T(key, params...)
	if err != nil {
		return string(key)
	}
	return s
}

// Counter renders the checklist progress line.
func (c *Catalog) Counter(done, total int) string {
	return c.T(Counter, strconv.Itoa(done), strconv.Itoa(total))
}

// Found renders the screenshot count with the locale's plural form.
func (c *Catalog) Found(n int) string {
	s, err := c.trans.C(Found, float64(n), 0, strconv.Itoa(n))
	if err != nil {
		return string(Found)
	}
	return s
}

// FormatDate renders t as the locale's numeric date and medium time,
// "16.10.2026, 14:05:09" in uk-UA.
func (c *Catalog) FormatDate(t time.Time) string {
	t = t.In(c.loc)
	layout, ok := dateLayouts[c.trans.Locale()]
	if !ok {
		return c.trans.FmtDateShort(t) + ", " + c.trans.FmtTimeMedium(t)
	}
	return t.Format(layout) + ", " + c.trans.FmtTimeMedium(t)
}

type entry struct {
	key  Key
	text string
}

type plural struct {
	key  Key
	rule locales.PluralRule
	text string
}

func register(uni *ut.UniversalTranslator) error {
	for id, tr := range translations {
		trans, ok := uni.GetTranslator(id)
		if !ok {
			return fmt.Errorf("no translator for %s", id)
		}
		for _, e := range tr.texts {
			if err := trans.Add(e.key, e.text, false); err != nil {
				return fmt.Errorf("add %s/%s: %w", id, e.key, err)
			}
		}
		for _, p := range tr.plurals {
			if err := trans.AddCardinal(p.key, p.text, p.rule, false); err != nil {
				return fmt.Errorf("add cardinal %s/%s: %w", id, p.key, err)
			}
		}
	}
	if err := uni.VerifyTranslations(); err != nil {
		return fmt.Errorf("verify translations: %w", err)
	}
	return nil
}
