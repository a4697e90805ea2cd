package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"

	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// BaseLocale is the locale every other catalog falls back to
const BaseLocale = "en-US"

// Message keys for presentation labels
const (
	KeySubjectRetake  = "subject.retake"
	KeySubjectNew     = "subject.new"
	KeyTableName      = "table.name"
	KeyTableGrade     = "table.grade"
	KeyTableUnits     = "table.units"
	KeyTableStatus    = "table.status"
	KeyTablePoints    = "table.points"
	KeySemesterGPA    = "result.semester_gpa"
	KeyCumulativeGPA  = "result.cumulative_gpa"
	KeyTotalUnits     = "result.total_units"
	KeySemesterPoints = "result.semester_points"
	KeyRetakeUnits    = "result.retake_units"
	KeyScaleTitle     = "scale.title"
)

type localeFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// Catalog holds label text for every supported locale
type Catalog struct {
	messages map[language.Tag]map[string]string
	tags     []language.Tag
	matcher  language.Matcher
	builder  *catalog.Builder
}

// Load reads the locale files embedded in the binary
func Load() (*Catalog, error) {
	return LoadFromFS(embeddedLocales)
}

// LoadFromFS reads locales/*.yaml from the provided filesystem
func LoadFromFS(localeFS fs.FS) (*Catalog, error) {
	paths, err := fs.Glob(localeFS, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob locale files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no locale files found")
	}
	sort.Strings(paths)

	c := &Catalog{
		messages: map[language.Tag]map[string]string{},
		builder:  catalog.NewBuilder(catalog.Fallback(language.MustParse(BaseLocale))),
	}

	for _, path := range paths {
		data, err := fs.ReadFile(localeFS, path)
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", path, err)
		}

		var file localeFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", path, err)
		}

		tag, err := language.Parse(strings.TrimSpace(file.Locale))
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", path, err)
		}
		if _, exists := c.messages[tag]; exists {
			return nil, fmt.Errorf("locale %s defined twice", tag)
		}
		if len(file.Messages) == 0 {
			return nil, fmt.Errorf("locale %s: messages are required", path)
		}

		c.messages[tag] = file.Messages
		for key, value := range file.Messages {
			if err := c.builder.SetString(tag, key, value); err != nil {
				return nil, fmt.Errorf("locale %s key %q: %w", tag, key, err)
			}
		}
	}

	base := language.MustParse(BaseLocale)
	if _, ok := c.messages[base]; !ok {
		return nil, fmt.Errorf("base locale %s is not defined", BaseLocale)
	}

	// The matcher treats the first tag as the default
	c.tags = append(c.tags, base)
	for tag := range c.messages {
		if tag != base {
			c.tags = append(c.tags, tag)
		}
	}
	rest := c.tags[1:]
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// Tags returns the supported locales, base locale first
func (c *Catalog) Tags() []language.Tag {
	out := make([]language.Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Match picks the best supported locale. Each preference may be a single tag
// ("ar") or an Accept-Language header value; earlier preferences win and
// blank or unparsable ones are skipped.
func (c *Catalog) Match(preferences ...string) language.Tag {
	for _, pref := range preferences {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		desired, _, err := language.ParseAcceptLanguage(pref)
		if err != nil || len(desired) == 0 {
			continue
		}
		_, index, confidence := c.matcher.Match(desired...)
		if confidence != language.No {
			return c.tags[index]
		}
	}
	return c.tags[0]
}

// Printer returns a message printer bound to this catalog
func (c *Catalog) Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(c.builder))
}

// Text returns the label for key in the given locale
func (c *Catalog) Text(tag language.Tag, key string) string {
	return c.Printer(tag).Sprintf(key)
}

// Has reports whether key is defined for the locale or the base locale
func (c *Catalog) Has(tag language.Tag, key string) bool {
	if _, ok := c.messages[tag][key]; ok {
		return true
	}
	_, ok := c.messages[c.tags[0]][key]
	return ok
}

// RetakeLabel returns the status label shown for a subject
func (c *Catalog) RetakeLabel(tag language.Tag, isRetake bool) string {
	if isRetake {
		return c.Text(tag, KeySubjectRetake)
	}
	return c.Text(tag, KeySubjectNew)
}

// ValidationMessage localizes a validation error. It looks up
// error.<field>.<reason>, then error.<field>, then falls back to the error's
// own message.
func (c *Catalog) ValidationMessage(tag language.Tag, vErr *apperrors.ValidationError) string {
	if vErr == nil {
		return ""
	}
	for _, key := range []string{
		"error." + vErr.Field + "." + string(vErr.Reason),
		"error." + vErr.Field,
	} {
		if c.Has(tag, key) {
			return c.Text(tag, key)
		}
	}
	return vErr.Error()
}
