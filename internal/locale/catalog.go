package locale

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Domain is the catalog file name inside each locale directory.
const Domain = "addrill"

// DefaultDir is the default catalog base directory.
const DefaultDir = "./locale"

// ErrCatalogNotFound is returned when no catalog exists for a locale.
var ErrCatalogNotFound = errors.New("catalog not found")

// Key identifies a catalog message.
type Key string

// Message keys used by the drill.
const (
	Prompt      Key = "PROMPT"
	Correct     Key = "CORRECT"
	Wrong       Key = "WRONG"
	OnlyNumbers Key = "ONLY_NUMBERS"
	Summary     Key = "SUMMARY"
)

// Keys lists every key a catalog must define.
func Keys() []Key {
	return []Key{Prompt, Correct, Wrong, OnlyNumbers, Summary}
}

type catalogFile struct {
	Locale   string            `toml:"locale"`
	Messages map[string]string `toml:"messages"`
}

// Catalog renders messages for one locale.
type Catalog struct {
	code    string
	tag     language.Tag
	printer *message.Printer
}

// Load reads the catalog for code from <dir>/<code>/addrill.toml.
func Load(dir, code string) (*Catalog, error) {
	if dir == "" {
		dir = DefaultDir
	}
	cat, err := LoadFromFS(os.DirFS(dir), code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return cat, nil
}

// LoadFromFS reads the catalog for code from fsys.
func LoadFromFS(fsys fs.FS, code string) (*Catalog, error) {
	code = strings.TrimSpace(code)
	if code == "" || strings.ContainsAny(code, `/\`) {
		return nil, fmt.Errorf("invalid locale code %q", code)
	}
	file := path.Join(code, Domain+".toml")
	if _, err := fs.Stat(fsys, file); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w for locale %s (expected %s)", ErrCatalogNotFound, code, file)
		}
		return nil, fmt.Errorf("failed to stat catalog: %w", err)
	}
	var parsed catalogFile
	if _, err := toml.DecodeFS(fsys, file, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", file, err)
	}
	if parsed.Locale != code {
		return nil, fmt.Errorf("catalog %s: locale %q must match directory %q", file, parsed.Locale, code)
	}

	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("parse locale tag %q: %w", code, err)
	}
	builder := catalog.NewBuilder()
	for _, key := range Keys() {
		msg, ok := parsed.Messages[string(key)]
		if !ok || strings.TrimSpace(msg) == "" {
			return nil, fmt.Errorf("catalog %s: missing message %s", file, key)
		}
		if err := builder.SetString(tag, string(key), msg); err != nil {
			return nil, fmt.Errorf("catalog %s: register %s: %w", file, key, err)
		}
	}
	return &Catalog{
		code:    code,
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builder)),
	}, nil
}

// Code returns the locale code the catalog was loaded for.
func (c *Catalog) Code() string {
	return c.code
}

// Tag returns the BCP 47 tag of the catalog.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// Format renders key with positional arguments.
func (c *Catalog) Format(key Key, args ...any) string {
	return c.printer.Sprintf(string(key), args...)
}
