// Package locale resolves the active locale and renders catalog messages.
package locale

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"
)

// SystemLanguage selects the locale from the host environment.
const SystemLanguage = "systemlanguage"

// ErrLocaleUnset is returned when the host locale is requested but LANG is empty.
var ErrLocaleUnset = errors.New("LANG is not set")

// languages maps CLI language values to catalog codes.
var languages = map[string]string{
	"en_US":        "en_US",
	"de_DE":        "de_DE",
	"fr_Fr":        "fr_FR",
	SystemLanguage: SystemLanguage,
}

// Languages returns the accepted CLI language values.
func Languages() []string {
	out := make([]string, 0, len(languages))
	for name := range languages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsLanguage reports whether name is an accepted CLI language value.
func IsLanguage(name string) bool {
	_, ok := languages[name]
	return ok
}

type hostEnv struct {
	Lang string `env:"LANG"`
}

// Resolve maps a CLI language value to a catalog code. environ overrides the
// process environment when non-nil.
func Resolve(lang string, environ map[string]string) (string, error) {
	code, ok := languages[lang]
	if !ok {
		return "", fmt.Errorf("unknown language %q (available: %s)", lang, strings.Join(Languages(), ", "))
	}
	if code != SystemLanguage {
		return code, nil
	}
	return HostLocale(environ)
}

// HostLocale reads LANG and strips the charset suffix.
func HostLocale(environ map[string]string) (string, error) {
	var host hostEnv
	opts := env.Options{Environment: environ}
	if err := env.ParseWithOptions(&host, opts); err != nil {
		return "", fmt.Errorf("failed to read environment: %w", err)
	}
	code, _, _ := strings.Cut(strings.TrimSpace(host.Lang), ".")
	if code == "" {
		return "", ErrLocaleUnset
	}
	return code, nil
}
