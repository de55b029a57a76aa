package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/verte-zerg/addrill/internal/locale"
	"github.com/verte-zerg/addrill/internal/model"
)

var (
	_ pflag.Value = (*variantFlag)(nil)
	_ pflag.Value = (*languageFlag)(nil)
)

// variantFlag is a pflag.Value restricted to the supported exercise types.
type variantFlag struct {
	value model.Variant
}

func (f *variantFlag) String() string {
	if f.value == 0 {
		return ""
	}
	return f.value.String()
}

func (f *variantFlag) Set(s string) error {
	v, ok := model.ParseVariant(s)
	if !ok {
		return fmt.Errorf("must be one of %s", strings.Join(variantNames(), ", "))
	}
	f.value = v
	return nil
}

func (f *variantFlag) Type() string {
	return "type"
}

func variantNames() []string {
	variants := model.Variants()
	names := make([]string, len(variants))
	for i, v := range variants {
		names[i] = v.String()
	}
	return names
}

// languageFlag is a pflag.Value restricted to the supported languages.
type languageFlag struct {
	value string
}

func (f *languageFlag) String() string {
	return f.value
}

func (f *languageFlag) Set(s string) error {
	if !locale.IsLanguage(s) {
		return fmt.Errorf("must be one of %s", strings.Join(locale.Languages(), ", "))
	}
	f.value = s
	return nil
}

func (f *languageFlag) Type() string {
	return "language"
}
