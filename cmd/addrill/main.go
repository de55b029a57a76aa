// Package main provides the CLI entrypoint for addrill.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/addrill/internal/config"
	"github.com/verte-zerg/addrill/internal/generator"
	"github.com/verte-zerg/addrill/internal/locale"
	"github.com/verte-zerg/addrill/internal/model"
	"github.com/verte-zerg/addrill/internal/session"
)

const (
	defaultCount    = 10
	defaultLanguage = locale.SystemLanguage
)

var version = "0.1.0"

type drillFlags struct {
	count     int
	variant   variantFlag
	language  languageFlag
	localeDir string
	seed      int64
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &drillFlags{language: languageFlag{value: defaultLanguage}}
	rootCmd := &cobra.Command{
		Use:           "addrill",
		Short:         "Addition drill for the terminal",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDrillCmd(cmd, flags)
		},
	}

	rootCmd.Flags().IntVarP(&flags.count, "count", "c", defaultCount, "number of exercises")
	rootCmd.Flags().VarP(&flags.variant, "exercise-type", "e", "exercise type: "+strings.Join(variantNames(), ", "))
	rootCmd.Flags().VarP(&flags.language, "language", "l", "language: "+strings.Join(locale.Languages(), ", "))
	rootCmd.Flags().StringVar(&flags.localeDir, "locale-dir", locale.DefaultDir, "base directory of message catalogs")
	rootCmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.SetFlagErrorFunc(usageError)

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runDrillCmd(cmd *cobra.Command, flags *drillFlags) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "count", &flags.count, fileCfg.Drill.Count)
	applyStringConfig(cmd, "locale-dir", &flags.localeDir, fileCfg.Drill.LocaleDir)
	if fileCfg.Drill.Language != nil && !cmd.Flags().Changed("language") {
		if err := flags.language.Set(*fileCfg.Drill.Language); err != nil {
			return fmt.Errorf("invalid language in config: %w", err)
		}
	}

	cfg := model.Config{
		Count:     flags.count,
		Variant:   flags.variant.value,
		Language:  flags.language.value,
		LocaleDir: flags.localeDir,
		Seed:      flags.seed,
	}
	if err := validateConfig(cfg); err != nil {
		return usageError(cmd, err)
	}

	code, err := locale.Resolve(cfg.Language, nil)
	if err != nil {
		if errors.Is(err, locale.ErrLocaleUnset) {
			return fmt.Errorf("cannot use --language %s: %w", locale.SystemLanguage, err)
		}
		return err
	}
	messages, err := locale.Load(cfg.LocaleDir, code)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	out := cmd.OutOrStdout()
	drill := session.New(session.Options{
		Count:    cfg.Count,
		Variant:  cfg.Variant,
		Source:   generator.NewRandomSource(cfg.Seed),
		Messages: messages,
		In:       cmd.InOrStdin(),
		Out:      out,
		Color:    shouldUseColor(out),
	})
	return drill.Run()
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := writeDefaultConfig(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func writeDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# addrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[drill]
# count = %d                  # Number of exercises
# language = %q     # One of: %s
# locale-dir = %q         # Base directory of message catalogs
`,
		defaultCount,
		defaultLanguage,
		strings.Join(locale.Languages(), ", "),
		locale.DefaultDir,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Variant == 0 {
		return fmt.Errorf("--exercise-type is required (one of %s)", strings.Join(variantNames(), ", "))
	}
	if cfg.Count <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	if cfg.LocaleDir == "" {
		return fmt.Errorf("--locale-dir must not be empty")
	}
	return nil
}

// usageError prints the usage text to stderr and passes err through.
func usageError(cmd *cobra.Command, err error) error {
	cmd.PrintErrln(cmd.UsageString())
	return err
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
