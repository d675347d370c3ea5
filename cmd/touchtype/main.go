// Package main provides the CLI entrypoint for touchtype.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/touchtype/internal/config"
	"github.com/verte-zerg/touchtype/internal/generator"
	"github.com/verte-zerg/touchtype/internal/model"
	"github.com/verte-zerg/touchtype/internal/stats"
	"github.com/verte-zerg/touchtype/internal/tui"
)

var (
	practiceDict          string
	practiceMode          string
	practiceSeed          int64
	practiceCustomWords   int
	practiceCustomLetters string
	practiceDebug         bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "touchtype",
		Short:         "Terminal touch typing practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.PersistentFlags().StringVar(&practiceDict, "dict", "", "word list file or imported .db (default: bundled list)")
	rootCmd.Flags().StringVar(&practiceMode, "mode", "", "start this mode directly instead of showing the menu")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "random seed for passages (0: time based)")
	rootCmd.Flags().IntVar(&practiceCustomWords, "custom-words", config.DefaultCustomWords, "prefilled word count for the custom mode")
	rootCmd.Flags().StringVar(&practiceCustomLetters, "custom-letters", "", "prefilled characters for the custom mode")
	rootCmd.Flags().BoolVar(&practiceDebug, "debug", false, "write a debug log to "+config.DefaultLogPath())

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newDictCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dict", &practiceDict, fileCfg.Practice.Dict)
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)
	applyIntConfig(cmd, "custom-words", &practiceCustomWords, fileCfg.Practice.CustomWords)
	applyStringConfig(cmd, "custom-letters", &practiceCustomLetters, fileCfg.Practice.CustomLetters)

	if err := validateConfig(); err != nil {
		return err
	}
	modes, err := config.Modes(fileCfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	var startMode *model.Mode
	if practiceMode != "" {
		mode, err := resolveMode(practiceMode, modes)
		if err != nil {
			return err
		}
		startMode = &mode
	}

	if err := checkTerminal(os.Stdout); err != nil {
		return err
	}

	words, err := loadDictionary(cmd.Context(), practiceDict)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(practiceDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	m := tui.NewModel(tui.Options{
		Modes:         modes,
		Generator:     generator.New(words, practiceSeed),
		StartMode:     startMode,
		CustomWords:   practiceCustomWords,
		CustomLetters: practiceCustomLetters,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if fm, ok := final.(*tui.Model); ok {
		if results := fm.Results(); len(results) > 0 {
			return stats.RenderResult(cmd.OutOrStdout(), results[len(results)-1])
		}
	}
	return nil
}

// resolveMode matches a mode key exactly, then falls back to the best fuzzy
// match over the keys.
func resolveMode(name string, modes []model.Mode) (model.Mode, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	keys := make([]string, len(modes))
	for i, mode := range modes {
		if mode.Key == name {
			return mode, nil
		}
		keys[i] = mode.Key
	}
	matches := fuzzy.Find(name, keys)
	if len(matches) == 0 {
		return model.Mode{}, fmt.Errorf("unknown mode %q (available: %s)", name, strings.Join(keys, ", "))
	}
	return modes[matches[0].Index], nil
}

func checkTerminal(f *os.File) error {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		return nil
	}
	if width < tui.MinWidth || height < tui.MinHeight {
		return fmt.Errorf("terminal window too small: %dx%d (minimum %dx%d required)", width, height, tui.MinWidth, tui.MinHeight)
	}
	return nil
}

// setupLogging routes the standard logger to a file in debug mode and
// discards it otherwise so the alt screen stays intact.
func setupLogging(debug bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	path := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "touchtype")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}, nil
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
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
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

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# touchtype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# dict = ""               # Word list file or imported .db (default: bundled list)
# mode = ""               # Start this mode directly, e.g. "novice"
# seed = 0                # Random seed for passages (0: time based)
# custom-words = %d       # Prefilled word count for the custom mode
# custom-letters = ""     # Prefilled characters for the custom mode

# Extra drills appear in the menu after the built-in modes.
# [[modes]]
# key = "vowels"
# name = "Vowels - Home Row + Vowels"
# words = 20
# letters = %q
`,
		config.DefaultCustomWords,
		config.DefaultCustomLetters+"euio",
	)
}

func validateConfig() error {
	if practiceCustomWords <= 0 {
		return fmt.Errorf("--custom-words must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
