package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/touchtype/internal/config"
	"github.com/verte-zerg/touchtype/internal/generator"
	"github.com/verte-zerg/touchtype/internal/model"
	"github.com/verte-zerg/touchtype/internal/stats"
	"github.com/verte-zerg/touchtype/internal/store"
	"github.com/verte-zerg/touchtype/internal/wordlist"
)

var (
	importDB string
)

func isDatabasePath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}

// loadDictionary reads the configured word list. Any failure is a
// *wordlist.ResourceError.
func loadDictionary(ctx context.Context, path string) ([]string, error) {
	var words []string
	switch {
	case path == "":
		var err error
		words, err = wordlist.Embedded().Load(ctx)
		if err != nil {
			return nil, err
		}
		path = wordlist.EmbeddedName
	case isDatabasePath(path):
		if _, err := os.Stat(path); err != nil {
			return nil, &wordlist.ResourceError{Path: path, Err: err}
		}
		st, err := store.Open(path)
		if err != nil {
			return nil, &wordlist.ResourceError{Path: path, Err: err}
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
		words, err = st.Load(ctx)
		if err != nil {
			return nil, &wordlist.ResourceError{Path: path, Err: err}
		}
	default:
		var err error
		words, err = wordlist.FileSource{Path: path}.Load(ctx)
		if err != nil {
			return nil, err
		}
	}
	if len(words) == 0 {
		return nil, &wordlist.ResourceError{Path: path, Err: errors.New("word list is empty")}
	}
	return words, nil
}

func dictPathFromConfig(cmd *cobra.Command) (string, config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return "", config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	path := practiceDict
	if !cmd.Flags().Changed("dict") && fileCfg.Practice.Dict != nil {
		path = *fileCfg.Practice.Dict
	}
	return path, fileCfg, nil
}

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Manage the practice dictionary",
	}
	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import a newline-delimited word list into SQLite",
		Args:  cobra.ExactArgs(1),
		RunE:  runDictImportCmd,
	}
	importCmd.Flags().StringVar(&importDB, "db", "", "database path (default: "+config.DefaultDBPath()+")")
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check that every mode can be served by the dictionary",
		Args:  cobra.NoArgs,
		RunE:  runDictCheckCmd,
	}
	cmd.AddCommand(importCmd, checkCmd)
	return cmd
}

func runDictImportCmd(cmd *cobra.Command, args []string) error {
	words, err := wordlist.LoadWords(args[0])
	if err != nil {
		return err
	}
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if word != "" {
			kept = append(kept, word)
		}
	}
	if len(kept) == 0 {
		return fmt.Errorf("word list %s has no words", args[0])
	}

	dbPath := importDB
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	if err := st.ImportWords(cmd.Context(), kept); err != nil {
		return fmt.Errorf("failed to import words: %w", err)
	}
	if skipped := len(words) - len(kept); skipped > 0 {
		logErrf("Skipped %d empty lines\n", skipped)
	}
	logErrf("Imported %d words into %s\n", len(kept), dbPath)
	logErrln("Use it with: touchtype --dict", dbPath)
	return nil
}

func runDictCheckCmd(cmd *cobra.Command, _ []string) error {
	path, fileCfg, err := dictPathFromConfig(cmd)
	if err != nil {
		return err
	}
	modes, err := config.Modes(fileCfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	words, err := loadDictionary(cmd.Context(), path)
	if err != nil {
		return err
	}
	gen := generator.New(words, 1)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d words\n", len(words)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	short := 0
	if err := writeModesTable(cmd.OutOrStdout(), modes, gen, &short); err != nil {
		return err
	}
	if short > 0 {
		return fmt.Errorf("%d mode(s) need more words than the dictionary provides", short)
	}
	return nil
}

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List practice modes",
		Args:  cobra.NoArgs,
		RunE:  runModesCmd,
	}
}

func runModesCmd(cmd *cobra.Command, _ []string) error {
	path, fileCfg, err := dictPathFromConfig(cmd)
	if err != nil {
		return err
	}
	modes, err := config.Modes(fileCfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	words, err := loadDictionary(cmd.Context(), path)
	if err != nil {
		return err
	}
	var short int
	return writeModesTable(cmd.OutOrStdout(), modes, generator.New(words, 1), &short)
}

// writeModesTable prints each mode with its eligible word count and counts
// the modes the dictionary cannot serve.
func writeModesTable(w io.Writer, modes []model.Mode, gen *generator.Generator, short *int) error {
	headers := []string{"#", "Key", "Name", "Words", "Eligible", "Letters"}
	rows := make([][]string, 0, len(modes))
	for i, mode := range modes {
		if mode.Custom {
			rows = append(rows, []string{strconv.Itoa(i + 1), mode.Key, mode.Name, "-", "-", "(interactive)"})
			continue
		}
		eligible := len(gen.Eligible(model.NewCharset(mode.Letters)))
		mark := ""
		if eligible < mode.Words {
			mark = " !"
			*short++
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			mode.Key,
			mode.Name,
			strconv.Itoa(mode.Words),
			strconv.Itoa(eligible) + mark,
			mode.Letters,
		})
	}
	for _, line := range stats.FormatTable(headers, rows, map[int]bool{0: true, 3: true, 4: true}) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}
