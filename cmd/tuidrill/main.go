// Package main provides the CLI entrypoint for tuidrill.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/tuidrill/internal/audio"
	"github.com/verte-zerg/tuidrill/internal/catalog"
	"github.com/verte-zerg/tuidrill/internal/config"
	"github.com/verte-zerg/tuidrill/internal/logger"
	"github.com/verte-zerg/tuidrill/internal/model"
	"github.com/verte-zerg/tuidrill/internal/stats"
	"github.com/verte-zerg/tuidrill/internal/store"
	"github.com/verte-zerg/tuidrill/internal/tui"
)

const (
	defaultFeedbackDelay = 2 * time.Second
	defaultUnitMs        = 100
	recapMissLimit       = 5
)

var (
	drillFeedbackDelay time.Duration
	drillSound         bool
	drillSoundsDir     string
	drillUnitMs        int
	drillLogFile       string
	drillDebug         bool

	tableVocab   bool
	tableColumns int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuidrill",
		Short:         "TUI Morse code trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDrill(cmd, catalog.Morse())
		},
	}
	addDrillFlags(rootCmd)

	rootCmd.AddCommand(newVocabCmd())
	rootCmd.AddCommand(newTableCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func addDrillFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&drillFeedbackDelay, "feedback-delay", defaultFeedbackDelay, "time feedback stays on screen before the next item (0 waits for a key)")
	cmd.Flags().BoolVar(&drillSound, "sound", false, "play audio cues")
	cmd.Flags().StringVar(&drillSoundsDir, "sounds-dir", config.DefaultSoundsDir(), "directory with dot.wav, dash.wav, correct.wav and wrong.wav")
	cmd.Flags().IntVar(&drillUnitMs, "unit-ms", defaultUnitMs, "Morse timing unit in milliseconds")
	cmd.Flags().StringVar(&drillLogFile, "log-file", config.DefaultLogPath(), "log file path (empty disables logging)")
	cmd.Flags().BoolVar(&drillDebug, "debug", false, "log every judged answer")
}

func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Run the automotive terminology drill",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDrill(cmd, catalog.Vocab())
		},
	}
	addDrillFlags(cmd)
	return cmd
}

func runDrill(cmd *cobra.Command, cat *catalog.Catalog) error {
	cfg, err := resolveDrillConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("failed to open run log: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Warn("failed to close run log", zap.Error(cerr))
		}
	}()

	var player audio.Player = audio.Nop{}
	if cfg.Sound {
		wp := audio.NewWavPlayer(cfg.SoundsDir, log)
		defer wp.Close()
		player = wp
	}

	log.Info("drill starting",
		zap.String("app", cat.App),
		zap.Duration("feedback_delay", cfg.FeedbackDelay),
		zap.Bool("sound", cfg.Sound),
	)
	m := tui.NewModel(tui.Options{
		Catalog:       cat,
		Player:        player,
		Store:         st,
		Log:           log,
		FeedbackDelay: cfg.FeedbackDelay,
		Unit:          cfg.Unit,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return printRunRecap(cmd.OutOrStdout(), st, cat.App)
}

// printRunRecap reports the run once the alt screen is gone. Nothing is
// printed when no session finished.
func printRunRecap(w io.Writer, st *store.Store, app string) error {
	ctx := context.Background()
	sessions, err := st.ListSessions(ctx, app)
	if err != nil {
		return fmt.Errorf("failed to read run log: %w", err)
	}
	if len(sessions) == 0 {
		return nil
	}
	run := stats.RunMetrics(sessions)
	if _, err := fmt.Fprintf(w, "Sessions: %d  Correct: %d/%d  Accuracy: %.2f%%\n", run.Sessions, run.Correct, run.Total, run.Accuracy); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	aggs, err := st.TopMisses(ctx, app, recapMissLimit)
	if err != nil {
		return fmt.Errorf("failed to read run log: %w", err)
	}
	if err := stats.RenderMissAggregates(w, aggs); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// resolveDrillConfig merges the config file under the command's flags.
func resolveDrillConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyMillisConfig(cmd, "feedback-delay", &drillFeedbackDelay, fileCfg.Drill.FeedbackDelayMs)
	applyStringConfig(cmd, "log-file", &drillLogFile, fileCfg.Drill.LogFile)
	applyBoolConfig(cmd, "debug", &drillDebug, fileCfg.Drill.Debug)
	applyBoolConfig(cmd, "sound", &drillSound, fileCfg.Audio.Enabled)
	applyStringConfig(cmd, "sounds-dir", &drillSoundsDir, fileCfg.Audio.SoundsDir)
	applyIntConfig(cmd, "unit-ms", &drillUnitMs, fileCfg.Audio.UnitMs)

	cfg := model.Config{
		FeedbackDelay: drillFeedbackDelay,
		Sound:         drillSound,
		SoundsDir:     drillSoundsDir,
		Unit:          time.Duration(drillUnitMs) * time.Millisecond,
		LogFile:       drillLogFile,
		Debug:         drillDebug,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newTableCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the reference table",
		Args:  cobra.NoArgs,
		RunE:  runTableCmd,
	}
	cmd.Flags().BoolVar(&tableVocab, "vocab", false, "print the terminology table instead of Morse")
	cmd.Flags().IntVar(&tableColumns, "columns", 0, "entries per row (0 fits the terminal)")
	return cmd
}

func runTableCmd(cmd *cobra.Command, _ []string) error {
	if tableColumns < 0 {
		return fmt.Errorf("--columns must be >= 0")
	}
	cat := catalog.Morse()
	if tableVocab {
		cat = catalog.Vocab()
	}
	entries := cat.Reference()
	columns := tableColumns
	if columns == 0 {
		width := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		columns = stats.ReferenceColumns(entries, width)
	}
	if err := stats.RenderReference(cmd.OutOrStdout(), cat.Title, entries, columns); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
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
	if err := writeConfigTemplate(path); err != nil {
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

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
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

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyMillisConfig(cmd *cobra.Command, name string, target *time.Duration, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = time.Duration(*value) * time.Millisecond
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuidrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[drill]
# feedback-delay-ms = %d  # Feedback time before the next item (0 waits for a key)
# log-file = %q
# debug = false           # Log every judged answer

[audio]
# enabled = false         # Play audio cues
# sounds-dir = %q
# unit-ms = %d            # Morse timing unit in milliseconds
`,
		defaultFeedbackDelay.Milliseconds(),
		config.DefaultLogPath(),
		config.DefaultSoundsDir(),
		defaultUnitMs,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.FeedbackDelay < 0 {
		return fmt.Errorf("--feedback-delay must be >= 0")
	}
	if cfg.Unit <= 0 {
		return fmt.Errorf("--unit-ms must be > 0")
	}
	if cfg.Sound && cfg.SoundsDir == "" {
		return fmt.Errorf("--sounds-dir must not be empty when sound is enabled")
	}
	return nil
}
