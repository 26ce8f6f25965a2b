package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/crystal-galaxy/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

// usageError marks flag and argument mistakes so main can exit 2
type usageError struct{ err error }

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

var rootCmd = &cobra.Command{
	Use:   "galaxy",
	Short: "Render a music library as an interactive crystal galaxy",
	Long: `Galaxy turns a music library into a navigable field of procedural
crystal bodies: geometry from track identity, detail from device
capability, choreographed camera flights between bodies.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (TOML)")
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err: err}
	})
}

// setupLogging sends the stdlib logger to a file when debugging, and
// nowhere otherwise: the terminal belongs to the renderer
func setupLogging() error {
	if !cfg.Log.Debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(cfg.Log.Dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(cfg.Log.Dir, "galaxy.log"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}
