// Package cmd implements the Cobra-based CLI for gosctl.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	repoRoot   string
	verbosity  int
	jsonOutput bool // --json flag for machine-readable output
	ciMode     bool
)

// rootCmd is the top-level command for gosctl.
var rootCmd = &cobra.Command{
	Use:   "gosctl",
	Short: "Project GOS scaffold CLI – safe structure merge for analysis repos",
	Long: `gosctl applies the fixed Project GOS layout onto an existing Git repository:

  core/      engines (catma, updc, game), scoring, spice, mappers, schemas
  pipeline/  ingest → normalize → enrich → graph
  sim/       tick-loop simulation
  api/       HTTP service surface
  storage/   SQL DDL and graph constraints
  ui/ ops/   dashboard placeholder and local compose stack

Existing files are never overwritten by default; --force replaces differing
files after saving a timestamped backup next to the original. The run lands
on a dedicated branch, commits only when the tree actually changed, and
opens a pull request when the gh CLI is available.

Configuration lives in gosctl.yaml (all fields optional).

Workflow: validate → scaffold`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: gosctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&repoRoot, "repo-root", ".", "path to the target repo root")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "increase verbosity (-v, -vv)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON (machine-readable)")
	rootCmd.PersistentFlags().BoolVar(&ciMode, "ci", false, "strict non-interactive mode (skips prompts)")

	_ = viper.BindPFlag("repo_root", rootCmd.PersistentFlags().Lookup("repo-root"))
	_ = viper.BindPFlag("ci", rootCmd.PersistentFlags().Lookup("ci"))
}

func effectiveCIMode() bool {
	if ciMode {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(os.Getenv("CI")), "true")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("gosctl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}
	viper.SetEnvPrefix("GOSCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbosity > 0 {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
