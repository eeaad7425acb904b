package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/project-gos/gosctl/internal/config"
	"github.com/project-gos/gosctl/internal/exitcode"
	"github.com/project-gos/gosctl/internal/output"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate gosctl.yaml against the packaged schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command) error {
	output.Init(verbosity > 0, jsonOutput)

	path := cfgFile
	if path == "" {
		path = filepath.Join(repoRoot, "gosctl.yaml")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			output.Info("no gosctl.yaml found; defaults apply and are always valid")
			return nil
		}
		return err
	}

	vr, err := config.ValidateYAML(data)
	if err != nil {
		return err
	}
	if !vr.Valid {
		for _, e := range vr.Errors {
			output.Error("invalid", "field", e.Field, "error", e.Description)
		}
		if jsonOutput {
			output.JSON(vr)
		}
		return exitcode.Wrap(exitcode.Validation, fmt.Errorf("%s failed schema validation", path))
	}

	output.Success(path + " is valid")
	if jsonOutput {
		output.JSON(vr)
	}
	return nil
}
