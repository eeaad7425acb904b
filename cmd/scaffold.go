package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/project-gos/gosctl/internal/config"
	"github.com/project-gos/gosctl/internal/exitcode"
	"github.com/project-gos/gosctl/internal/git"
	"github.com/project-gos/gosctl/internal/output"
	"github.com/project-gos/gosctl/internal/publish"
	"github.com/project-gos/gosctl/internal/scaffold"
	gostemplate "github.com/project-gos/gosctl/internal/template"
)

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Apply the GOS structure onto the repository",
	Long: `Applies the templated GOS directory tree and stub files under the
configured target subdirectory, then commits the result on the scaffold
branch and opens a pull request (best effort).

Default mode never touches existing files. With --force, a file whose
content differs from the template is backed up as <path>.bak.<timestamp>
before being replaced; byte-identical files are left alone. The run is
idempotent and safe to re-run after a partial failure.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(cmd)
	},
}

var (
	scaffoldForce  bool
	scaffoldYes    bool
	scaffoldSkipPR bool
	scaffoldDryRun bool
)

func init() {
	scaffoldCmd.Flags().BoolVar(&scaffoldForce, "force", false, "back up and replace existing files whose content differs")
	scaffoldCmd.Flags().BoolVar(&scaffoldYes, "yes", false, "skip the force-mode confirmation prompt")
	scaffoldCmd.Flags().BoolVar(&scaffoldSkipPR, "skip-pr", false, "do not attempt pull request creation")
	scaffoldCmd.Flags().BoolVar(&scaffoldDryRun, "dry-run", false, "report decisions without writing, branching or committing")

	rootCmd.AddCommand(scaffoldCmd)
}

// confirmForce is replaced in tests to avoid an interactive prompt.
var confirmForce = func() (bool, error) {
	confirmed := false
	err := survey.AskOne(&survey.Confirm{
		Message: "Force mode backs up and replaces files that differ from the template. Continue?",
		Default: false,
	}, &confirmed)
	return confirmed, err
}

// scaffoldResult is the machine-readable outcome envelope for --json runs.
type scaffoldResult struct {
	Branch    string           `json:"branch"`
	DryRun    bool             `json:"dryRun"`
	Decisions []decisionRecord `json:"decisions"`
	Counts    map[string]int   `json:"counts"`
	Commit    string           `json:"commit"`
	PR        string           `json:"pr,omitempty"`
}

type decisionRecord struct {
	Path     string `json:"path"`
	Decision string `json:"decision"`
	Backup   string `json:"backup,omitempty"`
}

func runScaffold(cmd *cobra.Command) error {
	output.Init(verbosity > 0, jsonOutput)

	cfg, err := loadScaffoldConfig()
	if err != nil {
		return err
	}

	client := git.NewClient(repoRoot)

	// Preconditions: fail before any mutation.
	if !client.IsWorkTree() {
		return exitcode.Wrap(exitcode.Git, output.NewErrorWithFix(
			fmt.Sprintf("%s is not a git repository working tree", repoRoot),
			"run gosctl inside a repository, or point --repo-root at one"))
	}
	targetPath := filepath.Join(repoRoot, cfg.TargetDir)
	if info, err := os.Stat(targetPath); err != nil || !info.IsDir() {
		return exitcode.Wrap(exitcode.Validation, output.NewErrorWithFix(
			fmt.Sprintf("target subdirectory %s is absent", cfg.TargetDir),
			"create it (or fix targetDir in gosctl.yaml) and re-run"))
	}

	files, err := gostemplate.NewEngine().RenderAll(cfg)
	if err != nil {
		return err
	}

	if scaffoldForce && !scaffoldYes && !scaffoldDryRun && !effectiveCIMode() {
		confirmed, err := confirmForce()
		if err != nil {
			return err
		}
		if !confirmed {
			output.Warn("aborted; no changes made")
			return nil
		}
	}

	ctx := scaffold.NewRunContext(repoRoot, scaffoldForce, scaffoldDryRun, nil)

	// Branch switch happens before any write so changes land on the
	// scaffold branch, never on whatever was checked out.
	if !scaffoldDryRun {
		if err := client.EnsureBranch(cfg.Branch); err != nil {
			return err
		}
		output.Step("on branch " + cfg.Branch)
	}

	if err := scaffold.EnsureDirs(ctx, gostemplate.Dirs(cfg), gostemplate.PlaceholderDirs(cfg)); err != nil {
		return err
	}

	result := scaffoldResult{
		Branch: cfg.Branch,
		DryRun: scaffoldDryRun,
		Counts: map[string]int{},
	}
	changed := false
	for _, f := range files {
		res, err := scaffold.Apply(scaffold.Entry{Path: f.Path, Content: f.Content}, ctx)
		if err != nil {
			return err
		}
		output.Decision(res.Decision.String(), res.Path)
		result.Counts[res.Decision.String()]++
		result.Decisions = append(result.Decisions, decisionRecord{
			Path:     res.Path,
			Decision: res.Decision.String(),
			Backup:   res.Backup,
		})
		if res.Changed() {
			changed = true
		}
	}

	result.Commit = "skipped"
	if !scaffoldDryRun {
		if err := client.Stage([]string{cfg.TargetDir, ".gitignore"}); err != nil {
			return err
		}
		outcome, err := client.CommitIfChanged(cfg.CommitMessage)
		if err != nil {
			return err
		}
		if outcome == git.Committed {
			result.Commit = "committed"
			output.Success("committed: " + cfg.CommitMessage)
		} else {
			result.Commit = "nothing-to-commit"
			output.Info("nothing to commit; working tree already matches the scaffold")
		}

		if !scaffoldSkipPR && outcome == git.Committed {
			sp := output.NewSpinner("opening pull request against " + cfg.BaseBranch)
			sp.Start()
			pr := publish.NewPublisher().Publish(publish.Request{
				Branch:   cfg.Branch,
				Base:     cfg.BaseBranch,
				Title:    "Apply " + cfg.Project + " project scaffold",
				BodyFile: filepath.Join(repoRoot, cfg.TargetDir, "docs", "PR_BODY.md"),
			})
			sp.Stop()
			result.PR = pr.String()
		}
	}

	printSummary(result, changed)
	if jsonOutput {
		output.JSON(result)
	}
	return nil
}

// loadScaffoldConfig reads gosctl.yaml when present, falls back to pure
// defaults otherwise, and always schema-validates the effective config.
func loadScaffoldConfig() (*config.Config, error) {
	var cfg *config.Config
	path := cfgFile
	if path == "" {
		path = filepath.Join(repoRoot, "gosctl.yaml")
	}
	if _, err := os.Stat(path); err == nil {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, exitcode.Wrap(exitcode.Validation, err)
		}
	} else {
		cfg = config.Default()
	}

	vr, err := config.Validate(cfg)
	if err != nil {
		return nil, err
	}
	if !vr.Valid {
		for _, e := range vr.Errors {
			output.Error("config validation", "field", e.Field, "error", e.Description)
		}
		return nil, exitcode.Wrap(exitcode.Validation, fmt.Errorf("gosctl.yaml failed schema validation"))
	}
	return cfg, nil
}

func printSummary(result scaffoldResult, changed bool) {
	if jsonOutput {
		return
	}
	output.Title("scaffold summary")
	for _, label := range []string{"Created", "Exists (kept)", "Updated (backup saved)", "Unchanged"} {
		if n := result.Counts[label]; n > 0 {
			fmt.Fprintf(os.Stderr, "  %-24s %d\n", label, n)
		}
	}
	switch {
	case result.DryRun:
		output.Info("dry run; nothing was written")
	case changed:
		output.Success("scaffold applied on " + result.Branch)
	default:
		output.Success("scaffold already up to date")
	}
}
