package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/solutionops/solutions-check/pkg/config"
	"github.com/solutionops/solutions-check/pkg/console"
	"github.com/solutionops/solutions-check/pkg/constants"
	"github.com/solutionops/solutions-check/pkg/fileutil"
	"github.com/solutionops/solutions-check/pkg/logger"
	"github.com/solutionops/solutions-check/pkg/solutions"
	"github.com/spf13/cobra"
)

var validateLog = logger.New("cli:validate_command")

// ErrValidationFailed is returned once validation problems have been printed.
// Callers only need to set the exit status.
var ErrValidationFailed = errors.New("validation failed")

// SuccessMessage is printed to stdout when every check passes.
const SuccessMessage = "All solution configuration checks passed."

// ValidateConfig holds the options of one validate invocation.
type ValidateConfig struct {
	Dir        string
	ConfigPath string
	JSONOutput bool
	Watch      bool
	Verbose    bool
	FailFast   bool
}

const validateLongHelp = `Validate that solutions.json, the solutions/ directory and the generated
dropdown blocks of the sync workflows agree.

Checks run in order and stop at the first failure, except the workflow
checks, which report every out-of-sync workflow together:

  1. solutions.json must be a JSON array of strings
  2. every declared solution needs a directory under solutions/, and every
     non-hidden directory there must be declared
  3. the block between "# GENERATED-OPTIONS-START" and "# GENERATED-OPTIONS-END"
     in each sync workflow must list exactly the declared solutions, plus the
     "<none>" placeholder

Exits 0 when everything is in sync and 1 otherwise.

Examples:
  ` + string(constants.CLIName) + `                        # Validate the current directory
  ` + string(constants.CLIName) + ` --dir path/to/repo     # Validate another checkout
  ` + string(constants.CLIName) + ` --json                 # Print the report as JSON
  ` + string(constants.CLIName) + ` --watch                # Re-validate whenever inputs change`

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check solutions.json against solution directories and workflow dropdowns",
		Long:  validateLongHelp,
		Args:  cobra.NoArgs,
		RunE:  runValidateCommand,
	}
	addValidateFlags(cmd)
	return cmd
}

// NewRootCommand creates the root command. Invoked without a sub-command it
// runs the validation pass.
func NewRootCommand(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           string(constants.CLIName),
		Short:         "Keep declared solutions, their directories and workflow dropdowns in sync",
		Long:          validateLongHelp,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runValidateCommand,
	}
	addValidateFlags(cmd)
	cmd.AddCommand(NewValidateCommand())
	return cmd
}

func addValidateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dir", "d", ".", "Repository root that relative paths resolve against")
	cmd.Flags().StringP("config", "c", "", "YAML config file (default: "+constants.DefaultConfigFile+" if present)")
	cmd.Flags().BoolP("json", "j", false, "Print the validation report as JSON")
	cmd.Flags().BoolP("watch", "w", false, "Re-run validation whenever an input changes")
	cmd.Flags().BoolP("verbose", "v", false, "Print a per-workflow summary to stderr")
	cmd.Flags().Bool("fail-fast", false, "Stop workflow checks at the first out-of-sync workflow")
}

func runValidateCommand(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	configPath, _ := cmd.Flags().GetString("config")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	watch, _ := cmd.Flags().GetBool("watch")
	verbose, _ := cmd.Flags().GetBool("verbose")
	failFast, _ := cmd.Flags().GetBool("fail-fast")

	vc := ValidateConfig{
		Dir:        dir,
		ConfigPath: configPath,
		JSONOutput: jsonOutput,
		Watch:      watch,
		Verbose:    verbose,
		FailFast:   failFast,
	}
	return RunValidate(cmd.Context(), vc, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// RunValidate loads the configuration and runs one validation pass, or keeps
// re-running it on input changes when vc.Watch is set.
func RunValidate(ctx context.Context, vc ValidateConfig, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	validateLog.Printf("Running validate: dir=%s, config=%s, json=%v, watch=%v", vc.Dir, vc.ConfigPath, vc.JSONOutput, vc.Watch)

	cfg, err := config.Load(vc.Dir, vc.ConfigPath)
	if err != nil {
		return err
	}

	err = validateOnce(ctx, cfg, vc, stdout, stderr)
	if !vc.Watch {
		return err
	}

	paths := cfg.WatchPaths()
	for _, p := range paths {
		if !fileutil.DirExists(p) {
			fmt.Fprintln(stderr, console.FormatWarningMessage(p+" does not exist yet; it will be watched once created"))
		}
	}
	fmt.Fprintln(stderr, console.FormatVerboseMessage("Watching for changes (press Ctrl+C to stop)..."))

	return watchInputs(ctx, paths, watchDebounce, nil, func() {
		fmt.Fprintln(stderr, console.FormatVerboseMessage("Change detected, re-validating..."))
		_ = validateOnce(ctx, cfg, vc, stdout, stderr)
	})
}

func validateOnce(ctx context.Context, cfg *config.Config, vc ValidateConfig, stdout, stderr io.Writer) error {
	info := func(msg string) {
		fmt.Fprintln(stdout, console.FormatInfoMessage(msg))
	}
	if vc.JSONOutput {
		info = func(string) {}
	}

	validator := solutions.NewValidator(cfg, solutions.WithInfo(info), solutions.WithFailFast(vc.FailFast))
	report, err := validator.Run(ctx)

	if vc.Verbose {
		fmt.Fprint(stderr, console.FormatVerboseMessage(report.Summary()))
	}

	if vc.JSONOutput {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(report); encErr != nil {
			return fmt.Errorf("failed to write JSON report: %w", encErr)
		}
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		PrintValidationError(stderr, err)
		return fmt.Errorf("%w: %d problem(s) found", ErrValidationFailed, len(report.Errors))
	}

	if !vc.JSONOutput {
		fmt.Fprintln(stdout, console.FormatSuccessMessage(SuccessMessage))
	}
	return nil
}
