package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashenBlade/pgexprfmt/internal/catalog"
	"github.com/ashenBlade/pgexprfmt/internal/store"
)

// ValidationResult holds catalog validation results.
type ValidationResult struct {
	Valid  bool                      `json:"valid"`
	Errors []catalog.ValidationError `json:"errors,omitempty"`
}

// SnapshotResult is the payload for catalog snapshot output.
type SnapshotResult struct {
	SnapshotID string `json:"snapshot_id"`
	Path       string `json:"path"`
	Operators  int    `json:"operators"`
	Functions  int    `json:"functions"`
	Types      int    `json:"types"`
}

// NewCatalogCommand creates the catalog command group.
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage catalog definitions and snapshots",
	}

	cmd.AddCommand(newCatalogValidateCommand(rootOpts))
	cmd.AddCommand(newCatalogSnapshotCommand(rootOpts))

	return cmd
}

func newCatalogValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a YAML catalog definition",
		Long: `Validate a YAML catalog definition against the catalog schema.

Performs CUE schema validation plus consistency checks (duplicate OIDs)
and reports all errors found, not just the first.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogValidate(rootOpts, args[0], cmd)
		},
	}
}

func runCatalogValidate(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read catalog file", err)
	}

	validationErrors := catalog.Validate(data)
	if len(validationErrors) == 0 {
		if rootOpts.Format == "json" {
			if err := formatter.Success(ValidationResult{Valid: true}); err != nil {
				return err
			}
		} else if err := formatter.Success(fmt.Sprintf("%s: valid", path)); err != nil {
			return err
		}
		return nil
	}

	if rootOpts.Format == "json" {
		if err := formatter.Failure(validationErrors[0].Code, "catalog definition is invalid",
			ValidationResult{Valid: false, Errors: validationErrors}); err != nil {
			return err
		}
	} else {
		for _, ve := range validationErrors {
			fmt.Fprintln(cmd.OutOrStdout(), ve.Error())
		}
	}
	return NewExitError(ExitFailure, fmt.Sprintf("%d validation error(s)", len(validationErrors)))
}

func newCatalogSnapshotCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot <file> <db>",
		Short: "Persist a YAML catalog definition as a SQLite snapshot",
		Long: `Validate a YAML catalog definition and persist it as a SQLite snapshot.

The snapshot is assigned a fresh UUIDv7 identity. An existing snapshot
database is replaced in a single transaction.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalogSnapshot(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runCatalogSnapshot(rootOpts *RootOptions, defPath, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	def, err := catalog.LoadFile(defPath)
	if err != nil {
		return WrapExitError(ExitFailure, "invalid catalog definition", err)
	}
	formatter.VerboseLog("loaded %s: %d operators, %d functions, %d types",
		defPath, len(def.Operators), len(def.Functions), len(def.Types))

	st, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot open snapshot database", err)
	}
	defer st.Close()

	snapshotID, err := st.Save(def)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot save snapshot", err)
	}

	result := SnapshotResult{
		SnapshotID: snapshotID,
		Path:       dbPath,
		Operators:  len(def.Operators),
		Functions:  len(def.Functions),
		Types:      len(def.Types),
	}
	if rootOpts.Format == "json" {
		return formatter.Success(result)
	}
	return formatter.Success(fmt.Sprintf("snapshot %s written to %s", snapshotID, dbPath))
}
