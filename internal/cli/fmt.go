package cli

import (
	"github.com/spf13/cobra"

	"github.com/ashenBlade/pgexprfmt/internal/catalog"
	"github.com/ashenBlade/pgexprfmt/internal/format"
	"github.com/ashenBlade/pgexprfmt/internal/store"
)

// FmtOptions holds flags for the fmt command.
type FmtOptions struct {
	CatalogPath  string // YAML catalog definition
	SnapshotPath string // SQLite catalog snapshot
}

// FmtResult is the payload for fmt command output.
type FmtResult struct {
	Name string `json:"name,omitempty"`
	Text string `json:"text"`
	// Empty reports that the fixture carried no expression at all,
	// distinguishing it from an expression that rendered to "".
	Empty bool `json:"empty,omitempty"`
}

// NewFmtCommand creates the fmt command.
func NewFmtCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FmtOptions{}

	cmd := &cobra.Command{
		Use:   "fmt <fixture>",
		Short: "Render an expression fixture to text",
		Long: `Render the expression tree in a YAML fixture file to readable text.

Column references resolve against the fixture's range table. Operator,
function, and type names resolve against the builtin catalog unless
--catalog (YAML definition) or --snapshot (SQLite snapshot) is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.CatalogPath, "catalog", "", "YAML catalog definition file")
	cmd.Flags().StringVar(&opts.SnapshotPath, "snapshot", "", "SQLite catalog snapshot file")
	cmd.MarkFlagsMutuallyExclusive("catalog", "snapshot")

	return cmd
}

func runFmt(rootOpts *RootOptions, opts *FmtOptions, fixturePath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	resolver, err := resolveCatalog(opts, formatter)
	if err != nil {
		return err
	}

	fixture, err := LoadFixture(fixturePath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot load fixture", err)
	}
	formatter.VerboseLog("loaded fixture %s (%d range table entries)", fixturePath, len(fixture.RangeTable))

	expr, err := fixture.DecodeExpr()
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot decode fixture", err)
	}

	text, ok := format.New(resolver).Format(expr, fixture.RangeTable)

	result := FmtResult{Name: fixture.Name, Text: text, Empty: !ok}
	if rootOpts.Format == "json" {
		return formatter.Success(result)
	}
	// Text mode: a fixture without an expression prints nothing.
	if !ok {
		return nil
	}
	return formatter.Success(text)
}

// resolveCatalog picks the name resolution source for the fmt command.
func resolveCatalog(opts *FmtOptions, formatter *OutputFormatter) (catalog.Resolver, error) {
	switch {
	case opts.CatalogPath != "":
		def, err := catalog.LoadFile(opts.CatalogPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "cannot load catalog", err)
		}
		formatter.VerboseLog("catalog: %s", opts.CatalogPath)
		return buildDefinition(def)

	case opts.SnapshotPath != "":
		st, err := store.Open(opts.SnapshotPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "cannot open snapshot", err)
		}
		defer st.Close()

		def, err := st.Load()
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "cannot load snapshot", err)
		}
		if id, ok, err := st.SnapshotID(); err == nil && ok {
			formatter.VerboseLog("snapshot: %s (%s)", opts.SnapshotPath, id)
		}
		return buildDefinition(def)

	default:
		return catalog.Builtin(), nil
	}
}

func buildDefinition(def *catalog.Definition) (catalog.Resolver, error) {
	resolver, err := def.Build()
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot build catalog", err)
	}
	return resolver, nil
}
