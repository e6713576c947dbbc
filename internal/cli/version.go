package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ashenBlade/pgexprfmt/internal/format"
)

// VersionResult is the payload for version command output.
type VersionResult struct {
	ToolVersion      string `json:"tool_version"`
	FormatterVersion int    `json:"formatter_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tool and formatter versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}

			result := VersionResult{
				ToolVersion:      format.ToolVersion,
				FormatterVersion: format.Version(),
			}
			if rootOpts.Format == "json" {
				return formatter.Success(result)
			}
			return formatter.Success(fmt.Sprintf("pgexprfmt %s (formatter version %d)",
				result.ToolVersion, result.FormatterVersion))
		},
	}
}
