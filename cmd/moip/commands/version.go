package commands

import (
	"github.com/moip/moip-sdk-go/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(cliVersion, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display version information about the Moip CLI and the User-Agent it sends",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version   string `json:"version"    yaml:"version"`
				Commit    string `json:"commit"     yaml:"commit"`
				Built     string `json:"built"      yaml:"built"`
				UserAgent string `json:"user_agent" yaml:"user_agent"`
			}

			info := VersionInfo{
				Version:   cliVersion,
				Commit:    commit,
				Built:     date,
				UserAgent: version.DefaultUserAgent(),
			}

			return renderProperties(cmd.OutOrStdout(), info, [][2]string{
				{"Version", info.Version},
				{"Commit", info.Commit},
				{"Built", info.Built},
				{"User-Agent", info.UserAgent},
			})
		},
	}
}
