package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"thirdcoast.systems/fileprops/internal/config"
	"thirdcoast.systems/fileprops/pkg/mediainfo"
)

func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "Report the external tools used for optional properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "xdg-mime:  %s (enabled: %t)\n", cfg.Tools.XDGMimePath, cfg.QueryMIME)

			mi := mediainfo.New()
			mi.Path = cfg.Tools.MediaInfoPath
			mi.Timeout = cfg.Tools.ToolTimeout
			version, err := mi.Version(cmd.Context())
			if err != nil {
				version = "unavailable: " + err.Error()
			}
			fmt.Fprintf(w, "mediainfo: %s (enabled: %t) %s\n", cfg.Tools.MediaInfoPath, cfg.QueryMediaInfo, version)
			fmt.Fprintf(w, "timeout:   %s\n", cfg.Tools.ToolTimeout)
			return nil
		},
	}
}
