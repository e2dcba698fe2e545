package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"thirdcoast.systems/fileprops/internal/config"
	"thirdcoast.systems/fileprops/internal/properties"
)

// flagKeys maps show flags to the configuration keys they override.
var flagKeys = map[string]string{
	"mime":        "QUERY_MIME",
	"media":       "QUERY_MEDIAINFO",
	"date-format": "DATETIME_FORMAT",
}

func newShowCmd() *cobra.Command {
	var out outputOptions

	cmd := &cobra.Command{
		Use:   "show <path>",
		Short: "Print the property rows of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}

			v := viper.New()
			for flag, key := range flagKeys {
				if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}

			ctx := cmd.Context()
			cfg, err := config.Load(ctx, v)
			if err != nil {
				return err
			}

			seq, err := properties.New(cfg).Aggregate(ctx, path, properties.OptionsFromConfig(cfg))
			if err != nil {
				return err
			}
			return writeRows(cmd.OutOrStdout(), seq, out)
		},
	}

	cmd.Flags().Bool("mime", false, "Query the MIME type with xdg-mime")
	cmd.Flags().Bool("media", false, "Query media tracks with mediainfo")
	cmd.Flags().String("date-format", "", "Timestamp mask, e.g. \"yyyy-mm-dd HH:MM:ss\" (default: locale)")
	cmd.Flags().BoolVar(&out.json, "json", false, "Print rows as JSON")
	cmd.Flags().StringVar(&out.jsonPath, "jsonpath", "", "Filter JSON rows with a JSONPath expression (implies --json)")

	return cmd
}
