package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/folio/content"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the merged portfolio content as YAML",
	Long:  "Prints the content the server would serve. Without a content directory this is the built-in sample portfolio.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		p := content.Default()
		if cfg.ContentDir != "" {
			var err error
			if p, _, err = content.LoadDir(cfg.ContentDir, content.Portfolio{}); err != nil {
				return err
			}
		}
		return content.Encode(cmd.OutOrStdout(), p)
	},
}
