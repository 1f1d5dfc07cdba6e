package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/content"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate portfolio content",
	Long:  "Loads every YAML file under the content directory and reports the first problem found.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		dir := cfg.ContentDir
		if len(args) == 1 {
			dir = args[0]
		}
		if dir == "" {
			return fmt.Errorf("no content directory: pass one or set content_dir")
		}
		p, files, err := content.LoadDir(dir, content.Portfolio{})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, f := range files {
			fmt.Fprintf(out, "  read %s\n", f)
		}
		fmt.Fprintf(out, "ok: %d projects, %d experience entries, %d achievements, %d skill groups\n",
			len(p.Projects), len(p.Experience), len(p.Achievements), len(p.Skills))
		return nil
	},
}
