package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Create a new folio project",
	Example: `  folio new my-portfolio
  folio new github.com/user/my-portfolio`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNew(cmd, args[0])
	},
}

func runNew(cmd *cobra.Command, name string) error {
	out := cmd.OutOrStdout()
	dirName := name
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		dirName = name[idx+1:]
	}
	if _, err := os.Stat(dirName); err == nil {
		return fmt.Errorf("directory %q already exists", dirName)
	}

	data := scaffold.Data{
		ProjectName: dirName,
		ModuleName:  name,
		SiteName:    toTitle(dirName),
	}
	fmt.Fprintf(out, "Creating new folio project: %s\n\n", dirName)

	if err := writeTemplates(out, dirName, data); err != nil {
		return err
	}
	if err := writeSampleContent(out, dirName); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nResolving Go dependencies...")
	tidy := exec.Command("go", "mod", "tidy")
	tidy.Dir = dirName
	tidy.Stdout = out
	tidy.Stderr = cmd.ErrOrStderr()
	if err := tidy.Run(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "\nWarning: go mod tidy failed: %v\n", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Run 'cd %s && go mod tidy' manually after fixing.\n", dirName)
	}

	fmt.Fprintf(out, "\nDone! Next steps:\n\n  cd %s\n  cp .env.example .env\n  go run .\n\n", dirName)
	fmt.Fprintln(out, "Edit content/portfolio.yaml to make the site yours.")
	return nil
}

func writeTemplates(out io.Writer, dirName string, data scaffold.Data) error {
	const root = "templates"
	return fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dirName, rel), ".tmpl")
		switch filepath.Base(outPath) {
		case "dotenv":
			outPath = filepath.Join(filepath.Dir(outPath), ".env.example")
		case "gitignore":
			outPath = filepath.Join(filepath.Dir(outPath), ".gitignore")
		}
		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		raw, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(raw))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		fmt.Fprintf(out, "  created %s\n", outPath)
		return nil
	})
}

// writeSampleContent seeds content/ with the built-in portfolio so the new
// site has something to edit.
func writeSampleContent(out io.Writer, dirName string) error {
	dir := filepath.Join(dirName, "content")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, "portfolio.yaml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := content.Encode(f, content.Default()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintf(out, "  created %s\n", path)
	return nil
}

// toTitle converts a hyphenated name to title case: "my-site" -> "My Site".
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
