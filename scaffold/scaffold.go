// Package scaffold holds the files written by "folio new".
package scaffold

import "embed"

// Templates contains all scaffold template files. Files ending in .tmpl
// are Go text/templates; the suffix is stripped on output.
//
//go:embed all:templates
var Templates embed.FS

// Data is passed to every template.
type Data struct {
	ProjectName string
	ModuleName  string
	SiteName    string
}
