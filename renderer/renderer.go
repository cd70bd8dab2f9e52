// Package renderer turns dashboard snapshots into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/cryptodash"
)

//go:embed templates/*.md
var templateFS embed.FS

// templates holds the main template and its partials.
var templates, _ = fs.Sub(templateFS, "templates")

// Tab selects the lower section of the dashboard.
type Tab string

const (
	TabAll       Tab = "all"
	TabMarkets   Tab = "markets"
	TabAnalytics Tab = "analytics"
	TabNews      Tab = "news"
)

// Tabs returns the names accepted by ParseTab.
func Tabs() []string {
	return []string{string(TabAll), string(TabMarkets), string(TabAnalytics), string(TabNews)}
}

// ParseTab parses a tab name, the empty string being TabAll.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(strings.ToLower(s)); t {
	case "":
		return TabAll, nil
	case TabAll, TabMarkets, TabAnalytics, TabNews:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tab %q, want one of %s", s, strings.Join(Tabs(), ", "))
	}
}

// Options holds configuration for rendering a dashboard.
type Options struct {
	Tab Tab // Lower section to display, all of them when empty.
}

// Dashboard renders the snapshot to a markdown string.
func Dashboard(s *cryptodash.Snapshot, opts Options) string {
	partials := map[string]string{
		"header":   "header.md",
		"selected": "selected.md",
		"volumes":  "volumes.md",
		"strip":    "strip.md",
		"footer":   "footer.md",
	}
	// Hidden tabs use an empty file name, resulting in an empty template.
	for _, tab := range []Tab{TabMarkets, TabAnalytics, TabNews} {
		file := ""
		if opts.Tab == "" || opts.Tab == TabAll || opts.Tab == tab {
			file = string(tab) + ".md"
		}
		partials[string(tab)] = file
	}
	return renderTemplate("dashboard", "dashboard.md", partials, s)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
