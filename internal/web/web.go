// Package web holds the dashboard's embedded templates and stylesheet.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strconv"
)

//go:embed templates/*.html static/*
var files embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"kg": func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) },
		"kgInt": func(v float64) string {
			return strconv.FormatFloat(v, 'f', 0, 64)
		},
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	}

	t, err := template.New("").Funcs(funcMap).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Static returns the stylesheet tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		// static/ is embedded at build time; Sub only fails on a bad pattern.
		panic(err)
	}
	return sub
}
