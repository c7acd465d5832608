package web

import (
	"io/fs"
	"testing"
)

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tmpl.Lookup("dashboard.html") == nil {
		t.Fatal("dashboard.html template missing")
	}
}

func TestStaticContainsStylesheet(t *testing.T) {
	if _, err := fs.Stat(Static(), "dashboard.css"); err != nil {
		t.Fatalf("stat dashboard.css: %v", err)
	}
}
