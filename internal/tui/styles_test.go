package tui

import (
	catppuccin "github.com/catppuccin/go"
	"testing"
)

func TestFlavorFromName(t *testing.T) {
	cases := map[string]catppuccin.Flavor{
		"latte":     catppuccin.Latte,
		"frappe":    catppuccin.Frappe,
		"macchiato": catppuccin.Macchiato,
		"mocha":     catppuccin.Mocha,
		"unknown":   catppuccin.Mocha,
		"":          catppuccin.Mocha,
	}
	for name, want := range cases {
		if got := flavorFromName(name); got.Name() != want.Name() {
			t.Errorf("flavorFromName(%q): got %v, want %v", name, got.Name(), want.Name())
		}
	}
}

func TestNewStyles_RendersWithoutPanic(t *testing.T) {
	s := NewStyles("mocha")
	for _, style := range []func() string{
		func() string { return s.TitleStyle().Render("t") },
		func() string { return s.PhaseStyle().Render("p") },
		func() string { return s.ErrorStyle().Render("e") },
		func() string { return s.BoxStyle().Render("b") },
	} {
		if style() == "" {
			t.Error("style rendered empty string")
		}
	}
}
