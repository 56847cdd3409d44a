package bars

import (
	"fmt"

	theme "github.com/goliatone/go-theme"
)

// The report palette interleaves five hues across four shade steps so
// adjacent bars stay distinguishable. It is the palette the original survey
// decks shipped with, expressed as go-theme tokens so studies can restyle a
// run without touching the renderer.
var paletteRGB = func() [][3]int {
	navy := [][3]int{{69, 116, 190}, {144, 172, 215}, {182, 200, 229}, {217, 226, 241}}
	blue := [][3]int{{97, 157, 209}, {158, 196, 226}, {191, 215, 236}, {222, 235, 245}}
	green := [][3]int{{116, 171, 82}, {170, 206, 147}, {199, 222, 183}, {226, 239, 219}}
	yellow := [][3]int{{251, 190, 64}, {253, 215, 118}, {252, 227, 161}, {255, 240, 208}}
	red := [][3]int{{233, 125, 68}, {241, 177, 138}, {245, 203, 176}, {249, 229, 215}}

	var colors [][3]int
	for i := 0; i < 4; i++ {
		colors = append(colors, navy[i], blue[i], green[i], yellow[i], red[i])
	}
	return colors
}()

// PaletteSize is the number of distinct bar colors before cycling.
const PaletteSize = 20

func paletteToken(n int) string {
	return fmt.Sprintf("palette.%d", n)
}

func rgba(c [3]int) string {
	return fmt.Sprintf("rgba(%d, %d, %d, 1)", c[0], c[1], c[2])
}

// DefaultManifest describes the built-in report theme: the 20-color bar
// palette plus the page tokens the templates reference.
func DefaultManifest() *theme.Manifest {
	tokens := map[string]string{
		"page.background": "#ffffff",
		"page.text":       "#24292f",
		"bar.track":       "#f0f2f5",
	}
	for i, c := range paletteRGB {
		tokens[paletteToken(i)] = rgba(c)
	}

	pastel := map[string]string{}
	for i := 0; i < PaletteSize; i++ {
		// The pastel variant starts two shade steps lighter, wrapping
		// within the same hue group.
		pastel[paletteToken(i)] = rgba(paletteRGB[(i+10)%PaletteSize])
	}

	return &theme.Manifest{
		Name:    "surveyviz",
		Version: "1.0.0",
		Tokens:  tokens,
		Variants: map[string]theme.Variant{
			"pastel": {Tokens: pastel},
		},
	}
}

// DefaultThemeProvider returns a go-theme registry preloaded with the
// built-in manifest.
func DefaultThemeProvider() theme.ThemeProvider {
	registry := theme.NewRegistry()
	if err := registry.Register(DefaultManifest()); err != nil {
		panic(err)
	}
	return registry
}

// colorFor resolves the bar color for position n, preferring resolved theme
// tokens and falling back to the built-in palette.
func colorFor(n int, cfg *theme.RendererConfig) string {
	if n < 0 {
		n = 0
	}
	n = n % PaletteSize
	if cfg != nil {
		if color, ok := cfg.Tokens[paletteToken(n)]; ok && color != "" {
			return color
		}
	}
	return rgba(paletteRGB[n])
}

// pageToken resolves a non-palette token with a fallback.
func pageToken(name, fallback string, cfg *theme.RendererConfig) string {
	if cfg != nil {
		if value, ok := cfg.Tokens[name]; ok && value != "" {
			return value
		}
	}
	return fallback
}
