package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/dectab/pkg/recognizer"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var layerColors = map[recognizer.Layer]string{
	recognizer.LayerText: "#facc15",
	recognizer.LayerThin: "#60a5fa",
	recognizer.LayerBody: "#4ade80",
	recognizer.LayerGrid: "#f472b6",
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Profile returns the colour profile to use for f: plain ASCII unless f is a
// terminal, in which case the environment decides (NO_COLOR, COLORTERM, TERM).
func Profile(f *os.File) termenv.Profile {
	if !IsTerminal(f) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

// LayerPrinter writes canvas layers, colouring the masked characters.
type LayerPrinter struct {
	w   io.Writer
	out *termenv.Output
}

// NewLayerPrinter creates a printer for w. With the Ascii profile the output
// matches Canvas.DisplayLayer byte for byte.
func NewLayerPrinter(w io.Writer, profile termenv.Profile) *LayerPrinter {
	return &LayerPrinter{w: w, out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// Print writes one layer of the canvas with a title line.
func (p *LayerPrinter) Print(c *recognizer.Canvas, layer recognizer.Layer) {
	mask := c.Layer(layer)
	color := p.out.Color(layerColors[layer])

	fmt.Fprintf(p.w, "%s LAYER\n", layer)
	for i := 0; i < c.Height(); i++ {
		row := []rune(c.Row(i))
		// Trailing unmasked cells are dropped, as in the plain rendering.
		end := len(row)
		for end > 0 && !mask[i][end-1] {
			end--
		}

		var b strings.Builder
		for j, ch := range row[:end] {
			switch {
			case !mask[i][j]:
				b.WriteRune(' ')
			case ch == ' ':
				b.WriteString(p.out.String("▒").Foreground(color).String())
			default:
				b.WriteString(p.out.String(string(ch)).Foreground(color).String())
			}
		}
		fmt.Fprintln(p.w, b.String())
	}
}

// PrintAll writes every layer in display order, separated by blank lines.
func (p *LayerPrinter) PrintAll(c *recognizer.Canvas) {
	for i, layer := range recognizer.Layers {
		if i > 0 {
			fmt.Fprintln(p.w)
		}
		p.Print(c, layer)
	}
}
