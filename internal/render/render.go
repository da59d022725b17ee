// Package render formats an element for the terminal.
package render

import (
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/madprops/el/internal/element"
)

// DefaultMaxWidth caps the wrap width of a field value.
const DefaultMaxWidth = 80

// minWrapWidth is the narrowest wrap width derived from the terminal size
// before it is ignored in favour of MaxWidth.
const minWrapWidth = 10

// placeholder stands in for a missing name or symbol in the header.
const placeholder = "?"

// Case is a display-case hint applied to a field value.
type Case int

const (
	CaseNone Case = iota
	CaseTitle
	CaseSentence
)

// Options controls rendering.
type Options struct {
	// UseStyling enables bold/colored output. It is still dropped when the
	// writer is not a terminal.
	UseStyling bool

	// MaxWidth is the upper bound for wrapping a value. 0 means DefaultMaxWidth.
	MaxWidth int

	// TerminalWidth is the width of the output terminal, 0 when unknown.
	TerminalWidth int
}

// Field is one displayable property of an element.
type Field struct {
	Label string
	Value string
	Case  Case
}

// Fields returns the present properties of el in display order. Absent fields
// and empty lists are left out.
func Fields(el element.Element) []Field {
	var out []Field
	add := func(label string, value *string, c Case) {
		if value != nil {
			out = append(out, Field{Label: label, Value: *value, Case: c})
		}
	}

	add("Atomic Number", formatUint(el.Number), CaseNone)
	add("Period Number", formatUint(el.Period), CaseNone)
	add("Category", el.Category, CaseTitle)
	add("Summary", el.Summary, CaseNone)
	add("Discovered By", el.DiscoveredBy, CaseNone)
	add("Named By", el.NamedBy, CaseNone)
	add("Appearance", el.Appearance, CaseSentence)
	add("Atomic Mass", formatFloat(el.AtomicMass), CaseNone)
	add("Phase", el.Phase, CaseNone)
	add("Density", formatFloat(el.Density), CaseNone)
	add("Color", el.Color, CaseTitle)
	add("Molar Heat", formatFloat(el.MolarHeat), CaseNone)
	add("Melting Point", formatFloat(el.Melt), CaseNone)
	add("Boiling Point", formatFloat(el.Boil), CaseNone)
	add("Shells", joinList(el.Shells, func(v uint32) string { return strconv.FormatUint(uint64(v), 10) }), CaseNone)
	add("Electron Configuration", el.ElectronConfiguration, CaseNone)
	add("Electron Affinity", formatFloat(el.ElectronAffinity), CaseNone)
	add("Electronegativity Pauling", formatFloat(el.ElectronegativityPauling), CaseNone)
	add("Ionization Energies", joinList(el.IonizationEnergies, func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }), CaseNone)
	add("X Pos", formatUint(el.XPos), CaseNone)
	add("Y Pos", formatUint(el.YPos), CaseNone)
	add("Source", el.Source, CaseNone)
	add("Spectral Image", el.SpectralImg, CaseNone)

	return out
}

// Render writes the header and one line per present field of el to w.
func Render(w io.Writer, el element.Element, opts Options) error {
	r := lipgloss.NewRenderer(w)
	headerStyle := r.NewStyle()
	labelStyle := r.NewStyle()
	if opts.UseStyling {
		headerStyle = headerStyle.Bold(true).Foreground(lipgloss.Color("6"))
		labelStyle = labelStyle.Foreground(lipgloss.Color("4"))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(Header(el)))
	b.WriteString("\n\n")

	for _, f := range Fields(el) {
		b.WriteString(labelStyle.Render(f.Label))
		b.WriteString(": ")
		b.WriteString(wrapValue(f.Label, ApplyCase(f.Value, f.Case), opts))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Header returns "Name (Symbol)", substituting a placeholder for either part when absent.
func Header(el element.Element) string {
	name, symbol := placeholder, placeholder
	if el.Name != nil {
		name = *el.Name
	}
	if el.Symbol != nil {
		symbol = *el.Symbol
	}
	return name + " (" + symbol + ")"
}

// ApplyCase converts s according to the hint.
func ApplyCase(s string, c Case) string {
	switch c {
	case CaseTitle:
		return cases.Title(language.English).String(s)
	case CaseSentence:
		lower := cases.Lower(language.English).String(s)
		first, size := utf8.DecodeRuneInString(lower)
		if first == utf8.RuneError {
			return lower
		}
		return string(unicode.ToTitle(first)) + lower[size:]
	default:
		return s
	}
}

// WrapWidth is the column budget for a value printed after label.
func WrapWidth(label string, opts Options) int {
	width := opts.MaxWidth
	if width <= 0 {
		width = DefaultMaxWidth
	}
	if opts.TerminalWidth > 0 {
		if n := opts.TerminalWidth - len(label) - 5; n >= minWrapWidth && n < width {
			width = n
		}
	}
	return width
}

// wrapValue word-wraps value, hard-breaking words longer than the width, and
// indents continuation lines so they line up under the first character after
// "Label: ".
func wrapValue(label, value string, opts Options) string {
	width := WrapWidth(label, opts)
	wrapped := wrap.String(wordwrap.String(value, width), width)
	return strings.TrimSpace(indent.String(wrapped, uint(len(label)+2)))
}

func formatUint(v *uint32) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatUint(uint64(*v), 10)
	return &s
}

func formatFloat(v *float64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatFloat(*v, 'f', -1, 64)
	return &s
}

func joinList[T any](vals []T, format func(T) string) *string {
	if len(vals) == 0 {
		return nil
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = format(v)
	}
	s := strings.Join(parts, ", ")
	return &s
}
