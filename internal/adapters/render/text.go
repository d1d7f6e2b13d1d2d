// Package render presents package units and metadata records to the user.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
)

var _ ports.Renderer = (*Text)(nil)

// Text renders human-readable, optionally colored output.
type Text struct {
	out    io.Writer
	styles styles
}

// NewText creates a Text renderer writing to out.
func NewText(out io.Writer) *Text {
	return &Text{
		out:    out,
		styles: newStyles(newRenderer(out)),
	}
}

// NewTextWithProfile creates a Text renderer with a fixed color profile.
func NewTextWithProfile(out io.Writer, profile termenv.Profile) *Text {
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)
	return &Text{
		out:    out,
		styles: newStyles(r),
	}
}

// RenderUnits writes one line per unit: its path, a flake tag and a fetchFromGitHub tag when set.
func (t *Text) RenderUnits(units []domain.PackageUnit) error {
	var b strings.Builder
	for _, u := range units {
		b.WriteString(u.Path)
		if u.IsFlake() {
			b.WriteString(" " + t.styles.kind.Render("(flake)"))
		}
		if u.UsesPlatformFetch {
			b.WriteString(" " + t.styles.fetch.Render("["+domain.PlatformFetchMarker+"]"))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(t.out, b.String())
	return err
}

// RenderRecords writes each record as a name line followed by one indented
// line per known field. Unknown fields are omitted.
func (t *Text) RenderRecords(records []domain.MetadataRecord) error {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(t.styles.name.Render(r.Name))
		if r.Version != "" {
			b.WriteString(" (" + t.styles.version.Render(r.Version) + ")")
		}
		b.WriteByte('\n')
		if r.Description != "" {
			fmt.Fprintf(&b, " %s\n", r.Description)
		}
		if r.Homepage != "" {
			fmt.Fprintf(&b, " Homepage: %s\n", r.Homepage)
		}
		if r.Position != "" {
			fmt.Fprintf(&b, " Source: %s\n", r.Position)
		}
	}
	_, err := io.WriteString(t.out, b.String())
	return err
}
