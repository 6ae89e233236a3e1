// Package terminal renders the landing page in a terminal with tcell.
//
// The page is laid out once per width as a tall [Document]. The terminal
// window is the viewport onto that document: scrolling moves the viewport,
// and the [visibility.Viewport] observer reports which badge regions are in
// view so their count-ups start the first time they are half visible.
package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/muv-academia/muv/pkg/content"
	"github.com/muv-academia/muv/pkg/visibility"
	"github.com/muv-academia/muv/pkg/widgets"
)

// LineKind selects how a document line is drawn.
type LineKind int

const (
	LineBody LineKind = iota
	LineTitle
	LineAccent
	LineMuted
	LineButton
	LineBrand
	LineRule
	// LineBadge is filled at draw time with a counter's label.
	LineBadge
	// LineField is filled at draw time with a contact form field.
	LineField
)

// Line is one row of the document.
type Line struct {
	Text   string
	Kind   LineKind
	Indent int
	// Center draws the line centered in the window.
	Center bool
	// Slot is the counter index for LineBadge or the widgets.FormField for
	// LineField.
	Slot int
}

// BadgeSlot locates a counter in document coordinates.
type BadgeSlot struct {
	Stat content.Stat
	Rect visibility.Rect
}

// Document is a page laid out for one width.
type Document struct {
	Width   int
	Lines   []Line
	Anchors map[string]int
	Badges  []BadgeSlot
	// FormLine is the first contact form field row, or -1.
	FormLine int
}

const (
	margin        = 2
	minWrapWidth  = 20
	badgeRowCount = 2
)

type builder struct {
	doc  *Document
	wrap int
}

// Layout lays page out for a window width columns wide.
func Layout(page *content.Page, width int) *Document {
	b := &builder{
		doc: &Document{
			Width:    width,
			Anchors:  make(map[string]int),
			FormLine: -1,
		},
		wrap: max(width-2*margin, minWrapWidth),
	}

	b.hero(page)
	b.services(&page.Services)
	b.program(&page.Program)
	b.testimonials(&page.Testimonials)
	b.contact(&page.Contact, page.Modalities())
	b.footer(page)
	return b.doc
}

func (b *builder) add(l Line) int {
	b.doc.Lines = append(b.doc.Lines, l)
	return len(b.doc.Lines) - 1
}

func (b *builder) blank() {
	b.add(Line{})
}

func (b *builder) text(s string, kind LineKind, indent int) {
	for _, row := range wrapText(s, b.wrap-indent) {
		b.add(Line{Text: row, Kind: kind, Indent: indent})
	}
}

func (b *builder) centered(s string, kind LineKind) {
	for _, row := range wrapText(s, b.wrap) {
		b.add(Line{Text: row, Kind: kind, Center: true})
	}
}

func (b *builder) anchor(name string) {
	if name != "" {
		b.doc.Anchors[name] = len(b.doc.Lines)
	}
}

func (b *builder) heading(anchor, title, subtitle string) {
	b.anchor(anchor)
	b.centered(title, LineTitle)
	if subtitle != "" {
		b.centered(subtitle, LineMuted)
	}
	b.blank()
}

func (b *builder) hero(page *content.Page) {
	b.blank()
	b.centered(spaced(page.Meta.Brand), LineBrand)
	b.blank()
	b.centered(page.Hero.Headline, LineTitle)
	b.centered(page.Hero.Highlight, LineAccent)
	b.blank()
	b.centered(page.Hero.Lead, LineBody)
	b.blank()
	if len(page.Hero.Actions) > 0 {
		labels := make([]string, 0, len(page.Hero.Actions))
		for _, a := range page.Hero.Actions {
			labels = append(labels, button(a.Label))
		}
		b.centered(strings.Join(labels, "  "), LineButton)
	}
	b.blank()
	b.add(Line{Kind: LineRule})
	b.blank()
}

func (b *builder) services(s *content.Section) {
	b.heading(s.Anchor, s.Title, s.Subtitle)
	for _, item := range s.Items {
		b.text(strings.TrimSpace(item.Icon+" "+item.Title), LineTitle, 0)
		b.text(item.Description, LineBody, 2)
		for _, benefit := range item.Benefits {
			b.text("✓ "+benefit, LineAccent, 4)
		}
		if item.Action.Label != "" {
			b.add(Line{Text: button(item.Action.Label), Kind: LineButton, Indent: 2})
		}
		b.blank()
	}
	b.add(Line{Kind: LineRule})
	b.blank()
}

func (b *builder) program(p *content.Program) {
	b.heading(p.Anchor, p.Title, p.Tagline)
	if p.Description != "" {
		b.centered(p.Description, LineBody)
		b.blank()
	}
	for i, stat := range p.Stats {
		row := b.add(Line{Kind: LineBadge, Slot: i, Center: true})
		b.add(Line{Text: stat.Label, Kind: LineMuted, Center: true})
		b.doc.Badges = append(b.doc.Badges, BadgeSlot{
			Stat: stat,
			Rect: visibility.Rect{X: 0, Y: row, W: b.doc.Width, H: badgeRowCount},
		})
		b.blank()
	}
	if p.Action.Label != "" {
		b.centered(button(p.Action.Label), LineButton)
		b.blank()
	}
	b.add(Line{Kind: LineRule})
	b.blank()
}

func (b *builder) testimonials(t *content.Testimonials) {
	b.heading(t.Anchor, t.Title, t.Subtitle)
	for _, item := range t.Items {
		b.text(strings.Repeat("★", item.Stars), LineAccent, 2)
		b.text("“"+item.Quote+"”", LineBody, 2)
		b.text("— "+item.Name+" · "+item.Modality, LineMuted, 4)
		b.blank()
	}
	b.add(Line{Kind: LineRule})
	b.blank()
}

func (b *builder) contact(c *content.Contact, modalities []string) {
	b.heading(c.Anchor, c.Title, c.Subtitle)

	b.text("Endereço", LineTitle, 0)
	for _, row := range c.Address {
		b.text(row, LineBody, 2)
	}
	b.text("Telefone", LineTitle, 0)
	b.text(c.Phone, LineBody, 2)
	b.blank()
	b.text("Horário de Funcionamento", LineTitle, 0)
	for _, h := range c.Hours {
		b.text(padRight(h.Days, 18)+h.Time, LineBody, 2)
	}
	b.blank()

	f := c.Form
	b.text(f.Title, LineTitle, 0)
	labels := []string{f.NameLabel, f.PhoneLabel, f.ModalityLabel}
	for i, label := range labels {
		b.text(label, LineMuted, 2)
		row := b.add(Line{Kind: LineField, Slot: i, Indent: 2})
		if i == 0 {
			b.doc.FormLine = row
		}
	}
	if f.Submit != "" {
		b.add(Line{Text: button(f.Submit), Kind: LineButton, Indent: 2})
	}
	if c.WhatsApp != "" {
		b.blank()
		b.text("WhatsApp: "+c.WhatsApp, LineAccent, 0)
	}
	b.blank()
}

func (b *builder) footer(page *content.Page) {
	b.add(Line{Kind: LineRule})
	b.centered(page.Meta.Brand, LineBrand)
	b.centered(page.Footer.Tagline, LineMuted)
	if len(page.Footer.Social) > 0 {
		names := make([]string, 0, len(page.Footer.Social))
		for _, s := range page.Footer.Social {
			names = append(names, s.Network)
		}
		b.centered("Nos siga nas redes: "+strings.Join(names, " · "), LineBody)
	}
	b.centered(page.Footer.Copyright, LineMuted)
}

// FieldForLine returns the form field drawn on document row, if any.
func (d *Document) FieldForLine(row int) (widgets.FormField, bool) {
	if row < 0 || row >= len(d.Lines) || d.Lines[row].Kind != LineField {
		return 0, false
	}
	return widgets.FormField(d.Lines[row].Slot), true
}

func button(label string) string {
	return "[ " + label + " ]"
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func padRight(s string, w int) string {
	if pad := w - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s + " "
}

// wrapText breaks s into rows no wider than width cells, splitting on
// spaces. Words wider than width are truncated with runewidth.
func wrapText(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var rows []string
	var cur strings.Builder
	curWidth := 0
	for _, w := range words {
		ww := runewidth.StringWidth(w)
		if ww > width {
			w = runewidth.Truncate(w, width, "…")
			ww = runewidth.StringWidth(w)
		}
		switch {
		case curWidth == 0:
			cur.WriteString(w)
			curWidth = ww
		case curWidth+1+ww <= width:
			cur.WriteByte(' ')
			cur.WriteString(w)
			curWidth += 1 + ww
		default:
			rows = append(rows, cur.String())
			cur.Reset()
			cur.WriteString(w)
			curWidth = ww
		}
	}
	rows = append(rows, cur.String())
	return rows
}
