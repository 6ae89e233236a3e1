// Package content holds the copy of the MUV Academia landing page.
//
// A Page is pure data: the presentation layer decides how to lay it out. The
// built-in page is returned by [Default]; [Load] reads an override from a
// YAML or TOML file so the copy can change without a rebuild.
package content

import (
	"errors"
	"fmt"
	"strings"
)

// Page is the whole landing page.
type Page struct {
	Meta         Meta         `yaml:"meta" toml:"meta"`
	Nav          []NavItem    `yaml:"nav" toml:"nav"`
	Hero         Hero         `yaml:"hero" toml:"hero"`
	Services     Section      `yaml:"services" toml:"services"`
	Testimonials Testimonials `yaml:"testimonials" toml:"testimonials"`
	Program      Program      `yaml:"program" toml:"program"`
	Contact      Contact      `yaml:"contact" toml:"contact"`
	Footer       Footer       `yaml:"footer" toml:"footer"`
}

// Meta describes the page itself.
type Meta struct {
	Title       string `yaml:"title" toml:"title"`
	Description string `yaml:"description" toml:"description"`
	Lang        string `yaml:"lang" toml:"lang"`
	Brand       string `yaml:"brand" toml:"brand"`
}

// NavItem is one entry of the navigation menu.
type NavItem struct {
	Label  string `yaml:"label" toml:"label"`
	Anchor string `yaml:"anchor" toml:"anchor"`
}

// Link is a call to action.
type Link struct {
	Label  string `yaml:"label" toml:"label"`
	Anchor string `yaml:"anchor" toml:"anchor"`
}

// Hero is the opening banner.
type Hero struct {
	Headline  string `yaml:"headline" toml:"headline"`
	Highlight string `yaml:"highlight" toml:"highlight"`
	Lead      string `yaml:"lead" toml:"lead"`
	Actions   []Link `yaml:"actions" toml:"actions"`
}

// Section is the list of services ("modalidades").
type Section struct {
	Anchor   string    `yaml:"anchor" toml:"anchor"`
	Title    string    `yaml:"title" toml:"title"`
	Subtitle string    `yaml:"subtitle" toml:"subtitle"`
	Items    []Service `yaml:"items" toml:"items"`
}

// Service is one training modality.
type Service struct {
	Icon        string   `yaml:"icon" toml:"icon"`
	Title       string   `yaml:"title" toml:"title"`
	Description string   `yaml:"description" toml:"description"`
	Benefits    []string `yaml:"benefits" toml:"benefits"`
	Action      Link     `yaml:"action" toml:"action"`
}

// Testimonials is the student quotes section.
type Testimonials struct {
	Anchor   string        `yaml:"anchor" toml:"anchor"`
	Title    string        `yaml:"title" toml:"title"`
	Subtitle string        `yaml:"subtitle" toml:"subtitle"`
	Items    []Testimonial `yaml:"items" toml:"items"`
}

// Testimonial is one quote.
type Testimonial struct {
	Name     string `yaml:"name" toml:"name"`
	Quote    string `yaml:"quote" toml:"quote"`
	Modality string `yaml:"modality" toml:"modality"`
	Stars    int    `yaml:"stars" toml:"stars"`
}

// Program is the social-impact section with its animated badges.
type Program struct {
	Anchor      string `yaml:"anchor" toml:"anchor"`
	Title       string `yaml:"title" toml:"title"`
	Tagline     string `yaml:"tagline" toml:"tagline"`
	Description string `yaml:"description" toml:"description"`
	Stats       []Stat `yaml:"stats" toml:"stats"`
	Action      Link   `yaml:"action" toml:"action"`
}

// Stat is a numeric badge that counts up when scrolled into view.
type Stat struct {
	Label string `yaml:"label" toml:"label"`
	// Target is the final count, displayed as "{Target}+".
	Target int `yaml:"target" toml:"target"`
	// DurationMs is the count-up length; 0 means the default.
	DurationMs int `yaml:"duration_ms" toml:"duration_ms"`
}

// Contact is the contact section with its form.
type Contact struct {
	Anchor   string      `yaml:"anchor" toml:"anchor"`
	Title    string      `yaml:"title" toml:"title"`
	Subtitle string      `yaml:"subtitle" toml:"subtitle"`
	Address  []string    `yaml:"address" toml:"address"`
	Phone    string      `yaml:"phone" toml:"phone"`
	WhatsApp string      `yaml:"whatsapp" toml:"whatsapp"`
	Hours    []Hours     `yaml:"hours" toml:"hours"`
	Form     FormContent `yaml:"form" toml:"form"`
}

// Hours is one line of the opening hours table.
type Hours struct {
	Days string `yaml:"days" toml:"days"`
	Time string `yaml:"time" toml:"time"`
}

// FormContent is the copy of the contact form.
type FormContent struct {
	Title            string `yaml:"title" toml:"title"`
	NameLabel        string `yaml:"name_label" toml:"name_label"`
	NamePlaceholder  string `yaml:"name_placeholder" toml:"name_placeholder"`
	PhoneLabel       string `yaml:"phone_label" toml:"phone_label"`
	PhonePlaceholder string `yaml:"phone_placeholder" toml:"phone_placeholder"`
	ModalityLabel    string `yaml:"modality_label" toml:"modality_label"`
	ModalityPrompt   string `yaml:"modality_prompt" toml:"modality_prompt"`
	Submit           string `yaml:"submit" toml:"submit"`
}

// Footer is the page footer.
type Footer struct {
	Tagline   string   `yaml:"tagline" toml:"tagline"`
	Social    []Social `yaml:"social" toml:"social"`
	Copyright string   `yaml:"copyright" toml:"copyright"`
}

// Social is a social network link.
type Social struct {
	Network string `yaml:"network" toml:"network"`
	URL     string `yaml:"url" toml:"url"`
}

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("content: invalid page")

// Modalities returns the titles of the services, in order.
func (p *Page) Modalities() []string {
	out := make([]string, 0, len(p.Services.Items))
	for _, s := range p.Services.Items {
		out = append(out, s.Title)
	}
	return out
}

// Anchors returns every section anchor defined on the page.
func (p *Page) Anchors() []string {
	var out []string
	for _, a := range []string{p.Services.Anchor, p.Testimonials.Anchor, p.Program.Anchor, p.Contact.Anchor} {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// Validate checks the page for problems the presentation layer cannot
// recover from.
func (p *Page) Validate() error {
	var problems []string

	if len(p.Nav) == 0 {
		problems = append(problems, "navigation has no items")
	}

	anchors := make(map[string]bool)
	for _, a := range p.Anchors() {
		if anchors[a] {
			problems = append(problems, fmt.Sprintf("duplicate anchor %q", a))
		}
		anchors[a] = true
	}
	for _, item := range p.Nav {
		if item.Anchor != "" && !anchors[item.Anchor] {
			problems = append(problems, fmt.Sprintf("nav item %q points to unknown anchor %q", item.Label, item.Anchor))
		}
	}

	for i, s := range p.Program.Stats {
		if s.Target < 0 {
			problems = append(problems, fmt.Sprintf("stat %d (%q) has negative target %d", i, s.Label, s.Target))
		}
		if s.DurationMs < 0 {
			problems = append(problems, fmt.Sprintf("stat %d (%q) has negative duration %d", i, s.Label, s.DurationMs))
		}
	}

	for i, t := range p.Testimonials.Items {
		if t.Stars < 0 || t.Stars > 5 {
			problems = append(problems, fmt.Sprintf("testimonial %d has %d stars", i, t.Stars))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
