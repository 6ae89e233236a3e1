package widgets

import (
	"unicode"

	"github.com/rs/zerolog"

	"github.com/muv-academia/muv/pkg/content"
	"github.com/muv-academia/muv/pkg/log"
)

// FormField identifies a contact form field.
type FormField int

const (
	FieldName FormField = iota
	FieldPhone
	FieldModality
	fieldCount
)

func (f FormField) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldPhone:
		return "whatsapp"
	case FieldModality:
		return "modality"
	default:
		return "unknown"
	}
}

// ContactEntry is what the visitor typed.
type ContactEntry struct {
	Name     string
	WhatsApp string
	Modality string
}

// Complete reports whether every field was filled.
func (e ContactEntry) Complete() bool {
	return e.Name != "" && e.WhatsApp != "" && e.Modality != ""
}

// ContactForm collects the trial class request on the client side. It has
// no submission endpoint: Submit only hands the entry back.
type ContactForm struct {
	text    content.FormContent
	options []string

	name     []rune
	phone    []rune
	modality int // index into options, -1 for the prompt

	focus   FormField
	focused bool

	logger zerolog.Logger
}

// NewContactForm creates an empty form whose modality select offers options.
func NewContactForm(text content.FormContent, options []string) *ContactForm {
	return &ContactForm{
		text:     text,
		options:  options,
		modality: -1,
		logger:   log.Component("contact-form"),
	}
}

// Labels returns the form's labels and placeholders.
func (f *ContactForm) Labels() content.FormContent {
	return f.text
}

// Focus moves input focus to field.
func (f *ContactForm) Focus(field FormField) {
	if field < 0 || field >= fieldCount {
		return
	}
	f.focus = field
	f.focused = true
}

// Blur removes input focus.
func (f *ContactForm) Blur() {
	f.focused = false
}

// Focused returns the focused field, if any.
func (f *ContactForm) Focused() (FormField, bool) {
	return f.focus, f.focused
}

// Next moves focus to the following field, wrapping around. An unfocused
// form focuses its first field.
func (f *ContactForm) Next() {
	if !f.focused {
		f.Focus(FieldName)
		return
	}
	f.focus = (f.focus + 1) % fieldCount
}

// Prev moves focus to the preceding field, wrapping around.
func (f *ContactForm) Prev() {
	if !f.focused {
		f.Focus(FieldModality)
		return
	}
	f.focus = (f.focus + fieldCount - 1) % fieldCount
}

// Input types r into the focused text field. The WhatsApp field accepts
// only phone characters.
func (f *ContactForm) Input(r rune) bool {
	if !f.focused {
		return false
	}
	switch f.focus {
	case FieldName:
		if !unicode.IsPrint(r) {
			return false
		}
		f.name = append(f.name, r)
		return true
	case FieldPhone:
		if !isPhoneRune(r) {
			return false
		}
		f.phone = append(f.phone, r)
		return true
	default:
		return false
	}
}

func isPhoneRune(r rune) bool {
	switch r {
	case '+', ' ', '-', '(', ')':
		return true
	}
	return r >= '0' && r <= '9'
}

// Backspace deletes the last rune of the focused text field, or clears the
// modality selection.
func (f *ContactForm) Backspace() {
	if !f.focused {
		return
	}
	switch f.focus {
	case FieldName:
		if len(f.name) > 0 {
			f.name = f.name[:len(f.name)-1]
		}
	case FieldPhone:
		if len(f.phone) > 0 {
			f.phone = f.phone[:len(f.phone)-1]
		}
	case FieldModality:
		f.modality = -1
	}
}

// CycleOption moves the modality selection by delta, wrapping around. The
// prompt is not selectable once a choice is made.
func (f *ContactForm) CycleOption(delta int) {
	n := len(f.options)
	if n == 0 {
		return
	}
	if f.modality < 0 {
		if delta >= 0 {
			f.modality = 0
		} else {
			f.modality = n - 1
		}
		return
	}
	f.modality = ((f.modality+delta)%n + n) % n
}

// Display returns the text to show for field and whether it is the
// placeholder.
func (f *ContactForm) Display(field FormField) (string, bool) {
	switch field {
	case FieldName:
		if len(f.name) == 0 {
			return f.text.NamePlaceholder, true
		}
		return string(f.name), false
	case FieldPhone:
		if len(f.phone) == 0 {
			return f.text.PhonePlaceholder, true
		}
		return string(f.phone), false
	case FieldModality:
		if f.modality < 0 {
			return f.text.ModalityPrompt, true
		}
		return f.options[f.modality], false
	}
	return "", true
}

// Entry returns the collected values.
func (f *ContactForm) Entry() ContactEntry {
	e := ContactEntry{
		Name:     string(f.name),
		WhatsApp: string(f.phone),
	}
	if f.modality >= 0 {
		e.Modality = f.options[f.modality]
	}
	return e
}

// Submit returns the entry. There is no endpoint to send it to.
func (f *ContactForm) Submit() ContactEntry {
	e := f.Entry()
	f.logger.Info().
		Bool("complete", e.Complete()).
		Str("modality", e.Modality).
		Msg("contact form submitted; no submission endpoint configured")
	return e
}

// Reset clears every field and the focus.
func (f *ContactForm) Reset() {
	f.name = nil
	f.phone = nil
	f.modality = -1
	f.focused = false
	f.focus = FieldName
}
