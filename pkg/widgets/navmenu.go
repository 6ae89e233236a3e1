package widgets

import "github.com/muv-academia/muv/pkg/content"

// NavMenu is the collapsible navigation menu. Its only state is whether the
// panel is open; the last write wins.
type NavMenu struct {
	// Items are the menu entries in display order.
	Items []content.NavItem

	open bool
}

// NewNavMenu returns a closed menu.
func NewNavMenu(items []content.NavItem) *NavMenu {
	return &NavMenu{Items: items}
}

// Toggle flips the panel and returns the new state.
func (m *NavMenu) Toggle() bool {
	m.open = !m.open
	return m.open
}

// SetOpen sets the panel state.
func (m *NavMenu) SetOpen(open bool) {
	m.open = open
}

// Close closes the panel.
func (m *NavMenu) Close() {
	m.open = false
}

// IsOpen reports whether the panel is shown.
func (m *NavMenu) IsOpen() bool {
	return m.open
}

// Select closes the panel and returns the anchor of item i.
func (m *NavMenu) Select(i int) (string, bool) {
	if i < 0 || i >= len(m.Items) {
		return "", false
	}
	m.open = false
	return m.Items[i].Anchor, true
}
