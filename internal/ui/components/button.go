package components

import (
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/sqltrail/sqltrail/internal/ui/theme"
)

// Button is an action triggered by a key binding.
type Button struct {
	Label   string
	Binding key.Binding
}

// NewButton creates a button pressed by binding.
func NewButton(label string, binding key.Binding) Button {
	return Button{
		Label:   label,
		Binding: binding,
	}
}

// Active reports whether the button can be pressed.
func (b Button) Active() bool {
	return b.Binding.Enabled()
}

// SetActive enables or disables the button.
func (b *Button) SetActive(active bool) {
	b.Binding.SetEnabled(active)
}

// Matches reports whether msg is one of the button's keys, whether or not
// the button is active.
func (b Button) Matches(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyPressMsg)
	return ok && slices.Contains(b.Binding.Keys(), kmsg.String())
}

// View renders the button with its key hint.
func (b Button) View() string {
	label := b.Label
	if h := b.Binding.Help(); h.Key != "" {
		label += " (" + h.Key + ")"
	}
	if b.Active() {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
