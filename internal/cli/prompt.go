package cli

import (
	"github.com/pterm/pterm"
)

// Prompter asks the user for missing inputs.
type Prompter interface {
	Text(label string) (string, error)
	Select(label string, options []string) (string, error)
}

// PtermPrompter prompts on the terminal with pterm's interactive printers.
type PtermPrompter struct{}

func NewPrompter() *PtermPrompter {
	return &PtermPrompter{}
}

func (p *PtermPrompter) Text(label string) (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(label)
}

func (p *PtermPrompter) Select(label string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.
		WithOptions(options).
		Show(label)
}
