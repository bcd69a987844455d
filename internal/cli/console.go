package cli

import (
	"github.com/pterm/pterm"
)

// Console is the output surface the CLI talks to.
type Console interface {
	LogInfo(format string, a ...interface{})
	Status(message string) StatusHandle
}

// StatusHandle controls a running status indicator.
type StatusHandle interface {
	Stop()
}

// PtermConsole renders console output with pterm.
type PtermConsole struct{}

func NewConsole() *PtermConsole {
	return &PtermConsole{}
}

func (c *PtermConsole) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status starts a spinner with the given message.
func (c *PtermConsole) Status(message string) StatusHandle {
	spinner, _ := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(message)
	return &statusHandle{spinner: spinner}
}

func (h *statusHandle) Stop() {
	if h.spinner != nil {
		_ = h.spinner.Stop()
	}
}
