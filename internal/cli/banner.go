package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	bannerColor = color.New(color.FgCyan, color.Bold).SprintFunc()
	resultColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)

// displayWelcomeBanner prints the title shown at the start of an interactive session.
func displayWelcomeBanner(w io.Writer, version string) {
	banner := `
   ____              _____          _       _     _
  / ___|  ___  __ _ |  ___| __ ___ (_) __ _| |__ | |_
  \___ \ / _ \/ _' || |_ | '__/ _ \| |/ _' | '_ \| __|
   ___) |  __/ (_| ||  _|| | |  __/| | (_| | | | | |_
  |____/ \___|\__,_||_|  |_|  \___||_|\__, |_| |_|\__|
                                      |___/
`
	fmt.Fprintln(w, bannerColor(banner))
	fmt.Fprintln(w, bannerColor(fmt.Sprintf("Sea Freight Rate Calculator (v%s)", version)))
}
