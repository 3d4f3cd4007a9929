package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

// RenderError formats a command failure for stderr. Terminal output gets
// the ERROR badge.
func RenderError(err error, f Format) string {
	if err == nil {
		return ""
	}
	if f != FormatTerminal {
		return "Error: " + err.Error()
	}
	badge := pterm.Error.Prefix.Style.Sprint(" " + pterm.Error.Prefix.Text + " ")
	return fmt.Sprintf("%s %s", badge, pterm.Error.MessageStyle.Sprint(err.Error()))
}
