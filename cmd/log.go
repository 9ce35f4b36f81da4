package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown renders markdown for the terminal. When stdout is not a
// terminal (piped output), the raw markdown is printed unchanged.
func printMarkdown(markdown string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(markdown)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(200),
	)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	out, err := r.Render(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
