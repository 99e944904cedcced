package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/OneZee23/life-track/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	theme, err := tracker.Theme()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(tracker, theme), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
