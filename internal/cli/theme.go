package cli

import "fmt"

type ThemeCmd struct {
	Value string `arg:"" optional:"" help:"Theme to set (light|dark). Omit to show the current theme."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	tracker, err := ctx.App()
	if err != nil {
		return err
	}

	if c.Value == "" {
		theme, err := tracker.Theme()
		if err != nil {
			return err
		}
		fmt.Println(theme)
		return nil
	}

	if err := tracker.SetTheme(c.Value); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s\n", c.Value)
	return nil
}
