package commands

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/datepicker/internal/core/styles"
)

//go:embed docs/*.md
var docsFS embed.FS

// docTopics maps subcommand names to embedded guides.
var docTopics = []struct {
	name  string
	file  string
	usage string
}{
	{"formats", "docs/formats.md", "How typed dates and times are read"},
	{"config", "docs/config.md", "Picker configuration reference"},
	{"keys", "docs/keys.md", "Picker and form key bindings"},
}

type DocCmd struct {
	raw   bool
	width int
}

// NewDocCmd creates a new doc command.
func NewDocCmd() *DocCmd {
	return &DocCmd{}
}

// Register adds the doc command to the application.
func (cmd *DocCmd) Register(app *cli.Command) *cli.Command {
	topics := make([]*cli.Command, 0, len(docTopics))
	for _, topic := range docTopics {
		file := topic.file
		topics = append(topics, &cli.Command{
			Name:  topic.name,
			Usage: topic.usage,
			Action: func(_ context.Context, c *cli.Command) error {
				return cmd.show(c, file)
			},
		})
	}

	app.Commands = append(app.Commands, &cli.Command{
		Name:  "doc",
		Usage: "Show guides for typed text, configuration and keys",
		Description: `Renders the built-in guides as styled markdown.

Use 'datepicker doc formats' to see how typed dates and times are read.
Use --raw to print the markdown source.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without styling",
				Destination: &cmd.raw,
			},
			&cli.IntFlag{
				Name:        "width",
				Usage:       "word wrap width",
				Value:       80,
				Destination: &cmd.width,
			},
		},
		Commands: topics,
	})
	return app
}

func (cmd *DocCmd) show(c *cli.Command, file string) error {
	content, err := docsFS.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read guide: %w", err)
	}

	w := c.Root().Writer
	if cmd.raw {
		_, err = w.Write(content)
		return err
	}

	_, err = fmt.Fprintln(w, renderMarkdown(string(content), cmd.width))
	return err
}

// renderMarkdown styles md with the active theme, falling back to the
// source when rendering fails.
func renderMarkdown(md string, width int) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return md
	}
	return strings.TrimRight(rendered, "\n")
}
