// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/colonyops/datepicker/internal/core/styles"
)

type ctxKey struct{}

// Printer writes human-facing status output. Command results that scripts
// consume go to the command writer instead.
type Printer struct {
	w io.Writer
}

// New creates a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter stores p in ctx.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.MutedStyle.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.SuccessStyle.Render("✔ ") + fmt.Sprintf(format, args...))
}

// Success writes a title with a muted detail underneath.
func (p *Printer) Success(title, detail string) {
	p.Successf("%s", title)
	if detail != "" {
		p.line("  " + styles.MutedStyle.Render(detail))
	}
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.WarningStyle.Render("! ") + fmt.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.ErrorStyle.Render("✘ ") + fmt.Sprintf(format, args...))
}

// Section writes a header followed by a divider.
func (p *Printer) Section(title string) {
	p.line(styles.CommandHeaderStyle.Render(title))
	p.line(styles.DividerStyle.Render("──────────────────────────"))
}

func (p *Printer) CheckItem(label, detail string) { p.item(styles.SuccessStyle.Render("✔"), label, detail) }
func (p *Printer) WarnItem(label, detail string)  { p.item(styles.WarningStyle.Render("!"), label, detail) }
func (p *Printer) FailItem(label, detail string)  { p.item(styles.ErrorStyle.Render("✘"), label, detail) }

func (p *Printer) item(mark, label, detail string) {
	if detail == "" {
		p.line("  " + mark + " " + label)
		return
	}
	p.line("  " + mark + " " + label + " " + styles.MutedStyle.Render(detail))
}
