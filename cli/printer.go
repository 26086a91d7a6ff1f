package cli

import (
	"fmt"
	"github.com/fatih/color"
	"golang.org/x/term"
	"io"
	"os"
)

// Printer writes user-visible output, which goes to STDERR by default.
type Printer struct {
	out      io.Writer
	errColor *color.Color
}

// NewPrinter creates a [Printer] that writes to STDERR.
func NewPrinter() *Printer {
	p := &Printer{}
	p.Redirect(os.Stderr)
	return p
}

// Redirect sends output to writer.
// Error prefixes are colored only if writer is a terminal, and the NO_COLOR environment variable is not set.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
	p.errColor = color.New(color.FgRed, color.Bold)
	if isTerminal(writer) && len(os.Getenv("NO_COLOR")) == 0 {
		p.errColor.EnableColor()
	} else {
		p.errColor.DisableColor()
	}
}

func isTerminal(writer io.Writer) bool {
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Print writes msg as [fmt.Print] would.
func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

// Printf writes a formatted message as [fmt.Printf] would.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// Println writes msg followed by a newline.
func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// Errorf prints a single line prefixed with "error:".
func (p *Printer) Errorf(format string, args ...any) {
	if p.errColor == nil {
		p.Redirect(p.out)
	}
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.errColor.Sprint("error:"), fmt.Sprintf(format, args...))
}
