package provision

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/any-source/lokio/internal/messages"
)

// Notifier writes user-facing progress. Progress goes to Out; warnings and
// failures go to Err.
type Notifier struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool

	banner  *color.Color
	success *color.Color
	warn    *color.Color
	fail    *color.Color
}

// NewNotifier returns a Notifier; colors are disabled when useColor is false.
func NewNotifier(out io.Writer, errOut io.Writer, useColor bool, verbose bool) *Notifier {
	n := &Notifier{
		Out:     out,
		Err:     errOut,
		Verbose: verbose,
		banner:  color.New(color.FgCyan, color.Bold),
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{n.banner, n.success, n.warn, n.fail} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return n
}

// Start announces a new run.
func (n *Notifier) Start() {
	n.println(n.Out, n.banner, messages.ProvisionStartSetup)
}

// Progress reports a completed step.
func (n *Notifier) Progress(format string, args ...any) {
	n.println(n.Out, n.success, fmt.Sprintf(format, args...))
}

// Info prints a plain progress line.
func (n *Notifier) Info(format string, args ...any) {
	if n == nil || n.Out == nil {
		return
	}
	_, _ = fmt.Fprintf(n.Out, format+"\n", args...)
}

// Warn reports a non-fatal condition.
func (n *Notifier) Warn(msg string) {
	n.println(n.Err, n.warn, fmt.Sprintf(messages.ProvisionWarningFmt, msg))
}

// Failure reports an aborted run with the raw cause.
func (n *Notifier) Failure(err error) {
	n.println(n.Err, n.fail, messages.ProvisionFailure)
	if err != nil && n != nil && n.Err != nil {
		_, _ = fmt.Fprintln(n.Err, err.Error())
	}
}

// Diff prints a unified diff when verbose output is on.
func (n *Notifier) Diff(diff string) {
	diff = strings.TrimSpace(diff)
	if n == nil || !n.Verbose || diff == "" || n.Out == nil {
		return
	}
	_, _ = fmt.Fprintln(n.Out, messages.ProvisionConfigDiffHeader)
	_, _ = fmt.Fprintln(n.Out, diff)
}

// InstallStart reports an installer about to run.
func (n *Notifier) InstallStart(command string) {
	n.Info(messages.ProvisionInstallStartFmt, command)
}

func (n *Notifier) println(w io.Writer, c *color.Color, msg string) {
	if n == nil || w == nil {
		return
	}
	if c == nil {
		_, _ = fmt.Fprintln(w, msg)
		return
	}
	_, _ = c.Fprintln(w, msg)
}
