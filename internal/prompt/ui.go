// Package prompt asks for the create arguments the command line left out.
package prompt

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/any-source/lokio/internal/messages"
	"github.com/any-source/lokio/internal/terminal"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New(messages.PromptCancelled)

// Option is one choice in a Select prompt.
type Option struct {
	Label string
	Value string
}

// UI defines the interaction methods.
type UI interface {
	Input(title string, value *string, validate func(string) error) error
	Select(title string, options []Option, value *string) error
	Confirm(title string, value *bool) error
}

// HuhUI implements UI using charmbracelet/huh.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI creates a HuhUI using terminal.IsInteractive.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.IsInteractive}
}

func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.IsInteractive
	}
	if checker() {
		return nil
	}
	return errors.New(messages.PromptRequiresTerminal)
}

// keyMap makes both Esc and Ctrl+C abort the form and hides filtering.
func keyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	km.Select.Filter.SetEnabled(false)
	km.Select.SetFilter.SetEnabled(false)
	km.Select.ClearFilter.SetEnabled(false)
	return km
}

// interruptToQuit turns InterruptMsg into QuitMsg so the renderer clears the
// form before the program exits.
func interruptToQuit(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}

func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}
	form.WithKeyMap(keyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(interruptToQuit),
	)
	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// Input renders a text prompt. validate may be nil.
func (ui *HuhUI) Input(title string, value *string, validate func(string) error) error {
	input := huh.NewInput().Title(title).Value(value)
	if validate != nil {
		input = input.Validate(validate)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(input)))
}

// Select renders a single-choice prompt.
func (ui *HuhUI) Select(title string, options []Option, value *string) error {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(opts...).
			Value(value),
	)))
}

// Confirm renders a yes/no prompt.
func (ui *HuhUI) Confirm(title string, value *bool) error {
	return ui.runForm(huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Value(value),
	)))
}
