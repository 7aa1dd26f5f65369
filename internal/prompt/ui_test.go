package prompt

import (
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/require"
)

func withRunForm(t *testing.T, fn func(form *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	runFormFunc = fn
	t.Cleanup(func() { runFormFunc = orig })
}

func TestHuhUIRequiresTerminal(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return false }}
	withRunForm(t, func(*huh.Form) error {
		t.Fatalf("form must not run without a terminal")
		return nil
	})

	var s string
	var b bool
	require.ErrorContains(t, ui.Input("Name", &s, nil), "terminal")
	require.ErrorContains(t, ui.Select("Lang", LanguageOptions(), &s), "terminal")
	require.ErrorContains(t, ui.Confirm("Install", &b), "terminal")
}

func TestHuhUIRunsForm(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	calls := 0
	withRunForm(t, func(form *huh.Form) error {
		require.NotNil(t, form)
		calls++
		return nil
	})

	var s string
	var b bool
	require.NoError(t, ui.Input("Name", &s, func(string) error { return nil }))
	require.NoError(t, ui.Select("Lang", LanguageOptions(), &s))
	require.NoError(t, ui.Confirm("Install", &b))
	require.Equal(t, 3, calls)
}

func TestHuhUIAbortIsCancelled(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	withRunForm(t, func(*huh.Form) error { return huh.ErrUserAborted })

	var s string
	err := ui.Input("Name", &s, nil)
	require.ErrorIs(t, err, ErrCancelled)
}

func TestHuhUIPassesOtherErrors(t *testing.T) {
	ui := &HuhUI{isTerminal: func() bool { return true }}
	boom := errors.New("render failed")
	withRunForm(t, func(*huh.Form) error { return boom })

	var b bool
	require.ErrorIs(t, ui.Confirm("Install", &b), boom)
}

func TestNewHuhUI(t *testing.T) {
	ui := NewHuhUI()
	require.NotNil(t, ui.isTerminal)
}
