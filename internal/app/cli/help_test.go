package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"evtxview/internal/config"
)

func Test_helpModel_Update(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
		quit bool
	}{
		{name: "q quits", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, quit: true},
		{name: "esc quits", msg: tea.KeyMsg{Type: tea.KeyEsc}, quit: true},
		{name: "ctrl+c quits", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, quit: true},
		{name: "viewer keys are ignored", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'E'}}},
		{name: "resize is ignored", msg: tea.WindowSizeMsg{Width: 80, Height: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newHelpModel()
			assert.Nil(t, m.Init())

			model, cmd := m.Update(tt.msg)
			assert.Equal(t, m, model)

			if !tt.quit {
				assert.Nil(t, cmd)
				return
			}

			if assert.NotNil(t, cmd) {
				assert.Equal(t, tea.Quit(), cmd())
			}
		})
	}
}

func Test_helpModel_View(t *testing.T) {
	view := newHelpModel().View()

	for _, want := range []string{
		config.AppName,
		"Usage:",
		"Options:",
		"Examples:",
		"--exclude-event",
		"--include-user",
		"evtxview help",
		"evtxview version",
		"Press q or esc to exit",
	} {
		assert.Contains(t, view, want)
	}
}

func Test_renderUsage(t *testing.T) {
	usage := renderUsage()

	assert.Contains(t, usage, "--no-ui")
	assert.Contains(t, usage, config.FileName)
	assert.NotContains(t, usage, "Press q or esc to exit")
}
