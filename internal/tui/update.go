package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/showcase"
	tuicomponents "github.com/alexisbeaulieu97/bookmeza/internal/tui/components"
	bookmezaerrors "github.com/alexisbeaulieu97/bookmeza/pkg/errors"
)

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.editor.SetWidth(m.cardWidth() - 4)
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditorKey(msg)
		}
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.frame++
		return m, cmd

	case ClickedMsg:
		m.clickCnt++
		m.clicks = m.clicks.Append(tuicomponents.ClickEntry{
			Showcase: msg.Showcase,
			Source:   msg.Event.Source,
			At:       msg.Event.At,
		})
		m.log.WithFields(map[string]any{
			"showcase": msg.Showcase,
			"source":   msg.Event.Source,
		}).Debug("click handled")
		return m, nil

	case StateChangedMsg:
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.log.Error(msg.Err, "copy markup")
			return m, m.setStatus("Copy failed: " + msg.Err.Error())
		}
		return m, m.setStatus("Markup copied to clipboard")

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		showcase.CloseAll(m.showcases)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Language):
		locale := m.store.Toggle()
		return m, m.setStatus(m.store.Translate("currentLanguage") + " (" + locale + ")")

	case key.Matches(msg, m.keys.Dark):
		m.theme = m.theme.Toggle()
		return m, m.setStatus("Theme: " + m.theme.Name)
	}

	current := m.Current()
	if current == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.show(m.index - 1)

	case key.Matches(msg, m.keys.Next):
		m.show(m.index + 1)

	case key.Matches(msg, m.keys.Click):
		result := current.Click(components.NewEvent("keyboard", msg.String()))
		if result == components.ClickIgnored {
			return m, m.setStatus("Click ignored")
		}

	case key.Matches(msg, m.keys.Code):
		current.ToggleCodeVisible()

	case key.Matches(msg, m.keys.Edit):
		if !current.CodeVisible() {
			current.ToggleCodeVisible()
		}
		m.editing = true
		m.editor.SetValue(current.RawJSON())
		return m, m.editor.Focus()

	case key.Matches(msg, m.keys.Reset):
		current.Reset()
		m.editor.SetValue(current.RawJSON())
		return m, m.setStatus("Props reset")

	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.copy, current.Markup())
	}

	return m, nil
}

func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.Current()

	switch {
	case msg.Type == tea.KeyCtrlC:
		showcase.CloseAll(m.showcases)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Leave):
		m.editing = false
		m.editor.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		current.SetRawJSON(m.editor.Value())
		if err := current.ApplyJSONText(); err != nil {
			m.rejected++
			var parseErr *bookmezaerrors.ParseError
			if errors.As(err, &parseErr) {
				return m, m.setStatus(fmt.Sprintf("Invalid JSON at %d:%d", parseErr.Line, parseErr.Column))
			}
			return m, m.setStatus("Invalid JSON")
		}
		m.applied++
		if renderErr := current.RenderError(); renderErr != nil {
			return m, m.setStatus("Props applied with errors")
		}
		return m, m.setStatus("Props applied")
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}
