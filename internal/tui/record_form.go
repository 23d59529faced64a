// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// StoreModel is the Bubble Tea model for saving a user-supplied password
// under a label. Duplicate labels are rejected by the storage layer and
// surface as an inline error.
type StoreModel struct {
	ctx      context.Context
	services service.VaultService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewStoreModel creates a [StoreModel] with label and password inputs.
func NewStoreModel(ctx context.Context, services service.VaultService) *StoreModel {
	labelInput := textinput.New()
	labelInput.Placeholder = "label"
	labelInput.CharLimit = 64
	labelInput.Width = 40
	labelInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40

	return &StoreModel{
		ctx:      ctx,
		services: services,
		inputs:   []textinput.Model{labelInput, passwordInput},
	}
}

// Init implements [tea.Model].
func (m *StoreModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *StoreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(recordSavedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeVaultError(result.err)
			return m, nil
		}

		label := strings.TrimSpace(m.inputs[0].Value())
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: "menu", Payload: RecordSavedNotice{Label: label}}
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			label := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if label == "" || password == "" {
				m.errMsg = "Название и пароль обязательны"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdStore(label, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *StoreModel) View() string {
	var b strings.Builder
	b.WriteString("Поле     │ Значение\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Название │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Пароль   │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Сохраняю...]\n")
	} else {
		b.WriteString("\n[Сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("НОВАЯ ЗАПИСЬ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *StoreModel) cmdStore(label, password string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		err := services.StoreRecord(ctx, label, password)
		return recordSavedMsg{err: err}
	}
}

func (m *StoreModel) reset() {
	m.errMsg = ""
	m.submitting = false
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *StoreModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *StoreModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
