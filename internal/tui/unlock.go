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

// UnlockModel is the Bubble Tea model for the master-key entry screen. The
// key input uses masked echo. On submission it dispatches an async unlock
// command; the resulting [UnlockResult] is handled by [RootModel] on
// success and by this model on failure, so a wrong or malformed key simply
// re-prompts with an explanation.
type UnlockModel struct {
	ctx      context.Context
	services service.VaultService

	input      textinput.Model
	submitting bool
	errMsg     string
}

// NewUnlockModel creates an [UnlockModel] with a focused, masked key input.
func NewUnlockModel(ctx context.Context, services service.VaultService) *UnlockModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "master key"
	keyInput.CharLimit = 32
	keyInput.Width = 40
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '*'
	keyInput.Focus()

	return &UnlockModel{
		ctx:      ctx,
		services: services,
		input:    keyInput,
	}
}

// Init implements [tea.Model].
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(UnlockResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeVaultError(result.Err)
		} else if !result.Valid {
			m.errMsg = "Неверный мастер-ключ для этого хранилища"
		}
		m.input.SetValue("")
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok && keyMsg.String() == "enter" {
		if m.submitting {
			return m, nil
		}

		masterKey := strings.TrimSpace(m.input.Value())
		if masterKey == "" {
			m.errMsg = "Введите мастер-ключ"
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		return m, m.cmdUnlock(masterKey)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Мастер-ключ: [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	b.WriteString("\nТребования: 16–32 символа, латинские буквы и цифры\n")

	if m.submitting {
		b.WriteString("\n[Открываю...]\n")
	} else {
		b.WriteString("\n[Открыть]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ОТКРЫТЬ ХРАНИЛИЩЕ", strings.TrimRight(b.String(), "\n"), "enter: подтвердить")
}

func (m *UnlockModel) cmdUnlock(masterKey string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		valid, err := services.Unlock(ctx, masterKey)
		return UnlockResult{Err: err, Valid: valid}
	}
}
