// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// GenerateModel is the Bubble Tea model for generating a random password
// and saving it under a label. A length the user leaves empty or fills with
// something unparsable falls back to the configured default. The generated
// password stays on screen so it can be copied with "c".
type GenerateModel struct {
	ctx      context.Context
	services service.VaultService

	inputs     []textinput.Model
	focus      int
	submitting bool
	generated  string
	status     string
	errMsg     string
}

// NewGenerateModel creates a [GenerateModel] with label and length inputs.
func NewGenerateModel(ctx context.Context, services service.VaultService) *GenerateModel {
	labelInput := textinput.New()
	labelInput.Placeholder = "label"
	labelInput.CharLimit = 64
	labelInput.Width = 40
	labelInput.Focus()

	lengthInput := textinput.New()
	lengthInput.Placeholder = strconv.Itoa(services.DefaultPasswordLength())
	lengthInput.CharLimit = 3
	lengthInput.Width = 10

	return &GenerateModel{
		ctx:      ctx,
		services: services,
		inputs:   []textinput.Model{labelInput, lengthInput},
	}
}

// Init implements [tea.Model].
func (m *GenerateModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model].
func (m *GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeVaultError(msg.err)
			return m, nil
		}
		m.generated = msg.generated
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать: " + msg.err.Error()
			return m, nil
		}
		m.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			label := strings.TrimSpace(m.inputs[0].Value())
			saved := m.generated != ""
			m.reset()
			if saved {
				return m, func() tea.Msg {
					return NavigateTo{Page: "menu", Payload: RecordSavedNotice{Label: label}}
				}
			}
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "c":
			// Only a hotkey once the password is on screen; before that
			// "c" belongs to the focused text input.
			if m.generated != "" {
				return m, cmdCopyToClipboard(m.generated)
			}
		case "enter":
			if m.submitting || m.generated != "" {
				return m, nil
			}

			label := strings.TrimSpace(m.inputs[0].Value())
			if label == "" {
				m.errMsg = "Название обязательно"
				return m, nil
			}

			length, err := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
			if err != nil || length <= 0 {
				length = m.services.DefaultPasswordLength()
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdGenerate(label, length)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *GenerateModel) View() string {
	var b strings.Builder
	b.WriteString("Поле     │ Значение\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Название │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Длина    │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.generated != "" {
		b.WriteString(fmt.Sprintf("\nСгенерированный пароль: %s\n", m.generated))
		if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n")
		}
		if m.errMsg != "" {
			b.WriteString("\nОшибка: ")
			b.WriteString(m.errMsg)
			b.WriteString("\n")
		}
		return renderPage("ГЕНЕРАЦИЯ ПАРОЛЯ", strings.TrimRight(b.String(), "\n"), "c: копировать │ esc: назад")
	}

	if m.submitting {
		b.WriteString("\n[Генерирую...]\n")
	} else {
		b.WriteString("\n[Сгенерировать и сохранить]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("ГЕНЕРАЦИЯ ПАРОЛЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *GenerateModel) cmdGenerate(label string, length int) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		password, err := services.GenerateAndStore(ctx, label, length)
		return recordSavedMsg{generated: password, err: err}
	}
}

func (m *GenerateModel) reset() {
	m.errMsg = ""
	m.status = ""
	m.generated = ""
	m.submitting = false
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *GenerateModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *GenerateModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
