// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FindModel looks a record up by label. The match is case-insensitive;
// an absent label is reported as "not found" rather than as an error. A
// found password can be copied with "c".
type FindModel struct {
	ctx      context.Context
	services service.VaultService

	input     textinput.Model
	searching bool
	searched  bool
	found     *models.Record
	status    string
	errMsg    string
}

func NewFindModel(ctx context.Context, services service.VaultService) *FindModel {
	labelInput := textinput.New()
	labelInput.Placeholder = "label"
	labelInput.CharLimit = 64
	labelInput.Width = 40
	labelInput.Focus()

	return &FindModel{
		ctx:      ctx,
		services: services,
		input:    labelInput,
	}
}

func (m *FindModel) Init() tea.Cmd {
	m.searched = false
	m.found = nil
	m.status = ""
	m.errMsg = ""
	m.input.SetValue("")
	return textinput.Blink
}

func (m *FindModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordFoundMsg:
		m.searching = false
		m.searched = true
		if msg.err != nil {
			m.errMsg = humanizeVaultError(msg.err)
			return m, nil
		}
		m.found = msg.record
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
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "c":
			if m.found != nil {
				return m, cmdCopyToClipboard(m.found.Password)
			}
		case "enter":
			if m.searching {
				return m, nil
			}

			label := strings.TrimSpace(m.input.Value())
			if label == "" {
				m.errMsg = "Введите название записи"
				return m, nil
			}

			m.errMsg = ""
			m.found = nil
			m.searched = false
			m.searching = true
			return m, m.cmdFind(label)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *FindModel) View() string {
	var b strings.Builder
	b.WriteString("Название: [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	switch {
	case m.searching:
		b.WriteString("\nПоиск...\n")
	case m.errMsg != "":
		b.WriteString("\nОшибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	case m.searched && m.found == nil:
		b.WriteString("\nЗапись не найдена\n")
	case m.found != nil:
		b.WriteString("\nНайдено: ")
		b.WriteString(m.found.String())
		b.WriteString("\n")
		if m.status != "" {
			b.WriteString(m.status)
			b.WriteString("\n")
		}
	}

	hotKeys := "esc: назад │ enter: найти"
	if m.found != nil {
		hotKeys = "c: копировать пароль │ " + hotKeys
	}
	return renderPage("ПОИСК ЗАПИСИ", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *FindModel) cmdFind(label string) tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		record, err := services.RetrieveByLabel(ctx, label)
		return recordFoundMsg{record: record, err: err}
	}
}
