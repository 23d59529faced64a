package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ListModel shows every stored record. Records are reloaded each time the
// page is opened.
type ListModel struct {
	ctx      context.Context
	services service.VaultService

	records []models.Record
	loading bool
	errMsg  string
}

func NewListModel(ctx context.Context, services service.VaultService) *ListModel {
	return &ListModel{ctx: ctx, services: services}
}

func (m *ListModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoadAll()
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeVaultError(msg.err)
			return m, nil
		}
		m.records = msg.records
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
	}

	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Загрузка...\n")
	case m.errMsg != "":
		b.WriteString("Ошибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	case len(m.records) == 0:
		b.WriteString("Нет записей\n")
	default:
		for i, record := range m.records {
			b.WriteString(fmt.Sprintf("%3d. %s: %s\n", i+1, fitText(record.Label, 24), record.Password))
		}
	}

	return renderPage("ВСЕ ЗАПИСИ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func (m *ListModel) cmdLoadAll() tea.Cmd {
	ctx := m.ctx
	services := m.services

	return func() tea.Msg {
		records, err := services.RetrieveAll(ctx)
		return recordsLoadedMsg{records: records, err: err}
	}
}
