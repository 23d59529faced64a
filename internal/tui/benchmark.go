package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/bench"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// BenchModel runs the cipher timing sweep and shows the per-step results.
type BenchModel struct {
	services service.VaultService

	results []bench.Result
	running bool
	errMsg  string
}

func NewBenchModel(services service.VaultService) *BenchModel {
	return &BenchModel{services: services}
}

func (m *BenchModel) Init() tea.Cmd {
	m.running = true
	m.errMsg = ""
	m.results = nil
	return m.cmdRun()
}

func (m *BenchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case benchDoneMsg:
		m.running = false
		if msg.err != nil {
			m.errMsg = humanizeVaultError(msg.err)
			return m, nil
		}
		m.results = msg.results
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
	}

	return m, nil
}

func (m *BenchModel) View() string {
	var b strings.Builder

	switch {
	case m.running:
		b.WriteString("Шифрую...\n")
	case m.errMsg != "":
		b.WriteString("Ошибка: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	default:
		b.WriteString("Повторы │ Время\n")
		b.WriteString("────────┼───────────────\n")
		for _, result := range m.results {
			b.WriteString(fmt.Sprintf("%7d │ %s\n", result.Count, result.Elapsed))
		}
	}

	return renderPage("СКОРОСТЬ ШИФРОВАНИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func (m *BenchModel) cmdRun() tea.Cmd {
	services := m.services

	return func() tea.Msg {
		results, err := services.RunBenchmark()
		return benchDoneMsg{results: results, err: err}
	}
}
