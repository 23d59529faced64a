package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  service.VaultService
	buildInfo models.AppBuildInfo
}

func New(services service.VaultService, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo}, nil
}

// Run drives the whole session: unlock first, then the main menu and its
// pages. Returns [ErrUserQuit] when the user leaves with Ctrl+C.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"unlock":   NewUnlockModel(ctx, t.services),
		"menu":     NewMenuModel(),
		"generate": NewGenerateModel(ctx, t.services),
		"store":    NewStoreModel(ctx, t.services),
		"list":     NewListModel(ctx, t.services),
		"find":     NewFindModel(ctx, t.services),
		"bench":    NewBenchModel(t.services),
	}

	root := NewRootModel(pages, "unlock", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
