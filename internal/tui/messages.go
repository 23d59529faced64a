package tui

import (
	"github.com/MKhiriev/go-pass-vault/internal/bench"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload
// is re-dispatched to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// UnlockResult is produced by the unlock page after an attempt to open the
// vault with the entered master key.
type UnlockResult struct {
	Err   error
	Valid bool
}

// RecordSavedNotice is delivered to the menu page after a record has been
// stored, so the menu can show a confirmation line.
type RecordSavedNotice struct {
	Label string
}

type recordSavedMsg struct {
	generated string
	err       error
}

type recordsLoadedMsg struct {
	records []models.Record
	err     error
}

type recordFoundMsg struct {
	record *models.Record
	err    error
}

type benchDoneMsg struct {
	results []bench.Result
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
