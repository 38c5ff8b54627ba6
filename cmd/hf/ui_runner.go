package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HF-Foundation/HF-CLI/internal/driver"
	"github.com/HF-Foundation/HF-CLI/internal/ui"
)

// runCompileWithUI runs the batch in a goroutine and the progress UI
// on the main one, joined by a buffered event channel. The pipeline
// itself stays sequential.
func runCompileWithUI(title string, files []string, d *driver.Driver) error {
	events := make(chan driver.Event, 256)
	outcome := make(chan error, 1)

	go func() {
		d.Progress = driver.ChannelSink{Ch: events}
		outcome <- d.CompileBatch(files)
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	err := <-outcome
	if uiErr != nil {
		return uiErr
	}
	return err
}
