package pager

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/noborus/ov/oviewer"
)

// Terminal is the part of a Bubble Tea program the pager needs
type Terminal interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Show pages r with ov until the user quits
func Show(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ShowString pages content
func ShowString(content string) error {
	return Show(strings.NewReader(content))
}

// ShowReleased hands the terminal to ov while a TUI is running, restoring it afterwards
func ShowReleased(term Terminal, content string) error {
	if term == nil {
		return fmt.Errorf("program not set")
	}

	if err := term.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = term.RestoreTerminal()
	}()

	return ShowString(content)
}
