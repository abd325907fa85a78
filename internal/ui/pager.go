package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// PagerOps shows exported selections in the ov pager, handing the
// terminal back and forth with the Bubble Tea program.
type PagerOps struct {
	program *tea.Program
}

func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(prog *tea.Program) {
	p.program = prog
}

// ShowInPager displays content in ov, restoring the terminal afterwards.
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay so ov has fully exited before the terminal is restored
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	reader := strings.NewReader(content)
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Don't let ov write the buffer back onto our screen on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
