// Package progress renders an optional terminal progress bar for solver
// runs. The bar is a scoped resource: create it before stepping, close it
// on every exit path. It observes simulated time only and never feeds
// back into the numerics.
package progress

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrUnavailable is returned when a progress display is explicitly
// requested but no interactive terminal is attached.
var ErrUnavailable = errors.New("progress: display requires an interactive terminal")

const barWidth = 40

var (
	fillStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// Bar implements solver.Reporter on top of a background bubbletea
// program.
type Bar struct {
	prog *tea.Program
	done chan struct{}
}

// NewBar creates a bar spanning |targetTime - referenceTime| simulated
// seconds. Fails with ErrUnavailable when stdout is not a terminal.
func NewBar(referenceTime, targetTime float64) (*Bar, error) {
	if !isTerminal(os.Stdout) {
		return nil, ErrUnavailable
	}
	b := &Bar{
		prog: tea.NewProgram(barModel{total: math.Abs(targetTime - referenceTime)}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(b.done)
		b.prog.Run()
	}()
	return b, nil
}

// Update reports the cumulative simulated time advanced since the
// reference time.
func (b *Bar) Update(advanced float64) {
	b.prog.Send(advanceMsg(advanced))
}

// Close tears the bar down and waits for the terminal to be restored.
func (b *Bar) Close() error {
	b.prog.Quit()
	<-b.done
	return nil
}

type advanceMsg float64

type barModel struct {
	total   float64
	current float64
}

func (m barModel) Init() tea.Cmd { return nil }

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		m.current = float64(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m barModel) View() string {
	frac := 0.0
	if m.total > 0 {
		frac = math.Min(m.current/m.total, 1)
	}
	filled := int(frac * barWidth)
	bar := fillStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barWidth-filled))
	label := labelStyle.Render(fmt.Sprintf(" %6.3f/%.3f sim_s", m.current, m.total))
	return bar + label + "\n"
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
