package tui

import (
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	// celebrationFrames bounds the effect; it always burns out on its own
	celebrationFrames   = 24
	celebrationInterval = 125 * time.Millisecond
)

// celebrationTickMsg advances the confetti animation by one frame
type celebrationTickMsg struct{}

// celebration is the purely presentational confetti state. It reads no
// entry state and writes none.
type celebration struct {
	framesLeft int
	seed       int
}

func (c *celebration) active() bool {
	return c.framesLeft > 0
}

func (c *celebration) start(seed int) tea.Cmd {
	c.framesLeft = celebrationFrames
	c.seed = seed
	return celebrationTick()
}

func (c *celebration) tick() tea.Cmd {
	if c.framesLeft == 0 {
		return nil
	}
	c.framesLeft--
	if c.framesLeft == 0 {
		return nil
	}
	return celebrationTick()
}

func celebrationTick() tea.Cmd {
	return tea.Tick(celebrationInterval, func(time.Time) tea.Msg {
		return celebrationTickMsg{}
	})
}

// render draws one confetti row. The pattern is derived from the frame
// counter so frames differ without any shared randomness.
func (c *celebration) render(width int) string {
	if !c.active() {
		return ""
	}
	if width < 8 {
		width = 8
	}
	particles := []rune("✦✧･ﾟ*")
	var row strings.Builder
	for i := 0; i < width; i++ {
		n := (i*7 + c.framesLeft*3 + c.seed) % 11
		if n > 3 {
			row.WriteRune(' ')
			continue
		}
		color := confettiColors[(i+c.framesLeft)%len(confettiColors)]
		row.WriteString(lipgloss.NewStyle().Foreground(color).Render(string(particles[n])))
	}
	return row.String()
}

// notifySuccess emits a terminal success cue for a celebrated hand
func notifySuccess(strength string) {
	out := termenv.NewOutput(os.Stdout)
	out.Notify("chipbook", "Nice hand: "+strength)
}
