package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/solarsim/internal/sim"
)

const (
	mapWidth  = 60
	mapHeight = 22
)

// Playback is a bubbletea model that replays a completed run sample by
// sample. It never recomputes anything; scrubbing is just indexing into
// the stored trajectories.
type Playback struct {
	res    *sim.Result
	frame  int
	paused bool
	speed  int

	width  int
	height int
}

func NewPlayback(res *sim.Result) *Playback {
	return &Playback{res: res, speed: 1, width: 80, height: 30}
}

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (p *Playback) Init() tea.Cmd { return frameTick() }

func (p *Playback) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return p, tea.Quit
		case " ":
			p.paused = !p.paused
		case "[":
			p.frame = clamp(p.frame-p.scrubStep(), 0, p.res.Samples-1)
		case "]":
			p.frame = clamp(p.frame+p.scrubStep(), 0, p.res.Samples-1)
		case "0", "home":
			p.frame = 0
		case "end":
			p.frame = p.res.Samples - 1
		case "+", "=":
			if p.speed < 32 {
				p.speed *= 2
			}
		case "-":
			if p.speed > 1 {
				p.speed /= 2
			}
		}
		return p, nil

	case frameMsg:
		if !p.paused {
			p.frame += p.speed
			if p.frame >= p.res.Samples {
				p.frame = 0 // loop
			}
		}
		return p, frameTick()
	}
	return p, nil
}

// scrubStep is roughly 1% of the run, at least one sample.
func (p *Playback) scrubStep() int {
	step := p.res.Samples / 100
	if step < 1 {
		step = 1
	}
	return step
}

func (p *Playback) View() string {
	var b strings.Builder

	day := p.res.Times[p.frame]
	status := RunningStyle.Render("▶ playing")
	if p.paused {
		status = PausedStyle.Render("⏸ paused")
	}

	b.WriteString(TitleStyle.Render("solarsim playback"))
	b.WriteString("  ")
	b.WriteString(status)
	b.WriteString(LabelStyle.Render(fmt.Sprintf("  day %.1f / %.1f  (%dx)", day, p.res.SpanDays, p.speed)))
	b.WriteString("\n")

	b.WriteString(PanelStyle.Render(OrbitMap(p.res, mapWidth, mapHeight, p.frame+1)))
	b.WriteString("\n")
	b.WriteString(Legend(p.res))
	b.WriteString("\n")

	drift := 0.0
	if e0 := p.res.Energies[0]; e0 != 0 {
		drift = (p.res.Energies[p.frame] - e0) / abs64(e0)
	}
	b.WriteString(LabelStyle.Render("energy drift "))
	b.WriteString(ValueStyle.Render(fmt.Sprintf("%.3e", drift)))
	b.WriteString("\n")

	b.WriteString(KeyHintStyle.Render("space pause  [ ] scrub  +/- speed  0 restart  q quit"))
	b.WriteString("\n")

	return b.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
