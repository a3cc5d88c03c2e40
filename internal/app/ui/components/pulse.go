package components

import (
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	idle  = "◯"
	ready = "●"
	lit   = "◉"

	// Spring physics parameters
	pulseAngularFrequency = 8.0
	pulseDampingRatio     = 0.7

	// Ticks spent at each end of a beat
	pulseOnTicks  = 2
	pulseOffTicks = 3

	pulseFrameThreshold = 0.3

	pulsePositionFull  = 1.0
	pulsePositionEmpty = 0.0
)

// Pulse is the ingestion activity indicator, animated with spring physics
type Pulse struct {
	spring    harmonica.Spring
	position  float64
	velocity  float64
	target    float64
	active    bool
	tickCount int
}

// NewPulse creates a pulse animated at the UI tick rate
func NewPulse(tick time.Duration) *Pulse {
	fps := 10
	if tick > 0 {
		fps = max(1, int(time.Second/tick))
	}

	return &Pulse{
		spring: harmonica.NewSpring(harmonica.FPS(fps), pulseAngularFrequency, pulseDampingRatio),
	}
}

// Start begins the animation
func (p *Pulse) Start() {
	p.active = true
}

// Stop ends the animation and resets to the resting frame
func (p *Pulse) Stop() {
	p.active = false
	p.position = pulsePositionEmpty
	p.velocity = pulsePositionEmpty
	p.target = pulsePositionEmpty
	p.tickCount = 0
}

// Update advances the animation by one UI tick
func (p *Pulse) Update() {
	if !p.active {
		return
	}

	p.tickCount++

	switch p.target {
	case pulsePositionEmpty:
		if p.tickCount >= pulseOffTicks {
			p.target = pulsePositionFull
			p.tickCount = 0
		}
	default:
		if p.tickCount >= pulseOnTicks {
			p.target = pulsePositionEmpty
			p.tickCount = 0
		}
	}

	p.position, p.velocity = p.spring.Update(p.position, p.velocity, p.target)
}

// Frame returns the glyph for the current spring position.
// A stopped pulse shows a steady dot.
func (p *Pulse) Frame() string {
	if !p.active {
		return ready
	}

	if p.position < pulseFrameThreshold {
		return idle
	}

	return lit
}

// Render returns the styled frame
func (p *Pulse) Render(style lipgloss.Style) string {
	return style.Render(p.Frame())
}

// IsActive returns whether the animation is running
func (p *Pulse) IsActive() bool {
	return p.active
}
