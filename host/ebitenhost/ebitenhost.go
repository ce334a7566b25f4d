// Package ebitenhost runs a scene host in an Ebiten window.
package ebitenhost

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/arcade/debugui"
	debugui_ebiten "github.com/plus3/arcade/debugui/ebiten"
	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/scene"
)

// Config configures the window.
type Config struct {
	Title string
	// Scale multiplies the logical 800x600 space into the window size.
	Scale float64
	// TPS is the number of updates per second.
	TPS int
	// Overlay, when set, draws the Dear ImGui debug overlay on top of the
	// scene.
	Overlay *debugui.Overlay
	Logger  *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Title: "Arcade",
		Scale: 1,
		TPS:   60,
	}
}

// Game adapts a scene.Host to ebiten.Game.
type Game struct {
	host    *scene.Host
	cfg     Config
	imgui   *debugui_ebiten.ImguiBackend
	surface *Surface
	onFrame []func(dt float64)
	logger  *slog.Logger
}

// New creates the ebiten game for host. The ImGui backend is only created
// when cfg.Overlay is set.
func New(host *scene.Host, cfg Config) *Game {
	if cfg.TPS <= 0 {
		cfg.TPS = ebiten.DefaultTPS
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	g := &Game{
		host:   host,
		cfg:    cfg,
		logger: logger,
	}
	if cfg.Overlay != nil {
		g.imgui = debugui_ebiten.NewImguiBackend(cfg.Title, g.windowWidth(), g.windowHeight())
	}
	return g
}

// OnFrame registers fn to run after every update with the frame's delta.
func (g *Game) OnFrame(fn func(dt float64)) {
	g.onFrame = append(g.onFrame, fn)
}

func (g *Game) Update() error {
	if g.host.Done() {
		return ebiten.Termination
	}

	dt := 1.0 / float64(g.cfg.TPS)
	in := PollInput()

	if g.imgui != nil {
		g.imgui.BeginFrame()
		g.cfg.Overlay.Frame()
		g.imgui.EndFrame()
		if g.cfg.Overlay.Input().WantCaptureKeyboard {
			in = input.State(0)
		}
	}

	g.host.Once(dt, in)
	for _, fn := range g.onFrame {
		fn(dt)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = NewSurface(screen)
	} else {
		g.surface.Reset(screen)
	}
	g.host.Render(g.surface)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(scene.Width, scene.Height)
	}
	return scene.Width, scene.Height
}

func (g *Game) windowWidth() int  { return int(float64(scene.Width) * g.cfg.Scale) }
func (g *Game) windowHeight() int { return int(float64(scene.Height) * g.cfg.Scale) }

// Run opens the window and blocks until a scene quits or the window closes.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.windowWidth(), g.windowHeight())
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetTPS(g.cfg.TPS)

	g.logger.Info("window opened",
		slog.String("title", g.cfg.Title),
		slog.Int("width", g.windowWidth()),
		slog.Int("height", g.windowHeight()),
	)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
