package scene_test

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/plus3/arcade/input"
	"github.com/plus3/arcade/scene"
	"github.com/plus3/arcade/scene/scenetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingScene struct {
	InitCount   int
	UpdateCount int
	Elapsed     float64
	LastInput   input.State
	OnUpdate    func(frame *scene.Frame)
}

func (s *countingScene) Initialize() {
	s.InitCount++
	s.UpdateCount = 0
	s.Elapsed = 0
}

func (s *countingScene) Update(frame *scene.Frame) {
	s.UpdateCount++
	s.Elapsed += frame.DeltaTime
	s.LastInput = frame.Input
	if s.OnUpdate != nil {
		s.OnUpdate(frame)
	}
}

func (s *countingScene) Render(surface scene.Surface) {
	surface.FillRect(0, 0, scene.Width, scene.Height, color.Black)
}

const (
	menuID scene.ID = iota + 1
	gameID
)

func TestHost(t *testing.T) {
	t.Run("register and list entries", func(t *testing.T) {
		host := scene.NewHost(nil)
		host.Register(menuID, "Menu", &countingScene{})
		host.Register(gameID, "Game", &countingScene{})

		assert.Equal(t, []scene.Entry{
			{ID: menuID, Title: "Menu"},
			{ID: gameID, Title: "Game"},
		}, host.Entries())
	})

	t.Run("duplicate id panics", func(t *testing.T) {
		host := scene.NewHost(nil)
		host.Register(menuID, "Menu", &countingScene{})
		assert.Panics(t, func() {
			host.Register(menuID, "Other", &countingScene{})
		})
	})

	t.Run("start unknown scene", func(t *testing.T) {
		host := scene.NewHost(nil)
		assert.Error(t, host.Start(gameID))
		_, ok := host.Active()
		assert.False(t, ok)
	})

	t.Run("once without active scene is a no-op", func(t *testing.T) {
		host := scene.NewHost(nil)
		host.Once(0.016, 0)
		host.Render(&scenetest.Recorder{})
		assert.Equal(t, int64(0), host.Stats().TotalFrames)
	})

	t.Run("update receives delta and input", func(t *testing.T) {
		host := scene.NewHost(nil)
		game := &countingScene{}
		host.Register(gameID, "Game", game)
		require.NoError(t, host.Start(gameID))

		host.Once(0.5, input.Of(input.KeyLeft))
		host.Once(0.25, input.Of(input.KeyUp))

		assert.Equal(t, 1, game.InitCount)
		assert.Equal(t, 2, game.UpdateCount)
		assert.InDelta(t, 0.75, game.Elapsed, 1e-9)
		assert.True(t, game.LastInput.Held(input.KeyUp))
		assert.False(t, game.LastInput.Held(input.KeyLeft))
	})

	t.Run("switch is applied after update", func(t *testing.T) {
		host := scene.NewHost(nil)
		menu := &countingScene{}
		game := &countingScene{}
		host.Register(menuID, "Menu", menu)
		host.Register(gameID, "Game", game)
		require.NoError(t, host.Start(menuID))

		var deferred bool
		menu.OnUpdate = func(frame *scene.Frame) {
			frame.Commands.Switch(gameID)
			frame.Commands.Defer(func() { deferred = true })
		}

		host.Once(0.016, 0)

		active, ok := host.Active()
		require.True(t, ok)
		assert.Equal(t, gameID, active)
		assert.Equal(t, 1, menu.UpdateCount)
		assert.Equal(t, 0, game.UpdateCount, "target scene is only initialized in the switching frame")
		assert.Equal(t, 1, game.InitCount)
		assert.True(t, deferred)
	})

	t.Run("switching back reinitializes", func(t *testing.T) {
		host := scene.NewHost(nil)
		menu := &countingScene{}
		game := &countingScene{}
		host.Register(menuID, "Menu", menu)
		host.Register(gameID, "Game", game)
		require.NoError(t, host.Start(gameID))

		host.Once(1, 0)
		host.Once(1, 0)
		require.Equal(t, 2, game.UpdateCount)

		game.OnUpdate = func(frame *scene.Frame) { frame.Commands.Switch(menuID) }
		host.Once(1, 0)
		game.OnUpdate = nil
		require.NoError(t, host.Start(gameID))

		assert.Equal(t, 2, game.InitCount)
		assert.Equal(t, 0, game.UpdateCount)
		assert.Zero(t, game.Elapsed)
	})

	t.Run("quit", func(t *testing.T) {
		host := scene.NewHost(nil)
		game := &countingScene{OnUpdate: func(frame *scene.Frame) { frame.Commands.Quit() }}
		host.Register(gameID, "Game", game)
		require.NoError(t, host.Start(gameID))

		assert.False(t, host.Done())
		host.Once(0.016, 0)
		assert.True(t, host.Done())
	})

	t.Run("render delegates to active scene", func(t *testing.T) {
		host := scene.NewHost(nil)
		host.Register(gameID, "Game", &countingScene{})
		require.NoError(t, host.Start(gameID))

		rec := &scenetest.Recorder{}
		host.Render(rec)
		require.Len(t, rec.Calls, 1)
		assert.Equal(t, scenetest.OpFillRect, rec.Calls[0].Op)
		assert.Equal(t, float32(scene.Width), rec.Calls[0].X1)
	})
}

func TestHostStats(t *testing.T) {
	host := scene.NewHost(nil)
	host.Register(menuID, "Menu", &countingScene{})
	host.Register(gameID, "Game", &countingScene{})
	require.NoError(t, host.Start(gameID))

	for range 5 {
		host.Once(0.016, 0)
	}

	stats := host.Stats()
	assert.Equal(t, 2, stats.SceneCount)
	assert.Equal(t, int64(5), stats.TotalFrames)
	require.Len(t, stats.Scenes, 2)

	assert.Equal(t, "Menu", stats.Scenes[0].Title)
	assert.Equal(t, int64(0), stats.Scenes[0].UpdateCount)
	assert.Equal(t, time.Duration(0), stats.Scenes[0].MinDuration)

	game := stats.Scenes[1]
	assert.Equal(t, int64(5), game.UpdateCount)
	assert.LessOrEqual(t, game.MinDuration, game.AvgDuration)
	assert.LessOrEqual(t, game.AvgDuration, game.MaxDuration)
}

func TestHostRun(t *testing.T) {
	t.Run("stops on quit", func(t *testing.T) {
		host := scene.NewHost(nil)
		game := &countingScene{}
		game.OnUpdate = func(frame *scene.Frame) {
			if game.UpdateCount == 3 {
				frame.Commands.Quit()
			}
		}
		host.Register(gameID, "Game", game)
		require.NoError(t, host.Start(gameID))

		var polled, presented int
		host.Run(context.Background(), time.Millisecond,
			func(dt float64) input.State {
				polled++
				return input.Of(input.KeyDown)
			},
			func(*scene.Host) { presented++ },
		)

		assert.Equal(t, 3, game.UpdateCount)
		assert.Equal(t, 3, polled)
		assert.Equal(t, 3, presented)
		assert.True(t, game.LastInput.Held(input.KeyDown))
	})

	t.Run("context cancellation", func(t *testing.T) {
		host := scene.NewHost(nil)
		host.Register(gameID, "Game", &countingScene{})
		require.NoError(t, host.Start(gameID))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})
		go func() {
			host.Run(ctx, time.Millisecond, nil, nil)
			close(done)
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancellation")
		}
	})
}
