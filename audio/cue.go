package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/plus3/arcade/tetris"
)

// Note is a single sine tone.
type Note struct {
	Freq     float64
	Duration time.Duration
}

const (
	noteA3  = 220.00
	noteC4  = 261.63
	noteEb4 = 311.13
	noteG4  = 392.00
	noteC5  = 523.25
	noteE5  = 659.25
	noteG5  = 783.99
	noteA5  = 880.00
	noteC6  = 1046.50
	noteE6  = 1318.51
)

var (
	lockCue = []Note{{noteA3, 40 * time.Millisecond}}

	clearScale = []float64{noteC5, noteE5, noteG5, noteC6}

	levelUpCue = []Note{
		{noteE5, 80 * time.Millisecond},
		{noteA5, 80 * time.Millisecond},
		{noteE6, 120 * time.Millisecond},
	}

	gameOverCue = []Note{
		{noteG4, 150 * time.Millisecond},
		{noteEb4, 150 * time.Millisecond},
		{noteC4, 300 * time.Millisecond},
	}
)

// CueFor returns the notes played for an engine event, or nil when the event
// is silent. A line clear climbs one note per cleared row.
func CueFor(e tetris.Event) []Note {
	switch e.Kind {
	case tetris.EventLock:
		return lockCue
	case tetris.EventLineClear:
		n := min(max(e.Lines, 1), len(clearScale))
		notes := make([]Note, 0, n)
		for _, f := range clearScale[:n] {
			notes = append(notes, Note{f, 60 * time.Millisecond})
		}
		if n == len(clearScale) {
			notes[n-1].Duration = 200 * time.Millisecond
		}
		return notes
	case tetris.EventLevelUp:
		return levelUpCue
	case tetris.EventGameOver:
		return gameOverCue
	default:
		return nil
	}
}

// Length returns the total play time of notes.
func Length(notes []Note) time.Duration {
	var d time.Duration
	for _, n := range notes {
		d += n.Duration
	}
	return d
}

// Render turns notes into a finite streamer at the given sample rate, scaled
// by volume in [0, 1].
func Render(notes []Note, sr beep.SampleRate, volume float64) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", n.Freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.Duration), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// math.Log2(0) is -Inf, so zero volume maps to a silent stream.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
