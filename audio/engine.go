package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/mapview/constants"
)

// Engine plays short feedback tones for edit actions. A failed speaker
// init leaves the engine permanently silent; the viewer runs fine
// without sound.
type Engine struct {
	rate  beep.SampleRate
	ready bool
}

// NewEngine opens the speaker. The returned engine is usable even when
// err is non-nil, it just stays quiet.
func NewEngine() (*Engine, error) {
	e := &Engine{rate: beep.SampleRate(constants.AudioSampleRate)}
	if err := speaker.Init(e.rate, e.rate.N(time.Second/10)); err != nil {
		return e, err
	}
	e.ready = true
	return e, nil
}

// PlayPaint plays the paint feedback tone.
func (e *Engine) PlayPaint() {
	e.playTone(constants.PaintToneHz)
}

// PlayErase plays the erase feedback tone.
func (e *Engine) PlayErase() {
	e.playTone(constants.EraseToneHz)
}

func (e *Engine) playTone(freq float64) {
	if e == nil || !e.ready {
		return
	}
	sine, err := generators.SineTone(e.rate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(e.rate.N(constants.ToneDuration), sine))
}

// Close releases the speaker. Safe on a nil or silent engine.
func (e *Engine) Close() {
	if e == nil || !e.ready {
		return
	}
	speaker.Close()
}
