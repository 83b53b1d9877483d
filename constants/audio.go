package constants

import "time"

// Audio Feedback Timing
const (
	// ToneDuration is the length of a paint/erase feedback tone
	ToneDuration = 50 * time.Millisecond

	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100
)

// Feedback tone pitches (Hz)
const (
	PaintToneHz = 880
	EraseToneHz = 660
)
