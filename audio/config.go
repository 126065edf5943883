package audio

import "errors"

// Config controls cue playback
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0 - 1.0
	SampleRate   int
}

// DefaultConfig returns enabled playback at 48kHz, 70% volume
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		MasterVolume: 0.7,
		SampleRate:   48000,
	}
}

// Sentinel errors
var (
	ErrDisabled      = errors.New("audio disabled")
	ErrBadSampleRate = errors.New("sample rate must be positive")
)
