package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/tunnelman/core"
)

const (
	shortAttack  = 5 * time.Millisecond
	shortRelease = 40 * time.Millisecond
)

// tone is a single enveloped oscillator
func tone(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, shortAttack, shortRelease, rate)
}

// ping is a pure sine from the beep generators, cut to length
func ping(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist, fall back to the local oscillator
		return tone(freq, freq, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), sine), d, shortAttack, d/2, rate)
}

// NewCue builds the streamer for a cue, nil for unknown cues
func NewCue(s core.SoundType, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer

	switch s {
	case core.SoundDig:
		// Short gritty scrape
		st = newVolume(tone(0, 0, 60*time.Millisecond, WaveNoise, rate), 0.25)
	case core.SoundPlayerSquirt:
		st = newVolume(tone(0, 0, 180*time.Millisecond, WaveNoise, rate), 0.5)
	case core.SoundSonar:
		st = beep.Seq(ping(1200, 120*time.Millisecond, rate), beep.Silence(rate.N(80*time.Millisecond)), ping(1200, 300*time.Millisecond, rate))
	case core.SoundGotGoodie:
		st = beep.Seq(ping(987.77, 70*time.Millisecond, rate), ping(1318.51, 140*time.Millisecond, rate))
	case core.SoundFoundOil:
		st = beep.Mix(
			newVolume(ping(440, 400*time.Millisecond, rate), 0.7),
			newVolume(ping(660, 400*time.Millisecond, rate), 0.3),
		)
	case core.SoundFallingRock:
		st = beep.Mix(
			tone(90, 40, 600*time.Millisecond, WaveSaw, rate),
			newVolume(tone(0, 0, 600*time.Millisecond, WaveNoise, rate), 0.3),
		)
	case core.SoundProtesterYell:
		st = tone(220, 160, 250*time.Millisecond, WaveSquare, rate)
	case core.SoundProtesterAnnoyed:
		st = tone(300, 200, 150*time.Millisecond, WaveSaw, rate)
	case core.SoundProtesterGiveUp:
		st = tone(300, 90, 500*time.Millisecond, WaveSaw, rate)
	case core.SoundProtesterFoundGold:
		st = beep.Seq(ping(660, 80*time.Millisecond, rate), ping(880, 80*time.Millisecond, rate), ping(1320, 160*time.Millisecond, rate))
	case core.SoundFinishedLevel:
		st = beep.Seq(
			ping(523.25, 120*time.Millisecond, rate),
			ping(659.25, 120*time.Millisecond, rate),
			ping(783.99, 120*time.Millisecond, rate),
			ping(1046.5, 300*time.Millisecond, rate),
		)
	case core.SoundPlayerGiveUp:
		st = tone(440, 110, 900*time.Millisecond, WaveSquare, rate)
	default:
		return nil
	}

	return newVolume(st, volume)
}
