package audio

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/lixenwraith/tunnelman/core"
)

// AudioService wraps SoundManager as a service
// A missing audio device disables playback instead of failing startup
type AudioService struct {
	manager  *SoundManager
	logger   *log.Logger
	disabled atomic.Bool
}

// NewService creates the audio service, logger may be nil
func NewService(cfg Config, logger *log.Logger) *AudioService {
	return &AudioService{
		manager: NewSoundManager(cfg),
		logger:  logger,
	}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Start implements service.Service, never returns an error
func (s *AudioService) Start(ctx context.Context) error {
	if err := s.manager.Initialize(); err != nil {
		s.disabled.Store(true)
		if s.logger != nil {
			s.logger.Printf("audio: disabled: %v", err)
		}
	}
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	s.manager.Cleanup()
	return nil
}

// PlayCue implements engine.CuePlayer
func (s *AudioService) PlayCue(c core.SoundType) {
	if s.disabled.Load() {
		return
	}
	s.manager.PlayCue(c)
}

// IsDisabled returns true if audio is unavailable
func (s *AudioService) IsDisabled() bool {
	return s.disabled.Load()
}
