package scoreboard

import (
	"context"
	"log"
	"sync"
)

// Service owns the board for the lifetime of the program
type Service struct {
	path   string
	logger *log.Logger

	mu    sync.Mutex
	board *Board
}

// NewService defers opening path until Start, logger may be nil
func NewService(path string, logger *log.Logger) *Service {
	return &Service{path: path, logger: logger}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "scoreboard"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Start implements service.Service
func (s *Service) Start(ctx context.Context) error {
	b, err := Open(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.board = b
	s.mu.Unlock()
	return nil
}

// Stop implements service.Service
func (s *Service) Stop() error {
	s.mu.Lock()
	b := s.board
	s.board = nil
	s.mu.Unlock()
	if b == nil {
		return nil
	}
	return b.Close()
}

// Record stores a finished game, errors are logged since a lost score never stops play
func (s *Service) Record(e Entry) {
	s.mu.Lock()
	b := s.board
	s.mu.Unlock()
	if b == nil {
		return
	}
	if err := b.Record(context.Background(), e); err != nil && s.logger != nil {
		s.logger.Printf("scoreboard: %v", err)
	}
}

// Top returns the best n scores
func (s *Service) Top(n int) ([]Entry, error) {
	s.mu.Lock()
	b := s.board
	s.mu.Unlock()
	if b == nil {
		return nil, ErrClosed
	}
	return b.Top(context.Background(), n)
}
