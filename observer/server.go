package observer

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/tunnelman/engine"
)

// ProtocolVersion is sent in every frame
const ProtocolVersion = 1

// Frames buffered per client before new ones are dropped
const clientQueue = 8

const writeTimeout = 5 * time.Second

// Frame is one tick as seen by spectators
type Frame struct {
	Type    string `json:"type"`
	Version int    `json:"version"`
	engine.Snapshot
}

// NewFrame wraps a world snapshot
func NewFrame(s engine.Snapshot) Frame {
	return Frame{Type: "FRAME", Version: ProtocolVersion, Snapshot: s}
}

type client struct {
	out     chan []byte
	dropped atomic.Uint64
}

// Server streams frames to websocket spectators on /observe
// Publishing never blocks: a client whose queue is full misses the frame
type Server struct {
	addr   string
	logger *log.Logger

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[uint64]*client
	nextID  uint64

	srv *http.Server
	ln  net.Listener
}

// NewServer prepares a server for addr, logger may be nil
func NewServer(addr string, logger *log.Logger) *Server {
	return &Server{
		addr:   addr,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients: make(map[uint64]*client),
	}
}

func (s *Server) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Name implements service.Service
func (s *Server) Name() string {
	return "observer"
}

// Dependencies implements service.Service
func (s *Server) Dependencies() []string {
	return nil
}

// Start implements service.Service, the listener is bound before returning
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/observe", s.Handler())

	s.mu.Lock()
	s.ln = ln
	s.srv = &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	srv := s.srv
	s.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logf("observer: serve: %v", err)
		}
	}()
	s.logf("observer: listening on %s", ln.Addr())
	return nil
}

// Stop implements service.Service
func (s *Server) Stop() error {
	s.mu.Lock()
	srv := s.srv
	s.srv = nil
	for id, c := range s.clients {
		close(c.out)
		delete(s.clients, id)
	}
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Addr is the bound address, useful when configured with port 0
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return s.addr
	}
	return s.ln.Addr().String()
}

// Clients counts connected spectators
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Publish encodes one frame and queues it for every client
func (s *Server) Publish(snap engine.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.clients) == 0 {
		return
	}

	b, err := json.Marshal(NewFrame(snap))
	if err != nil {
		s.logf("observer: encode: %v", err)
		return
	}
	for _, c := range s.clients {
		select {
		case c.out <- b:
		default:
			c.dropped.Add(1)
		}
	}
}

func (s *Server) join() (uint64, *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	c := &client{out: make(chan []byte, clientQueue)}
	s.clients[s.nextID] = c
	return s.nextID, c
}

func (s *Server) leave(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.clients[id]; ok {
		close(c.out)
		delete(s.clients, id)
	}
}

// Handler upgrades the request and streams frames until either side closes
func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		id, c := s.join()
		defer s.leave(id)

		// Reader: spectators send nothing, a read error means the peer went away
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-gone:
				if n := c.dropped.Load(); n > 0 {
					s.logf("observer: client %d left, %d frames dropped", id, n)
				}
				return
			case b, ok := <-c.out:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
						time.Now().Add(time.Second))
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
					return
				}
			}
		}
	}
}
