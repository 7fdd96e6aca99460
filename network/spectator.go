package network

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

// ErrSpectatorClosed is returned by operations on a closed hub
var ErrSpectatorClosed = errors.New("spectator hub closed")

// peer is one read-only spectator connection
type peer struct {
	id     uint64
	conn   *websocket.Conn
	sendCh chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
}

func (p *peer) close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		p.conn.Close()
	})
}

// Spectator fans encoded snapshots out to websocket clients
// Slow clients whose queue is full are disconnected rather than waited on
type Spectator struct {
	config   *Config
	upgrader websocket.Upgrader

	mu     sync.RWMutex
	peers  map[uint64]*peer
	nextID uint64

	closed  atomic.Bool
	wg      sync.WaitGroup
	dropped atomic.Uint64
	server  *http.Server
}

// NewSpectator creates a hub, nil cfg selects DefaultConfig
func NewSpectator(cfg *Config) *Spectator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Spectator{
		config: cfg,
		peers:  make(map[uint64]*peer),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Handler returns the http handler performing the websocket upgrade
func (s *Spectator) Handler() http.Handler {
	return http.HandlerFunc(s.serveWS)
}

func (s *Spectator) serveWS(rw http.ResponseWriter, r *http.Request) {
	if s.closed.Load() {
		http.Error(rw, ErrSpectatorClosed.Error(), http.StatusServiceUnavailable)
		return
	}
	if s.ClientCount() >= s.config.MaxPeers {
		http.Error(rw, "spectator limit reached", http.StatusServiceUnavailable)
		return
	}

	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Printf("spectator: upgrade failed: %v", err)
		return
	}

	p, ok := s.register(conn)
	if !ok {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ErrSpectatorClosed.Error()),
			time.Now().Add(s.config.WriteTimeout))
		conn.Close()
		return
	}

	log.Printf("spectator: client %d connected from %s", p.id, conn.RemoteAddr())

	go s.writeLoop(p)
	go s.readLoop(p)
}

// register adds a peer for conn unless the hub closed during the upgrade
// The peer's goroutines are counted before Close can observe the peer set
func (s *Spectator) register(conn *websocket.Conn) (*peer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return nil, false
	}
	s.nextID++
	p := &peer{
		id:      s.nextID,
		conn:    conn,
		sendCh:  make(chan []byte, s.config.SendQueueSize),
		closeCh: make(chan struct{}),
	}
	s.peers[p.id] = p
	s.wg.Add(2)
	return p, true
}

// Broadcast encodes snap once and queues it for every client
// Returns the number of clients the frame was queued for
func (s *Spectator) Broadcast(snap *Snapshot) (int, error) {
	if s.closed.Load() {
		return 0, ErrSpectatorClosed
	}
	data, err := snap.Encode()
	if err != nil {
		return 0, err
	}

	var slow []*peer
	sent := 0
	s.mu.RLock()
	for _, p := range s.peers {
		select {
		case p.sendCh <- data:
			sent++
		default:
			slow = append(slow, p)
		}
	}
	s.mu.RUnlock()

	for _, p := range slow {
		s.dropped.Add(1)
		log.Printf("spectator: dropping slow client %d", p.id)
		s.remove(p)
	}
	return sent, nil
}

// ClientCount returns the number of connected spectators
func (s *Spectator) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.peers)
}

// Dropped returns the number of clients disconnected for falling behind
func (s *Spectator) Dropped() uint64 {
	return s.dropped.Load()
}

// ListenAndServe serves the hub on the configured address until ctx ends
func (s *Spectator) ListenAndServe(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle(s.config.Path, s.Handler())

	s.mu.Lock()
	s.server = &http.Server{Addr: s.config.Address, Handler: mux}
	srv := s.server
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("spectator: listening on %s%s", s.config.Address, s.config.Path)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close disconnects every client and waits for their goroutines
func (s *Spectator) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.mu.Lock()
	peers := make([]*peer, 0, len(s.peers))
	for id, p := range s.peers {
		peers = append(peers, p)
		delete(s.peers, id)
	}
	srv := s.server
	s.mu.Unlock()

	for _, p := range peers {
		p.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
			time.Now().Add(s.config.WriteTimeout))
		p.close()
	}
	if srv != nil {
		srv.Close()
	}

	s.wg.Wait()
	return nil
}

func (s *Spectator) remove(p *peer) {
	s.mu.Lock()
	delete(s.peers, p.id)
	s.mu.Unlock()
	p.close()
}

// writeLoop sends queued frames and keepalive pings
func (s *Spectator) writeLoop(p *peer) {
	defer s.wg.Done()
	defer s.remove(p)

	ping := time.NewTicker(s.config.PingInterval)
	defer ping.Stop()

	for {
		select {
		case <-p.closeCh:
			return
		case data := <-p.sendCh:
			p.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				return
			}
		case <-ping.C:
			p.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readLoop drains client frames so control messages are processed, exits on disconnect
func (s *Spectator) readLoop(p *peer) {
	defer s.wg.Done()
	defer s.remove(p)

	p.conn.SetReadLimit(512)
	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
	}
}
