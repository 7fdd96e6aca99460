package network

import (
	"time"
)

// Config holds spectator server configuration
type Config struct {
	// Address to bind, empty disables the server
	Address string

	// Path the websocket upgrade is served on
	Path string

	// Connection limits
	MaxPeers int

	// Timing
	WriteTimeout time.Duration
	PingInterval time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int

	// Snapshot cadence, one snapshot every N frames
	FrameStride int
}

// DefaultConfig returns defaults with the server disabled
func DefaultConfig() *Config {
	return &Config{
		Address:         "",
		Path:            "/spectate",
		MaxPeers:        16,
		WriteTimeout:    5 * time.Second,
		PingInterval:    15 * time.Second,
		ReadBufferSize:  1024,
		WriteBufferSize: 64 * 1024,
		SendQueueSize:   8,
		FrameStride:     2,
	}
}

// Enabled reports whether a listen address is configured
func (c *Config) Enabled() bool {
	return c.Address != ""
}
