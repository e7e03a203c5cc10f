package service

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pageza/tarif-defteri/config"
)

// IDGenerator hands out recipe identifiers.
type IDGenerator interface {
	NewID(now time.Time) string
}

// TimeIDs produces decimal millisecond timestamps. Within one generator the
// values strictly increase, so two recipes created in the same millisecond
// still get distinct ids.
type TimeIDs struct {
	mu   sync.Mutex
	last int64
}

func (g *TimeIDs) NewID(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := now.UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// UUIDs produces random version 4 UUIDs.
type UUIDs struct{}

func (UUIDs) NewID(time.Time) string {
	return uuid.NewString()
}

// NewIDGenerator returns the generator for a configured strategy: "uuid"
// or anything else for timestamps.
func NewIDGenerator(strategy string) IDGenerator {
	if strategy == config.IDStrategyUUID {
		return UUIDs{}
	}
	return &TimeIDs{}
}
