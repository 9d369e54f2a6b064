package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator produces unique booking reference numbers.
type Generator interface {
	ReferenceNumber() string
}

// SnowflakeGenerator derives customer-facing references from snowflake IDs,
// so references stay unique across instances without a DB round trip.
type SnowflakeGenerator struct {
	node *snowflake.Node
	mu   sync.Mutex
}

// NewSnowflakeGenerator initializes the generator. nodeID must be unique per
// server instance (0-1023) to prevent collisions.
func NewSnowflakeGenerator(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create snowflake node: %w", err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

// ReferenceNumber returns a reference like "TB-8862413107833663488".
func (g *SnowflakeGenerator) ReferenceNumber() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("TB-%d", g.node.Generate().Int64())
}
