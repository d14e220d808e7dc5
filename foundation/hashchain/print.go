package hashchain

import (
	"fmt"
	"strings"
	"time"
)

// String implements fmt.Stringer, rendering the block as a structured record.
func (b Block) String() string {
	parent := "none"
	if b.ParentHash != "" {
		parent = b.ParentHash
	}

	return fmt.Sprintf("blk[parent[%s] time[%s] tx[%s]]", parent, b.Timestamp.UTC().Format(time.RFC3339Nano), b.Transaction)
}

// String implements fmt.Stringer, rendering the chain from the tail back to
// genesis with a marker between each linked pair.
func (c *Chain) String() string {
	var sb strings.Builder

	for i, b := range c.Blocks() {
		if i > 0 {
			sb.WriteString("\n^\n")
		}
		sb.WriteString(b.String())
	}

	return sb.String()
}
