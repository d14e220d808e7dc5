// Package hashchain implements an in-memory append-only chain of blocks
// gated by a proof of work search and validated by recomputing hashes from
// the tail back to genesis.
package hashchain

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// EventHandler defines a function that is called when events occur during
// mining and verification.
type EventHandler func(v string, args ...any)

// Chain manages an append-only arena of blocks. Blocks are addressed by
// stable arena indices and each block records its parent's index, so
// traversal never recurses regardless of chain length.
type Chain struct {
	mu         sync.Mutex
	arena      []Block
	tail       int
	difficulty int
	ev         EventHandler
}

// New constructs an empty chain that mines at the specified difficulty.
// Difficulty is the number of leading '0' characters required in a block's
// encoded hash and is fixed for the life of the chain.
func New(difficulty int, ev EventHandler) *Chain {
	if ev == nil {
		ev = func(v string, args ...any) {}
	}
	if difficulty < 0 {
		difficulty = 0
	}

	return &Chain{
		tail:       noParent,
		difficulty: difficulty,
		ev:         ev,
	}
}

// Add mines a new block carrying the specified transaction payload and
// installs it as the new tail. Any payload is accepted and the call cannot
// fail; mining blocks the caller until a solution is found.
func (c *Chain) Add(transaction string) {
	c.AddContext(context.Background(), transaction)
}

// AddContext is Add with cooperative cancellation. The mining loop checks
// the context between attempts; on cancellation nothing is installed and the
// chain is left unchanged.
func (c *Chain) AddContext(ctx context.Context, transaction string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Cache the current tail's hash so the new block links to it. The cached
	// value is what verification compares against later.
	var parentHash string
	if c.tail != noParent {
		parentHash = c.arena[c.tail].Hash()
	}

	nb := Block{
		ParentHash:  parentHash,
		Timestamp:   time.Now().UTC(),
		Transaction: transaction,
		parent:      c.tail,
	}

	if err := nb.performPOW(ctx, c.difficulty, c.ev); err != nil {
		return err
	}

	c.arena = append(c.arena, nb)
	c.tail = len(c.arena) - 1

	return nil
}

// Verify walks the chain pairwise from the tail back to genesis. For each
// link it recomputes the parent block's hash, compares it against the hash
// the successor cached at link time, and checks the recomputed hash against
// the difficulty. The tail block itself is never rechecked; it is trusted
// from its own mining step. Verification stops at the first fault.
func (c *Chain) Verify() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ev("hashchain: verify: started: blocks[%d]", len(c.arena))
	defer c.ev("hashchain: verify: completed")

	for next := c.tail; next != noParent; next = c.arena[next].parent {
		nextBlk := c.arena[next]
		if nextBlk.parent == noParent {
			break
		}

		c.ev("hashchain: verify: check: blk[%d] -> blk[%d]", next, nextBlk.parent)

		hash := c.arena[nextBlk.parent].Hash()
		if err := checkLink(c.difficulty, nextBlk, hash); err != nil {
			return fmt.Errorf("invalid block in chain: %s: %w", nextBlk, err)
		}
	}

	return nil
}

// checkLink validates a single link: the recomputed parent hash must equal
// the hash the successor cached, and must itself satisfy the difficulty.
func checkLink(difficulty int, next Block, hash string) error {
	if hash != next.ParentHash {
		return &HashMismatchError{Got: hash, Want: next.ParentHash}
	}

	if !isHashSolved(difficulty, hash) {
		return &InvalidHashError{Hash: hash}
	}

	return nil
}

// Blocks returns a copy of the chain's blocks ordered from the tail back to
// genesis. Each call walks the arena fresh.
func (c *Chain) Blocks() []Block {
	c.mu.Lock()
	defer c.mu.Unlock()

	blocks := make([]Block, 0, len(c.arena))
	for idx := c.tail; idx != noParent; idx = c.arena[idx].parent {
		blocks = append(blocks, c.arena[idx])
	}

	return blocks
}

// Length returns the number of blocks in the chain.
func (c *Chain) Length() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.arena)
}

// Difficulty returns the number of leading '0' characters a block hash must
// carry to be accepted by this chain.
func (c *Chain) Difficulty() int {
	return c.difficulty
}
