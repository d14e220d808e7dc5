package hashchain

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"time"
)

// noParent marks a block that has no predecessor in the arena. Only the
// genesis block carries it.
const noParent = -1

// Block represents one record in the chain. A block is immutable once it has
// been mined and installed as the tail.
type Block struct {
	ParentHash  string    // Hash of the parent block, cached at link time. Empty for genesis.
	Timestamp   time.Time // Time the block was constructed.
	Transaction string    // Opaque payload supplied by the caller.
	Nonce       uint64    // Value identified to solve the hash solution.

	parent int // Arena index of the parent block.
}

// Hash returns the unique hash for the block. The cached parent hash (when
// present), the timestamp, the transaction payload, and the nonce are
// digested in that order, so altering any field changes every hash downstream
// of this block.
func (b Block) Hash() string {
	var nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], b.Nonce)

	h := sha256.New()
	if b.ParentHash != "" {
		h.Write([]byte(b.ParentHash))
	}
	h.Write([]byte(b.Timestamp.UTC().Format(time.RFC3339Nano)))
	h.Write([]byte(b.Transaction))
	h.Write(nonce[:])

	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// performPOW searches for the smallest nonce whose hash satisfies the
// difficulty. The search runs until a solution is found or the context is
// cancelled; there is no iteration cap.
func (b *Block) performPOW(ctx context.Context, difficulty int, ev EventHandler) error {
	ev("hashchain: performPOW: MINING: started: tx[%s]", b.Transaction)
	defer ev("hashchain: performPOW: MINING: completed")

	b.Nonce = 0

	var attempts uint64
	for {
		attempts++
		if attempts%1_000_000 == 0 {
			ev("hashchain: performPOW: MINING: attempts[%d]", attempts)
		}

		if ctx.Err() != nil {
			ev("hashchain: performPOW: MINING: CANCELLED")
			return ctx.Err()
		}

		hash := b.Hash()
		if !isHashSolved(difficulty, hash) {
			b.Nonce++
			continue
		}

		ev("hashchain: performPOW: MINING: SOLVED: prevBlk[%s]: newBlk[%s]", b.ParentHash, hash)
		ev("hashchain: performPOW: MINING: attempts[%d]", attempts)

		return nil
	}
}

// isHashSolved checks the hash to make sure it complies with the POW rules.
// We need to match a difficulty number of '0' characters.
func isHashSolved(difficulty int, hash string) bool {
	const match = "00000000000000000000000000000000000000000000"

	if difficulty > len(hash) {
		return false
	}

	return hash[:difficulty] == match[:difficulty]
}
