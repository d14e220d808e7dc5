package hashchain_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ardanlabs/hashchain/foundation/hashchain"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func Test_AddVerify(t *testing.T) {
	type table struct {
		name       string
		difficulty int
		payloads   []string
	}

	tt := []table{
		{
			name:       "empty",
			difficulty: 0,
			payloads:   nil,
		},
		{
			name:       "single",
			difficulty: 0,
			payloads:   []string{"a"},
		},
		{
			name:       "three",
			difficulty: 0,
			payloads:   []string{"a", "b", "c"},
		},
		{
			name:       "difficulty three",
			difficulty: 3,
			payloads:   []string{"asdfadfas", "foo", "bar", "baz", "egg"},
		},
	}

	t.Log("Given the need to validate mining and chain verification.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen adding %d payloads at difficulty %d.", testID, len(tst.payloads), tst.difficulty)
			{
				f := func(t *testing.T) {
					chain := hashchain.New(tst.difficulty, nil)

					for i, payload := range tst.payloads {
						chain.Add(payload)

						if chain.Length() != i+1 {
							t.Fatalf("\t%s\tTest %d:\tShould grow the chain by one block per add: got %d, exp %d.", failed, testID, chain.Length(), i+1)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould grow the chain by one block per add.", success, testID)

					if err := chain.Verify(); err != nil {
						t.Fatalf("\t%s\tTest %d:\tShould be able to verify the chain: %v", failed, testID, err)
					}
					t.Logf("\t%s\tTest %d:\tShould be able to verify the chain.", success, testID)

					blocks := chain.Blocks()
					if len(blocks) != len(tst.payloads) {
						t.Fatalf("\t%s\tTest %d:\tShould traverse every block: got %d, exp %d.", failed, testID, len(blocks), len(tst.payloads))
					}
					t.Logf("\t%s\tTest %d:\tShould traverse every block.", success, testID)

					// Traversal runs from the tail back to genesis, so the
					// payloads come back in reverse insertion order.
					for i, block := range blocks {
						exp := tst.payloads[len(tst.payloads)-1-i]
						if block.Transaction != exp {
							t.Errorf("\t%s\tTest %d:\tShould see payloads in reverse insertion order: got %q, exp %q.", failed, testID, block.Transaction, exp)
						}
					}
					t.Logf("\t%s\tTest %d:\tShould see payloads in reverse insertion order.", success, testID)

					prefix := strings.Repeat("0", tst.difficulty)
					for _, block := range blocks {
						if !strings.HasPrefix(block.Hash(), prefix) {
							t.Errorf("\t%s\tTest %d:\tShould have %d leading zeros on hash %q.", failed, testID, tst.difficulty, block.Hash())
						}
					}
					t.Logf("\t%s\tTest %d:\tShould have %d leading zeros on every hash.", success, testID, tst.difficulty)
				}

				t.Run(tst.name, f)
			}
		}
	}
}

func Test_Hashing(t *testing.T) {
	base := hashchain.Block{
		ParentHash:  "2qKXIT3GKkUEHnGZyp6izewDC98M490cX40tobGEduo=",
		Timestamp:   time.Date(2025, time.March, 14, 9, 26, 53, 589793238, time.UTC),
		Transaction: "foo",
		Nonce:       42,
	}

	t.Log("Given the need to validate the canonical hashing procedure.")
	{
		t.Log("\tTest 0:\tWhen hashing the same block twice.")
		{
			if base.Hash() != base.Hash() {
				t.Fatalf("\t%s\tTest 0:\tShould produce the identical hash.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould produce the identical hash.", success)
		}

		t.Log("\tTest 1:\tWhen changing any single field.")
		{
			parentHash := base
			parentHash.ParentHash = "Ub9DoQkKu5hwDzEr2LPbSce07O97dXC2hkQLtXBdvlM="

			timestamp := base
			timestamp.Timestamp = timestamp.Timestamp.Add(time.Nanosecond)

			transaction := base
			transaction.Transaction = "fop"

			nonce := base
			nonce.Nonce++

			variants := map[string]hashchain.Block{
				"parent hash": parentHash,
				"timestamp":   timestamp,
				"transaction": transaction,
				"nonce":       nonce,
			}

			for name, block := range variants {
				if block.Hash() == base.Hash() {
					t.Errorf("\t%s\tTest 1:\tShould change the hash when %s changes.", failed, name)
				} else {
					t.Logf("\t%s\tTest 1:\tShould change the hash when %s changes.", success, name)
				}
			}
		}

		t.Log("\tTest 2:\tWhen hashing a genesis block.")
		{
			genesis := base
			genesis.ParentHash = ""

			if genesis.Hash() == base.Hash() {
				t.Fatalf("\t%s\tTest 2:\tShould omit the parent contribution from the hash.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould omit the parent contribution from the hash.", success)
		}
	}
}

func Test_AddContextCancel(t *testing.T) {
	t.Log("Given the need to cancel a mining operation.")
	{
		t.Log("\tTest 0:\tWhen adding a payload with a cancelled context.")
		{
			chain := hashchain.New(1, nil)

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := chain.AddContext(ctx, "a")
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("\t%s\tTest 0:\tShould get a context cancelled error: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould get a context cancelled error.", success)

			if chain.Length() != 0 {
				t.Fatalf("\t%s\tTest 0:\tShould leave the chain unchanged: got %d blocks.", failed, chain.Length())
			}
			t.Logf("\t%s\tTest 0:\tShould leave the chain unchanged.", success)

			if err := chain.Verify(); err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould still verify the chain: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould still verify the chain.", success)
		}
	}
}
