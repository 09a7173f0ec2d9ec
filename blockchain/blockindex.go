// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"sync"
	"time"

	"github.com/StohnIO/Stohncoin/chaincfg"
	"github.com/StohnIO/Stohncoin/util/chainhash"
)

// BlockIndex provides facilities for keeping track of an in-memory index of
// the block chain. It owns the BlockNodes it holds; the difficulty and
// proof-of-work code only ever reads from it. Callers must not mutate the
// index concurrently with difficulty calculations that walk it, which the
// locking here guarantees as long as nodes are added through AddNode.
type BlockIndex struct {
	chainParams *chaincfg.Params

	sync.RWMutex
	index map[chainhash.Hash]*BlockNode
	tip   *BlockNode
}

// NewBlockIndex returns a new empty instance of a block index seeded with the
// genesis block of the passed parameters.
func NewBlockIndex(chainParams *chaincfg.Params) *BlockIndex {
	idx := &BlockIndex{
		chainParams: chainParams,
		index:       make(map[chainhash.Hash]*BlockNode),
	}

	genesis := NewBlockNode(chainParams.GenesisBlock, nil)
	idx.index[genesis.hash] = genesis
	idx.tip = genesis

	return idx
}

// LookupNode returns the block node identified by the provided hash. It will
// return nil if there is no entry for the hash.
//
// This function is safe for concurrent access.
func (bi *BlockIndex) LookupNode(hash *chainhash.Hash) *BlockNode {
	bi.RLock()
	node := bi.index[*hash]
	bi.RUnlock()
	return node
}

// HaveBlock returns whether or not the block index contains the provided
// hash.
//
// This function is safe for concurrent access.
func (bi *BlockIndex) HaveBlock(hash *chainhash.Hash) bool {
	bi.RLock()
	_, hasBlock := bi.index[*hash]
	bi.RUnlock()
	return hasBlock
}

// AddNode adds the provided node to the block index. Adding a node whose
// parent is the current tip advances the tip.
//
// This function is safe for concurrent access.
func (bi *BlockIndex) AddNode(node *BlockNode) {
	bi.Lock()
	bi.index[node.hash] = node
	if node.parent == bi.tip {
		bi.tip = node
	}
	bi.Unlock()
}

// Tip returns the block node with the greatest height that has been added
// through a contiguous chain of parents.
//
// This function is safe for concurrent access.
func (bi *BlockIndex) Tip() *BlockNode {
	bi.RLock()
	tip := bi.tip
	bi.RUnlock()
	return tip
}

// CalcNextRequiredDifficulty calculates the required difficulty for the block
// that will be built on the current tip of the index.
//
// This function is safe for concurrent access.
func (bi *BlockIndex) CalcNextRequiredDifficulty(newBlockTime time.Time) uint32 {
	return GetNextWorkRequired(bi.Tip(), newBlockTime, bi.chainParams)
}
