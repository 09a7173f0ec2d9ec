// Copyright (c) 2015-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"time"

	"github.com/StohnIO/Stohncoin/util/chainhash"
	"github.com/StohnIO/Stohncoin/wire"
)

// BlockNode represents a block within the block chain and is primarily used
// to aid in selecting the required difficulty for candidate blocks. The
// chain is stored into the block index, and BlockNodes form a tree by
// following parent references back to the genesis block.
//
// The fields other than the parent reference must be treated as immutable
// once the node has been handed to the block index.
type BlockNode struct {
	// parent is the parent block for this node. It is nil for the genesis
	// block.
	parent *BlockNode

	// hash is the double sha256 of the block header.
	hash chainhash.Hash

	// height is the position in the block chain.
	height int32

	// Some fields from block headers to aid in difficulty selection and
	// reconstructing headers from memory. These must be treated as
	// immutable and are intentionally ordered to avoid padding on 64-bit
	// platforms.
	version   int32
	bits      uint32
	nonce     uint32
	timestamp int64
	prevBlock chainhash.Hash
	merkle    chainhash.Hash
}

// NewBlockNode returns a new block node for the given block header and
// parent node. The height is calculated from the parent, or zero when the
// parent is nil (genesis).
func NewBlockNode(blockHeader *wire.BlockHeader, parent *BlockNode) *BlockNode {
	node := &BlockNode{
		parent:    parent,
		hash:      blockHeader.BlockHash(),
		version:   blockHeader.Version,
		bits:      blockHeader.Bits,
		nonce:     blockHeader.Nonce,
		timestamp: blockHeader.Timestamp.Unix(),
		prevBlock: blockHeader.PrevBlock,
		merkle:    blockHeader.MerkleRoot,
	}
	if parent != nil {
		node.height = parent.height + 1
	}
	return node
}

// Parent returns the parent block node, or nil when the node is the genesis
// block.
func (node *BlockNode) Parent() *BlockNode {
	return node.parent
}

// Hash returns the hash of the block this node represents.
func (node *BlockNode) Hash() chainhash.Hash {
	return node.hash
}

// Height returns the position of the block in the chain.
func (node *BlockNode) Height() int32 {
	return node.height
}

// Bits returns the compact difficulty target carried by the block header.
func (node *BlockNode) Bits() uint32 {
	return node.bits
}

// Timestamp returns the block time in unix seconds.
func (node *BlockNode) Timestamp() int64 {
	return node.timestamp
}

// Header constructs a block header from the node and returns it.
//
// This function is safe for concurrent access.
func (node *BlockNode) Header() wire.BlockHeader {
	return wire.BlockHeader{
		Version:    node.version,
		PrevBlock:  node.prevBlock,
		MerkleRoot: node.merkle,
		Timestamp:  time.Unix(node.timestamp, 0),
		Bits:       node.bits,
		Nonce:      node.nonce,
	}
}

// Ancestor returns the ancestor block node at the provided height by
// following the chain backwards from this node. The returned block will be
// nil when a height is requested that is after the height of the passed node
// or is less than zero.
//
// This function is safe for concurrent access.
func (node *BlockNode) Ancestor(height int32) *BlockNode {
	if height < 0 || height > node.height {
		return nil
	}

	n := node
	for ; n != nil && n.height != height; n = n.parent {
		// Intentionally left blank
	}

	return n
}

// RelativeAncestor returns the ancestor block node a relative 'distance'
// blocks before this node. This is equivalent to calling Ancestor with the
// node's height minus provided distance.
//
// This function is safe for concurrent access.
func (node *BlockNode) RelativeAncestor(distance int32) *BlockNode {
	return node.Ancestor(node.height - distance)
}
