// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/StohnIO/Stohncoin/util/chainhash"
	"github.com/StohnIO/Stohncoin/wire"
)

// genesisHash is the hash of the first block in the block chain for the main
// network (genesis block).
var genesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0xf5, 0x9e, 0x52, 0xd4, 0xda, 0xef, 0x9e, 0x39,
	0x71, 0xe8, 0x80, 0x6a, 0x9c, 0x8f, 0xdd, 0xd8,
	0xea, 0xf7, 0x77, 0x07, 0x4a, 0x10, 0xe6, 0x99,
	0x71, 0x86, 0x6d, 0x4e, 0x39, 0x01, 0x00, 0x00,
})

// genesisMerkleRoot is the hash of the first transaction in the genesis block
// for the main network.
var genesisMerkleRoot = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0xa0, 0x45, 0xfd, 0x98, 0xa4, 0x20, 0x6a, 0x9a,
	0xb7, 0x97, 0xe3, 0x89, 0x39, 0xc7, 0x19, 0x11,
	0x18, 0xc5, 0x83, 0xc5, 0x62, 0x52, 0xb8, 0x20,
	0x58, 0x4d, 0xd8, 0x66, 0xdc, 0x24, 0x9b, 0x11,
})

// genesisBlockHeader defines the header of the genesis block of the block
// chain which serves as the public transaction ledger for the main network.
var genesisBlockHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{}, // The genesis block has no parent.
	MerkleRoot: genesisMerkleRoot,
	Timestamp:  time.Unix(0x61800ec0, 0), // 2021-11-01 15:58:56 +0000 UTC
	Bits:       0x1e0fffff,
	Nonce:      661127,
}

// regTestGenesisHash is the hash of the first block in the block chain for the
// regression test network (genesis block).
var regTestGenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0xf6, 0x65, 0xe2, 0x0c, 0x98, 0x41, 0x4f, 0x30,
	0xfd, 0x37, 0x85, 0xb4, 0x05, 0x3a, 0xb4, 0x40,
	0x0f, 0x52, 0xb7, 0xf4, 0xbe, 0x91, 0x67, 0x4d,
	0x78, 0xb3, 0x46, 0x21, 0xe1, 0x48, 0x28, 0x19,
})

// regTestGenesisMerkleRoot is the hash of the first transaction in the genesis
// block for the regression test network. It is the same as the merkle root
// for the main network.
var regTestGenesisMerkleRoot = genesisMerkleRoot

// regTestGenesisBlockHeader defines the header of the genesis block of the
// block chain which serves as the public transaction ledger for the
// regression test network.
var regTestGenesisBlockHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{},
	MerkleRoot: regTestGenesisMerkleRoot,
	Timestamp:  time.Unix(0x61800ec2, 0), // 2021-11-01 15:58:58 +0000 UTC
	Bits:       0x207fffff,
	Nonce:      3,
}

// testNet3GenesisHash is the hash of the first block in the block chain for
// the test network (version 3).
var testNet3GenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0x36, 0xf9, 0x2e, 0x47, 0xca, 0xcb, 0x2c, 0x6c,
	0xc2, 0x18, 0xf4, 0x55, 0xb9, 0x1d, 0x26, 0x1e,
	0x67, 0xcf, 0x36, 0x39, 0xe2, 0x03, 0x6c, 0xf6,
	0x38, 0xc4, 0x55, 0x93, 0xd5, 0x08, 0x00, 0x00,
})

// testNet3GenesisMerkleRoot is the hash of the first transaction in the
// genesis block for the test network (version 3). It is the same as the
// merkle root for the main network.
var testNet3GenesisMerkleRoot = genesisMerkleRoot

// testNet3GenesisBlockHeader defines the header of the genesis block of the
// block chain which serves as the public transaction ledger for the test
// network (version 3).
var testNet3GenesisBlockHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{},
	MerkleRoot: testNet3GenesisMerkleRoot,
	Timestamp:  time.Unix(0x61800ec1, 0), // 2021-11-01 15:58:57 +0000 UTC
	Bits:       0x1e0fffff,
	Nonce:      565527,
}

// simNetGenesisHash is the hash of the first block in the block chain for the
// simulation test network.
var simNetGenesisHash = chainhash.Hash([chainhash.HashSize]byte{ // Make go vet happy.
	0xf2, 0x2a, 0x8c, 0x10, 0x22, 0x30, 0x8a, 0xe3,
	0x87, 0xa0, 0x68, 0x3f, 0x48, 0xb2, 0x77, 0x17,
	0x5a, 0x02, 0xef, 0x6e, 0x6f, 0x99, 0xa4, 0xe1,
	0x69, 0x3b, 0x38, 0x8a, 0x9e, 0xbf, 0x5e, 0x1e,
})

// simNetGenesisMerkleRoot is the hash of the first transaction in the genesis
// block for the simulation test network. It is the same as the merkle root
// for the main network.
var simNetGenesisMerkleRoot = genesisMerkleRoot

// simNetGenesisBlockHeader defines the header of the genesis block of the
// block chain which serves as the public transaction ledger for the
// simulation test network.
var simNetGenesisBlockHeader = wire.BlockHeader{
	Version:    1,
	PrevBlock:  chainhash.Hash{},
	MerkleRoot: simNetGenesisMerkleRoot,
	Timestamp:  time.Unix(0x61800ec3, 0), // 2021-11-01 15:58:59 +0000 UTC
	Bits:       0x207fffff,
	Nonce:      0,
}
