// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"

	"github.com/StohnIO/Stohncoin/blockchain"
	"github.com/StohnIO/Stohncoin/chaincfg"
	"github.com/StohnIO/Stohncoin/infrastructure/logger"
	"github.com/StohnIO/Stohncoin/util"
	"github.com/StohnIO/Stohncoin/util/chainhash"
	"github.com/StohnIO/Stohncoin/wire"
)

var log = logger.RegisterSubSystem("GENS")

// solveGenesisBlock attempts to find some combination of a nonce and
// current timestamp which makes the passed block header hash to a value less
// than the target difficulty.
func solveGenesisBlock(header *wire.BlockHeader, netName string) {
	defer logger.LogAndMeasureExecutionTime(log, "solveGenesisBlock")()

	// Create some convenience variables.
	targetDifficulty := util.CompactToBig(header.Bits)

	// Search through the entire nonce range for a solution, refreshing the
	// timestamp each time the range is exhausted.
	maxNonce := ^uint32(0) // 2^32 - 1
	for {
		header.Timestamp = time.Unix(time.Now().Unix(), 0)
		for i := uint32(0); i <= maxNonce; i++ {
			header.Nonce = i
			hash := header.BlockHash()

			// The block is solved when the new block hash is less
			// than the target difficulty.
			if chainhash.HashToBig(&hash).Cmp(targetDifficulty) <= 0 {
				fmt.Printf("\nGenesis block of %s is solved:\n", netName)
				fmt.Printf("timestamp: 0x%x\n", header.Timestamp.Unix())
				fmt.Printf("bits (difficulty): 0x%x\n", header.Bits)
				fmt.Printf("nonce: 0x%x\n", header.Nonce)
				fmt.Printf("hash: %v\n\n", hex.EncodeToString(hash[:]))
				return
			}
		}
	}
}

// verifyGenesisBlock checks that the genesis header embedded in the given
// network parameters hashes to the embedded genesis hash and satisfies its
// own proof of work.
func verifyGenesisBlock(params *chaincfg.Params) error {
	hash := params.GenesisBlock.BlockHash()
	if !hash.IsEqual(params.GenesisHash) {
		return fmt.Errorf("genesis header of %s hashes to %s, params carry %s",
			params.Name, hash, params.GenesisHash)
	}
	if err := blockchain.CheckBlockHeaderProofOfWork(params.GenesisBlock, params); err != nil {
		return fmt.Errorf("genesis block of %s does not satisfy its own "+
			"proof of work: %s", params.Name, err)
	}
	fmt.Printf("Genesis block of %s is valid: %s\n", params.Name, hash)
	return nil
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing command-line arguments: %s\n", err)
		os.Exit(1)
	}

	params := cfg.NetParams()
	if cfg.Verify {
		if err := verifyGenesisBlock(params); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// Solve a fresh genesis header for the selected network, starting from
	// the embedded one.
	header := *params.GenesisBlock
	if cfg.Bits != 0 {
		header.Bits = cfg.Bits
	}
	solveGenesisBlock(&header, params.Name)
}
