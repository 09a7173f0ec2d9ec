// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/StohnIO/Stohncoin/util"
	"github.com/StohnIO/Stohncoin/util/chainhash"
	"github.com/StohnIO/Stohncoin/wire"
)

// These variables are the chain proof-of-work limit parameters for each
// default network.
var (
	// bigOne is 1 represented as a big.Int. It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// mainPowLimit is the highest proof of work value a Stohn block can
	// have for the main network. It is the value 2^236 - 1.
	mainPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// regressionPowLimit is the highest proof of work value a Stohn block
	// can have for the regression test network. It is the value 2^255 - 1.
	regressionPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)

	// testNet3PowLimit is the highest proof of work value a Stohn block
	// can have for the test network (version 3). It is the value
	// 2^236 - 1.
	testNet3PowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 236), bigOne)

	// simNetPowLimit is the highest proof of work value a Stohn block
	// can have for the simulation test network. It is the value 2^255 - 1.
	simNetPowLimit = new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
)

// Params defines a Stohn network by its parameters. These parameters may be
// used by Stohn applications to differentiate networks as well as addresses
// and keys for one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net wire.StohnNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []string

	// GenesisBlock defines the first block header of the chain.
	GenesisBlock *wire.BlockHeader

	// GenesisHash is the starting block hash.
	GenesisHash *chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimespanFork is the replacement for TargetTimespan that
	// becomes active once the chain passes ForkHeight.
	TargetTimespanFork time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// ForkHeight is the height at which the difficulty adjustment
	// parameters permanently switch from TargetTimespan to
	// TargetTimespanFork. The fork values govern a block whenever the
	// height of its parent is at least ForkHeight.
	ForkHeight int32

	// ReduceMinDifficulty defines whether the network should reduce the
	// minimum required difficulty after a long enough period of time has
	// passed without finding a block. This is really only useful for test
	// networks and should not be set on a main network.
	ReduceMinDifficulty bool

	// MinDiffReductionTime is the amount of time after which the minimum
	// required difficulty should be reduced when a block hasn't been
	// found. It is only used when ReduceMinDifficulty is true.
	MinDiffReductionTime time.Duration

	// PowNoRetargeting defines whether the network skips difficulty
	// retargeting entirely and keeps the previous difficulty on
	// adjustment boundaries. It is used on regression test chains.
	PowNoRetargeting bool
}

// DifficultyAdjustmentInterval returns the number of blocks between
// difficulty retargets before ForkHeight.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return int64(p.TargetTimespan / p.TargetTimePerBlock)
}

// DifficultyAdjustmentIntervalFork returns the number of blocks between
// difficulty retargets once the chain has passed ForkHeight.
func (p *Params) DifficultyAdjustmentIntervalFork() int64 {
	return int64(p.TargetTimespanFork / p.TargetTimePerBlock)
}

// MainNetParams defines the network parameters for the main Stohn network.
var MainNetParams = Params{
	Name:        "mainnet",
	Net:         wire.MainNet,
	DefaultPort: "17771",
	DNSSeeds:    []string{"dnsseed.stohn.io", "dnsseed2.stohn.io"},

	// Chain parameters
	GenesisBlock: &genesisBlockHeader,
	GenesisHash:  &genesisHash,
	PowLimit:     mainPowLimit,
	PowLimitBits: 0x1e0fffff,

	// Before the 2023 hard fork the difficulty was examined once per day
	// worth of blocks. The fork shortens the window to one hour so a
	// majority hash-rate attacker can no longer hold the difficulty down
	// for a full day after a retarget.
	TargetTimespan:       time.Hour * 24,
	TargetTimespanFork:   time.Hour,
	TargetTimePerBlock:   time.Minute,
	ForkHeight:           777777,
	ReduceMinDifficulty:  false,
	MinDiffReductionTime: 0,
	PowNoRetargeting:     false,
}

// RegressionNetParams defines the network parameters for the regression test
// Stohn network. Not to be confused with the test Stohn network (version
// 3), this network is sometimes simply called "testnet".
var RegressionNetParams = Params{
	Name:        "regtest",
	Net:         wire.TestNet,
	DefaultPort: "17881",
	DNSSeeds:    []string{},

	// Chain parameters
	GenesisBlock: &regTestGenesisBlockHeader,
	GenesisHash:  &regTestGenesisHash,
	PowLimit:     regressionPowLimit,
	PowLimitBits: 0x207fffff,

	TargetTimespan:       time.Hour * 24,
	TargetTimespanFork:   time.Hour,
	TargetTimePerBlock:   time.Minute,
	ForkHeight:           150,
	ReduceMinDifficulty:  true,
	MinDiffReductionTime: time.Minute * 2, // TargetTimePerBlock * 2
	PowNoRetargeting:     true,
}

// TestNet3Params defines the network parameters for the test Stohn network
// (version 3). Not to be confused with the regression test network, this
// network is sometimes simply called "testnet".
var TestNet3Params = Params{
	Name:        "testnet3",
	Net:         wire.TestNet3,
	DefaultPort: "18881",
	DNSSeeds:    []string{"testnet-seed.stohn.io"},

	// Chain parameters
	GenesisBlock: &testNet3GenesisBlockHeader,
	GenesisHash:  &testNet3GenesisHash,
	PowLimit:     testNet3PowLimit,
	PowLimitBits: 0x1e0fffff,

	TargetTimespan:       time.Hour * 24,
	TargetTimespanFork:   time.Hour,
	TargetTimePerBlock:   time.Minute,
	ForkHeight:           21111,
	ReduceMinDifficulty:  true,
	MinDiffReductionTime: time.Minute * 2, // TargetTimePerBlock * 2
	PowNoRetargeting:     false,
}

// SimNetParams defines the network parameters for the simulation test Stohn
// network. This network is similar to the normal test network except it is
// intended for private use within a group of individuals doing simulation
// testing. The functionality is intended to differ in that the only nodes
// which are specifically specified are used to create the network rather than
// following normal discovery rules. This is important as otherwise it would
// just turn into another public testnet.
var SimNetParams = Params{
	Name:        "simnet",
	Net:         wire.SimNet,
	DefaultPort: "18991",
	DNSSeeds:    []string{}, // NOTE: There must NOT be any seeds.

	// Chain parameters
	GenesisBlock: &simNetGenesisBlockHeader,
	GenesisHash:  &simNetGenesisHash,
	PowLimit:     simNetPowLimit,
	PowLimitBits: 0x207fffff,

	TargetTimespan:       time.Hour * 24,
	TargetTimespanFork:   time.Hour,
	TargetTimePerBlock:   time.Minute,
	ForkHeight:           150,
	ReduceMinDifficulty:  true,
	MinDiffReductionTime: time.Minute * 2, // TargetTimePerBlock * 2
	PowNoRetargeting:     true,
}

var (
	// ErrDuplicateNet describes an error where the parameters for a Stohn
	// network could not be set due to the network already being a standard
	// network or previously-registered via this package.
	ErrDuplicateNet = errors.New("duplicate Stohn network")

	registeredNets = make(map[wire.StohnNet]struct{})
)

// Register registers the network parameters for a Stohn network. This may
// error with ErrDuplicateNet if the network is already registered (either
// due to a previous Register call, or the network being one of the default
// networks).
//
// Network parameters should be registered into this package by a main package
// as early as possible. Then, library packages may lookup networks or network
// parameters based on inputs and work regardless of the network being standard
// or not.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Net]; ok {
		return ErrDuplicateNet
	}
	registeredNets[params.Net] = struct{}{}

	return nil
}

// mustRegister performs the same function as Register except it panics if
// there is an error. This should only be called from package init functions.
func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

// sanityCheckPowLimitBits ensures the compact form carried by the parameters
// round-trips to the pow limit they also carry. A mismatch here would change
// which blocks the network accepts.
func sanityCheckPowLimitBits(params *Params) {
	limit := util.CompactToBig(params.PowLimitBits)
	if limit.Cmp(params.PowLimit) > 0 {
		panic("pow limit bits of " + params.Name +
			" exceed the pow limit magnitude")
	}
}

func init() {
	// Register all default networks when the package is initialized.
	mustRegister(&MainNetParams)
	mustRegister(&TestNet3Params)
	mustRegister(&RegressionNetParams)
	mustRegister(&SimNetParams)

	sanityCheckPowLimitBits(&MainNetParams)
	sanityCheckPowLimitBits(&TestNet3Params)
	sanityCheckPowLimitBits(&RegressionNetParams)
	sanityCheckPowLimitBits(&SimNetParams)
}
