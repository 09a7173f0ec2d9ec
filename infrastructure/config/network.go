package config

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/StohnIO/Stohncoin/chaincfg"
	"github.com/StohnIO/Stohncoin/util"
)

// NetworkFlags holds the network configuration, that is which network is
// selected.
type NetworkFlags struct {
	Testnet            bool   `long:"testnet" description:"Use the test network"`
	RegressionTest     bool   `long:"regtest" description:"Use the regression test network"`
	Simnet             bool   `long:"simnet" description:"Use the simulation test network"`
	OverrideParamsFile string `long:"override-params-file" description:"Overrides chain params (allowed only on regtest)"`

	ActiveNetParams *chaincfg.Params
}

// overrideParamsConfig carries the chain parameter overrides a regression
// test harness may apply. All fields are optional; nil leaves the default.
type overrideParamsConfig struct {
	PowLimit                    *string `json:"powLimit"`
	TargetTimespanInSeconds     *int64  `json:"targetTimespanInSeconds"`
	TargetTimespanForkInSeconds *int64  `json:"targetTimespanForkInSeconds"`
	TargetTimePerBlockInSeconds *int64  `json:"targetTimePerBlockInSeconds"`
	ForkHeight                  *int32  `json:"forkHeight"`
	ReduceMinDifficulty         *bool   `json:"reduceMinDifficulty"`
	PowNoRetargeting            *bool   `json:"powNoRetargeting"`
}

// ResolveNetwork parses the network command line argument and sets NetParams
// accordingly. It returns an error if more than one network was selected,
// nil otherwise.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	// NetParams holds the selected network parameters. Default value is
	// main-net.
	networkFlags.ActiveNetParams = &chaincfg.MainNetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	// Count number of network flags passed; assign active network params
	// while we're at it.
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = &chaincfg.TestNet3Params
	}
	if networkFlags.RegressionTest {
		numNets++
		networkFlags.ActiveNetParams = &chaincfg.RegressionNetParams
	}
	if networkFlags.Simnet {
		numNets++
		networkFlags.ActiveNetParams = &chaincfg.SimNetParams
	}
	if numNets > 1 {
		message := "Multiple network parameters (testnet, regtest, simnet) cannot be used " +
			"together. Please choose only one network"
		err := errors.Errorf(message)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return err
	}

	return networkFlags.overrideParams()
}

// NetParams returns the ActiveNetParams.
func (networkFlags *NetworkFlags) NetParams() *chaincfg.Params {
	return networkFlags.ActiveNetParams
}

func (networkFlags *NetworkFlags) overrideParams() error {
	if networkFlags.OverrideParamsFile == "" {
		return nil
	}

	if !networkFlags.RegressionTest {
		return errors.Errorf("override-params-file is allowed only when using regtest")
	}

	overrideParamsFile, err := os.Open(networkFlags.OverrideParamsFile)
	if err != nil {
		return errors.Wrapf(err, "couldn't open params override file %s",
			networkFlags.OverrideParamsFile)
	}
	defer overrideParamsFile.Close()

	decoder := json.NewDecoder(overrideParamsFile)
	config := &overrideParamsConfig{}
	err = decoder.Decode(config)
	if err != nil {
		return errors.Wrap(err, "couldn't decode params override file")
	}

	// Work on a copy so the package-level defaults stay untouched.
	overridden := *networkFlags.ActiveNetParams
	networkFlags.ActiveNetParams = &overridden

	if config.PowLimit != nil {
		powLimit, ok := big.NewInt(0).SetString(*config.PowLimit, 16)
		if !ok {
			return errors.Errorf("couldn't convert %s to big int", *config.PowLimit)
		}

		genesisTarget := util.CompactToBig(overridden.GenesisBlock.Bits)
		if genesisTarget.Cmp(powLimit) > 0 {
			return errors.Errorf("powLimit (%s) is smaller than genesis's target (%s)",
				powLimit.Text(16), genesisTarget.Text(16))
		}
		overridden.PowLimit = powLimit
		overridden.PowLimitBits = util.BigToCompact(powLimit)
	}

	if config.TargetTimespanInSeconds != nil {
		overridden.TargetTimespan = time.Duration(*config.TargetTimespanInSeconds) * time.Second
	}

	if config.TargetTimespanForkInSeconds != nil {
		overridden.TargetTimespanFork = time.Duration(*config.TargetTimespanForkInSeconds) * time.Second
	}

	if config.TargetTimePerBlockInSeconds != nil {
		overridden.TargetTimePerBlock = time.Duration(*config.TargetTimePerBlockInSeconds) * time.Second
		overridden.MinDiffReductionTime = 2 * overridden.TargetTimePerBlock
	}

	if config.ForkHeight != nil {
		overridden.ForkHeight = *config.ForkHeight
	}

	if config.ReduceMinDifficulty != nil {
		overridden.ReduceMinDifficulty = *config.ReduceMinDifficulty
	}

	if config.PowNoRetargeting != nil {
		overridden.PowNoRetargeting = *config.PowNoRetargeting
	}

	return nil
}
