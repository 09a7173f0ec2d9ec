package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/StohnIO/Stohncoin/chaincfg"
)

func resolveWithArgs(t *testing.T, netFlags *NetworkFlags) error {
	t.Helper()

	parser := flags.NewParser(netFlags, flags.HelpFlag)
	if _, err := parser.ParseArgs(nil); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	return netFlags.ResolveNetwork(parser)
}

func TestResolveNetworkDefaultsToMainnet(t *testing.T) {
	netFlags := &NetworkFlags{}
	if err := resolveWithArgs(t, netFlags); err != nil {
		t.Fatalf("ResolveNetwork: %v", err)
	}
	if netFlags.NetParams() != &chaincfg.MainNetParams {
		t.Fatalf("default network is %s, want mainnet",
			netFlags.NetParams().Name)
	}
}

func TestResolveNetworkSelection(t *testing.T) {
	tests := []struct {
		flags NetworkFlags
		want  *chaincfg.Params
	}{
		{NetworkFlags{Testnet: true}, &chaincfg.TestNet3Params},
		{NetworkFlags{RegressionTest: true}, &chaincfg.RegressionNetParams},
		{NetworkFlags{Simnet: true}, &chaincfg.SimNetParams},
	}

	for _, test := range tests {
		netFlags := test.flags
		if err := resolveWithArgs(t, &netFlags); err != nil {
			t.Fatalf("ResolveNetwork(%s): %v", test.want.Name, err)
		}
		if netFlags.NetParams() != test.want {
			t.Errorf("selected network is %s, want %s",
				netFlags.NetParams().Name, test.want.Name)
		}
	}
}

func TestResolveNetworkRejectsMultiple(t *testing.T) {
	netFlags := &NetworkFlags{Testnet: true, Simnet: true}
	if err := resolveWithArgs(t, netFlags); err == nil {
		t.Fatal("ResolveNetwork accepted two networks")
	}
}

func TestOverrideParams(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "stohn-override")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	overrideFile := filepath.Join(tmpDir, "params.json")
	overrideJSON := `{
		"targetTimespanInSeconds": 480,
		"targetTimespanForkInSeconds": 240,
		"targetTimePerBlockInSeconds": 30,
		"forkHeight": 10,
		"reduceMinDifficulty": false,
		"powNoRetargeting": true
	}`
	if err := ioutil.WriteFile(overrideFile, []byte(overrideJSON), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	netFlags := &NetworkFlags{
		RegressionTest:     true,
		OverrideParamsFile: overrideFile,
	}
	if err := resolveWithArgs(t, netFlags); err != nil {
		t.Fatalf("ResolveNetwork: %v", err)
	}

	params := netFlags.NetParams()
	if params == &chaincfg.RegressionNetParams {
		t.Fatal("override mutated the package-level regtest params")
	}
	if params.TargetTimespan != 480*time.Second {
		t.Errorf("TargetTimespan is %s, want 8m0s", params.TargetTimespan)
	}
	if params.TargetTimespanFork != 240*time.Second {
		t.Errorf("TargetTimespanFork is %s, want 4m0s", params.TargetTimespanFork)
	}
	if params.TargetTimePerBlock != 30*time.Second {
		t.Errorf("TargetTimePerBlock is %s, want 30s", params.TargetTimePerBlock)
	}
	if params.MinDiffReductionTime != time.Minute {
		t.Errorf("MinDiffReductionTime is %s, want 1m0s", params.MinDiffReductionTime)
	}
	if params.ForkHeight != 10 {
		t.Errorf("ForkHeight is %d, want 10", params.ForkHeight)
	}
	if params.ReduceMinDifficulty {
		t.Error("ReduceMinDifficulty was not overridden to false")
	}
	if !params.PowNoRetargeting {
		t.Error("PowNoRetargeting was not overridden to true")
	}

	// The regtest defaults themselves must be untouched.
	if !chaincfg.RegressionNetParams.ReduceMinDifficulty {
		t.Error("package-level regtest params were mutated")
	}
}

func TestOverrideParamsRequiresRegtest(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "stohn-override")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	overrideFile := filepath.Join(tmpDir, "params.json")
	if err := ioutil.WriteFile(overrideFile, []byte(`{}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	netFlags := &NetworkFlags{
		Simnet:             true,
		OverrideParamsFile: overrideFile,
	}
	if err := resolveWithArgs(t, netFlags); err == nil {
		t.Fatal("override params file accepted outside regtest")
	}
}

func TestOverrideParamsRejectsSmallPowLimit(t *testing.T) {
	tmpDir, err := ioutil.TempDir("", "stohn-override")
	if err != nil {
		t.Fatalf("TempDir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	// A pow limit of 1 is below the genesis target, which would orphan
	// the genesis block.
	overrideFile := filepath.Join(tmpDir, "params.json")
	if err := ioutil.WriteFile(overrideFile, []byte(`{"powLimit": "1"}`), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	netFlags := &NetworkFlags{
		RegressionTest:     true,
		OverrideParamsFile: overrideFile,
	}
	if err := resolveWithArgs(t, netFlags); err == nil {
		t.Fatal("pow limit below the genesis target accepted")
	}
}
