// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"testing"

	"github.com/StohnIO/Stohncoin/chaincfg"
	"github.com/StohnIO/Stohncoin/util"
	"github.com/StohnIO/Stohncoin/util/chainhash"
)

// bigToHash converts a big integer into the little-endian hash form block
// hashes are stored in. The value must fit in 32 bytes.
func bigToHash(t *testing.T, n *big.Int) *chainhash.Hash {
	t.Helper()

	buf := n.Bytes()
	if len(buf) > chainhash.HashSize {
		t.Fatalf("value %x does not fit in a hash", n)
	}

	var hash chainhash.Hash
	for i, b := range buf {
		hash[len(buf)-1-i] = b
	}
	return &hash
}

// assertRuleError ensures err is a RuleError carrying the given code.
func assertRuleError(t *testing.T, err error, code ErrorCode) {
	t.Helper()

	rerr, ok := err.(RuleError)
	if !ok {
		t.Fatalf("error has type %T (%v), want RuleError", err, err)
	}
	if rerr.ErrorCode != code {
		t.Fatalf("error code is %v, want %v", rerr.ErrorCode, code)
	}
}

// TestCheckProofOfWork ensures hashes on either side of the claimed target
// are accepted and rejected respectively, and that malformed or out-of-range
// targets are rejected outright.
func TestCheckProofOfWork(t *testing.T) {
	params := &chaincfg.MainNetParams
	target := util.CompactToBig(params.PowLimitBits)

	// A hash exactly on the target is still valid.
	hash := bigToHash(t, target)
	if err := CheckProofOfWork(hash, params.PowLimitBits, params); err != nil {
		t.Fatalf("hash equal to target rejected: %v", err)
	}

	// The zero hash beats any valid target.
	if err := CheckProofOfWork(&chainhash.ZeroHash, params.PowLimitBits,
		params); err != nil {
		t.Fatalf("zero hash rejected: %v", err)
	}

	// One above the target must be rejected as a high hash.
	hash = bigToHash(t, new(big.Int).Add(target, big.NewInt(1)))
	err := CheckProofOfWork(hash, params.PowLimitBits, params)
	assertRuleError(t, err, ErrHighHash)
}

// TestCheckProofOfWorkBadBits ensures targets that are zero, negative,
// overflowing, or above the network limit are rejected regardless of the
// hash.
func TestCheckProofOfWorkBadBits(t *testing.T) {
	params := &chaincfg.MainNetParams

	tests := []struct {
		name string
		bits uint32
	}{
		{"zero mantissa", 0x00000000},
		{"zero mantissa high exponent", 0x1e000000},
		{"negative", 0x1d80ffff},
		{"overflow", 0xff000001},
		{"barely overflow", 0x2200ffff},
		{"above network limit", 0x207fffff},
	}

	for _, test := range tests {
		err := CheckProofOfWork(&chainhash.ZeroHash, test.bits, params)
		if err == nil {
			t.Errorf("%s (%08x): accepted", test.name, test.bits)
			continue
		}
		rerr, ok := err.(RuleError)
		if !ok {
			t.Errorf("%s (%08x): error has type %T, want RuleError",
				test.name, test.bits, err)
			continue
		}
		if rerr.ErrorCode != ErrUnexpectedDifficulty {
			t.Errorf("%s (%08x): error code %v, want ErrUnexpectedDifficulty",
				test.name, test.bits, rerr.ErrorCode)
		}
	}
}

// TestCheckBlockHeaderProofOfWork ensures the genesis header of every network
// satisfies its own embedded difficulty, and that changing the nonce breaks
// it.
func TestCheckBlockHeaderProofOfWork(t *testing.T) {
	for _, params := range []*chaincfg.Params{&chaincfg.MainNetParams,
		&chaincfg.TestNet3Params, &chaincfg.RegressionNetParams,
		&chaincfg.SimNetParams} {

		err := CheckBlockHeaderProofOfWork(params.GenesisBlock, params)
		if err != nil {
			t.Errorf("%s: genesis header fails its own proof of work: %v",
				params.Name, err)
		}
	}

	header := *chaincfg.MainNetParams.GenesisBlock
	header.Nonce++
	err := CheckBlockHeaderProofOfWork(&header, &chaincfg.MainNetParams)
	assertRuleError(t, err, ErrHighHash)
}
