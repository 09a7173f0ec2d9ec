// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"

	"github.com/StohnIO/Stohncoin/chaincfg"
	"github.com/StohnIO/Stohncoin/util"
	"github.com/StohnIO/Stohncoin/util/chainhash"
	"github.com/StohnIO/Stohncoin/wire"
)

// CheckProofOfWork ensures the provided block hash is less than or equal to
// the target difficulty represented by the given compact bits, and that the
// bits themselves encode a target which is in the valid range for the
// network described by params.
//
// A nil return means the proof of work is valid. Any failure is reported as
// a RuleError; malformed targets are never a program fault because the bits
// come from untrusted block data.
func CheckProofOfWork(hash *chainhash.Hash, bits uint32, params *chaincfg.Params) error {
	// The target difficulty must decode to a positive, in-range number.
	target, isNegative, isOverflow := util.CompactToBigWithFlags(bits)
	if isNegative || isOverflow || target.Sign() <= 0 {
		str := fmt.Sprintf("block target difficulty bits of %08x are "+
			"malformed", bits)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The target difficulty must be less than the maximum allowed.
	if target.Cmp(params.PowLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is "+
			"higher than max of %064x", target, params.PowLimit)
		return ruleError(ErrUnexpectedDifficulty, str)
	}

	// The block hash must be less than the claimed target.
	hashNum := chainhash.HashToBig(hash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than "+
			"expected max of %064x", hashNum, target)
		return ruleError(ErrHighHash, str)
	}

	return nil
}

// CheckBlockHeaderProofOfWork computes the hash of the given header and
// checks it against the target difficulty the header claims.
func CheckBlockHeaderProofOfWork(header *wire.BlockHeader, params *chaincfg.Params) error {
	hash := header.BlockHash()
	return CheckProofOfWork(&hash, header.Bits, params)
}
