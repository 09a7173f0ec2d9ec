// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"
	"time"

	"github.com/StohnIO/Stohncoin/chaincfg"
	"github.com/StohnIO/Stohncoin/util"
)

// activeRetargetParams holds the difficulty adjustment values that govern a
// particular height: the pre-fork values before ForkHeight and the fork
// values from ForkHeight on.
type activeRetargetParams struct {
	adjustmentInterval int64
	targetTimespan     time.Duration
}

// retargetParamsForHeight selects the parameter regime governing the block
// built on a parent at lastHeight.
func retargetParamsForHeight(lastHeight int32, params *chaincfg.Params) activeRetargetParams {
	if lastHeight >= params.ForkHeight {
		return activeRetargetParams{
			adjustmentInterval: params.DifficultyAdjustmentIntervalFork(),
			targetTimespan:     params.TargetTimespanFork,
		}
	}
	return activeRetargetParams{
		adjustmentInterval: params.DifficultyAdjustmentInterval(),
		targetTimespan:     params.TargetTimespan,
	}
}

// GetNextWorkRequired calculates the required difficulty for the block built
// on top of lastNode with the given timestamp.
//
// The resulting difficulty is consensus critical: every node must derive the
// identical value for the same chain, so the historical behavior is kept
// exactly, including the shortened look-back window on the first retarget
// after genesis and the min-difficulty walk-back on networks that allow
// min-difficulty blocks.
//
// lastNode must not be nil, and the chain below it must reach genesis within
// the active adjustment interval on retarget boundaries. Violating either is
// a defect in the caller and panics with an AssertError.
//
// This function is safe for concurrent access as long as the chain of nodes
// below lastNode is not concurrently mutated.
func GetNextWorkRequired(lastNode *BlockNode, newBlockTime time.Time, params *chaincfg.Params) uint32 {
	if lastNode == nil {
		panic(AssertError("GetNextWorkRequired called with nil last node"))
	}

	// Select the parameter regime for the height being evaluated and the
	// easiest difficulty the network allows.
	active := retargetParamsForHeight(lastNode.height, params)
	proofOfWorkLimit := util.BigToCompact(params.PowLimit)
	log.Tracef("Difficulty adjustment interval at height %d: %d",
		lastNode.height+1, active.adjustmentInterval)

	// Only change the difficulty once per adjustment interval. The check
	// uses the height the candidate block would have.
	if (int64(lastNode.height)+1)%active.adjustmentInterval != 0 {
		if params.ReduceMinDifficulty {
			// Special difficulty rule for testnet: if the new
			// block's timestamp is more than twice the target
			// spacing after the previous block, allow mining of a
			// min-difficulty block.
			reductionTime := int64(params.MinDiffReductionTime / time.Second)
			if newBlockTime.Unix() > lastNode.timestamp+reductionTime {
				return proofOfWorkLimit
			}

			// Return the difficulty of the last block that was not
			// mined under the min-difficulty exception. The walk
			// deliberately tests the raw height, not height+1 as
			// the boundary check above does; this mirrors the
			// behavior the network has always had and must not be
			// "fixed".
			node := lastNode
			for node.parent != nil &&
				int64(node.height)%active.adjustmentInterval != 0 &&
				node.bits == proofOfWorkLimit {

				node = node.parent
				log.Tracef("Min-difficulty walk-back passed height %d (bits %08x)",
					node.height, node.bits)
			}
			return node.bits
		}

		// Not at an adjustment boundary and no special rules apply:
		// the difficulty carries over unchanged.
		return lastNode.bits
	}

	// This is a retarget boundary. Go back the full adjustment interval
	// worth of blocks, except on the very first retarget after genesis
	// where only interval-1 predecessors exist to pair with. Going back
	// the full interval otherwise prevents a majority hash-rate attacker
	// from shifting the window.
	blocksToGoBack := active.adjustmentInterval
	if int64(lastNode.height)+1 == active.adjustmentInterval {
		blocksToGoBack = active.adjustmentInterval - 1
	}

	firstNode := lastNode
	for i := int64(0); firstNode != nil && i < blocksToGoBack; i++ {
		firstNode = firstNode.parent
	}
	if firstNode == nil {
		panic(AssertError("GetNextWorkRequired ran past genesis walking " +
			"back an adjustment interval"))
	}

	return CalculateNextWorkRequired(lastNode, firstNode.timestamp, params,
		active.targetTimespan)
}

// CalculateNextWorkRequired calculates the required difficulty for the block
// after lastNode given the timestamp of the first block in the adjustment
// window and the target timespan of the active parameter regime. The previous
// target is rescaled by the ratio of the actual to the expected elapsed time,
// clamped to a factor of 4 in either direction and floored at the pow limit.
func CalculateNextWorkRequired(lastNode *BlockNode, firstBlockTime int64,
	params *chaincfg.Params, targetTimespan time.Duration) uint32 {

	// Regression and simulation test chains keep the difficulty constant.
	if params.PowNoRetargeting {
		return lastNode.bits
	}

	// Limit the amount of adjustment that can occur to the previous
	// difficulty: at most 4 times easier or harder per window.
	targetTimespanSecs := int64(targetTimespan / time.Second)
	actualTimespan := lastNode.timestamp - firstBlockTime
	adjustedTimespan := actualTimespan
	if adjustedTimespan < targetTimespanSecs/4 {
		adjustedTimespan = targetTimespanSecs / 4
	}
	if adjustedTimespan > targetTimespanSecs*4 {
		adjustedTimespan = targetTimespanSecs * 4
	}

	oldTarget := util.CompactToBig(lastNode.bits)
	newTarget := new(big.Int).Set(oldTarget)

	// The target may reach the pow limit, whose bit length the
	// intermediate product can exceed by one bit. Shift right before
	// multiplying and undo it afterwards; the shift must be applied
	// symmetrically or the result diverges from the historical value.
	shifted := newTarget.BitLen() > params.PowLimit.BitLen()-1
	if shifted {
		newTarget.Rsh(newTarget, 1)
	}

	// New target is the previous target scaled by the ratio of actual to
	// expected elapsed time, using integer division which rounds down.
	newTarget.Mul(newTarget, big.NewInt(adjustedTimespan))
	newTarget.Div(newTarget, big.NewInt(targetTimespanSecs))

	if shifted {
		newTarget.Lsh(newTarget, 1)
	}

	// The difficulty can never drop below the network-wide floor.
	if newTarget.Cmp(params.PowLimit) > 0 {
		newTarget.Set(params.PowLimit)
	}

	newTargetBits := util.BigToCompact(newTarget)
	log.Debugf("Difficulty retarget at block height %d", lastNode.height+1)
	log.Debugf("Old target %08x (%064x)", lastNode.bits, oldTarget)
	log.Debugf("New target %08x (%064x)", newTargetBits,
		util.CompactToBig(newTargetBits))
	log.Debugf("Actual timespan %s, adjusted timespan %s, target timespan %s",
		time.Duration(actualTimespan)*time.Second,
		time.Duration(adjustedTimespan)*time.Second,
		targetTimespan)

	return newTargetBits
}
