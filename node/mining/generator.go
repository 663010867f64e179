// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"time"

	"github.com/sbtc-core/sbtcd/node/chainview"
	"github.com/sbtc-core/sbtcd/node/contractvm"
	"github.com/sbtc-core/sbtcd/node/mempool"
	"github.com/sbtc-core/sbtcd/sbtcutil"
	"github.com/sbtc-core/sbtcd/types/wire"
)

// BlkTmplGenerator generates block templates from the most profitable
// mix of transactions, following the teacher's BlkTmplGenerator's
// collaborator-holding shape, narrowed to the three collaborators spec.md
// §6 names plus the read-once-per-template policy.
type BlkTmplGenerator struct {
	policy Policy
	chain  chainview.Chain
	view   mempool.View
	engine contractvm.Engine

	// gasParams is resolved once at the top of CreateNewBlock and read by
	// every admitContract call within that pass (spec.md §4.4's "resolved
	// once per template from the engine's current view plus operator
	// overrides").
	gasParams contractvm.GasParams
}

// NewBlkTmplGenerator returns a generator wired to the given collaborators
// and policy.
func NewBlkTmplGenerator(policy Policy, chain chainview.Chain, view mempool.View, engine contractvm.Engine) *BlkTmplGenerator {
	return &BlkTmplGenerator{policy: policy, chain: chain, view: view, engine: engine}
}

// resolveGasParams implements the price/limit resolution spec.md §4.4
// describes: the engine's own minimums raised (never lowered) by operator
// overrides, with the per-transaction ceiling defaulting to the soft
// block limit when unset.
func (g *BlkTmplGenerator) resolveGasParams(height int32) contractvm.GasParams {
	minGasPrice := g.engine.GetMinGasPrice(height)
	if g.policy.StakerMinTxGasPrice > minGasPrice {
		minGasPrice = g.policy.StakerMinTxGasPrice
	}

	hardLimit := g.engine.GetBlockGasLimit(height)
	softLimit := g.policy.StakerSoftBlockGasLimit
	if softLimit == 0 || softLimit > hardLimit {
		softLimit = hardLimit
	}

	txLimit := g.policy.StakerMaxTxGasLimit
	if txLimit == 0 || txLimit > softLimit {
		txLimit = softLimit
	}

	return contractvm.GasParams{
		MinGasPrice:       minGasPrice,
		HardBlockGasLimit: hardLimit,
		SoftBlockGasLimit: softLimit,
		TxGasLimit:        txLimit,
	}
}

// CreateNewBlock implements the ten-step template-builder routine of
// spec.md §4.5: assemble a fresh block template paying scriptPubKeyIn,
// optionally admitting witness transactions, atop the chain's current tip.
func (g *BlkTmplGenerator) CreateNewBlock(scriptPubKeyIn sbtcutil.Address, fMineWitnessTx bool) (*BlockTemplate, error) {
	resources := newResourceAccountant(g.policy)
	block := wire.NewMsgBlock(&wire.BlockHeader{})

	// Step 2: chain-before-mempool lock ordering is the caller's
	// responsibility per spec.md §5 — the collaborators passed to
	// NewBlkTmplGenerator are assumed already acquired for the duration
	// of this call.
	tip := g.chain.Tip()
	height := tip.Height() + 1
	// STANDARD_LOCKTIME_VERIFY_FLAGS always includes BIP113 under current
	// policy, so the cutoff is simply the median time past rather than
	// the header's own timestamp.
	lockTimeCutoff := g.chain.MedianTimePast(tip)

	fIncludeWitness := g.chain.IsWitnessEnabled(tip) && fMineWitnessTx

	g.gasParams = g.resolveGasParams(height)

	// Step 4: placeholder coinbase, value corrected once fees are known.
	coinbaseTx, err := CreateCoinbaseTx(0, height, scriptPubKeyIn)
	if err != nil {
		return nil, err
	}
	block.AddTransaction(coinbaseTx.MsgTx())
	fees := []int64{0}
	sigOpCosts := []int64{legacySigOpCost(coinbaseTx.MsgTx())}

	s := newSession(g, g.view, resources, block)
	s.height = height
	s.lockTimeCutoff = lockTimeCutoff
	s.includeWitness = fIncludeWitness
	s.fees = fees
	s.sigOpCosts = sigOpCosts
	s.markIncluded(coinbaseTx.MsgTx().TxHash())

	// Step 5: contract fork.
	contractsActive := g.chain.IsContractForkActive(tip.Height())
	var preAssemblySnapshot contractvm.Cursor
	if contractsActive {
		preAssemblySnapshot = g.engine.GetState()
		seedCursor := effectiveCursor(g.chain.Params(), height, preAssemblySnapshot)
		proofTx := buildProofTx(seedCursor)
		s.proofIndex = len(block.Transactions)
		s.proofTx = proofTx
		block.AddTransaction(proofTx)
		s.fees = append(s.fees, 0)
		s.sigOpCosts = append(s.sigOpCosts, legacySigOpCost(proofTx))
		s.markIncluded(proofTx.TxHash())
	}

	// Step 6: run selection.
	if err := s.run(); err != nil {
		if contractsActive {
			g.engine.UpdateState(preAssemblySnapshot)
		}
		return nil, err
	}

	if contractsActive {
		finalCursor := effectiveCursor(g.chain.Params(), height, g.engine.GetState())
		rebuilt := buildProofTx(finalCursor)
		for _, out := range s.bce.refundOutputs {
			rebuilt.AddTxOut(out)
		}
		block.Transactions[s.proofIndex] = rebuilt
		s.sigOpCosts[s.proofIndex] = legacySigOpCost(rebuilt)
		g.engine.UpdateState(preAssemblySnapshot)
	}

	// Step 7: fee-corrected coinbase value.
	subsidy := g.chain.Params().CalcBlockSubsidy(height)
	block.Transactions[0].TxOut[0].Value = resources.fees + subsidy

	// Step 8: witness commitment.
	witnessCommitment := generateWitnessCommitment(block)

	// Step 9: header.
	block.Header.Version = DefaultBlockVersion
	if g.policy.BlockVersion != 0 {
		block.Header.Version = g.policy.BlockVersion
	}
	block.Header.PrevBlock = tip.Hash()
	adjusted := g.chain.AdjustedTime()
	nTime := lockTimeCutoff.Add(time.Second)
	if adjusted.After(nTime) {
		nTime = adjusted
	}
	block.Header.Timestamp = nTime
	bits, err := g.chain.CalcNextRequiredDifficulty(tip, nTime)
	if err != nil {
		return nil, err
	}
	block.Header.Bits = bits
	block.Header.Nonce = 0
	s.sigOpCosts[0] = legacySigOpCost(block.Transactions[0])
	block.Header.MerkleRoot = wire.CalcMerkleRoot(txHashes(block.Transactions))

	// Step 10: fatal validity check, PoW and Merkle-root disabled.
	if err := g.chain.TestBlockValidity(block, tip, false, false); err != nil {
		return nil, validityFailure(err)
	}

	tpl := &BlockTemplate{
		Block:             block,
		Fees:              s.fees,
		SigOpCosts:        s.sigOpCosts,
		Height:            height,
		WitnessCommitment: witnessCommitment,
	}
	recordTelemetry(tpl)
	return tpl, nil
}
