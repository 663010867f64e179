// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import (
	"github.com/pkg/errors"

	"github.com/sbtc-core/sbtcd/node/mempool"
)

// ErrContractRefused is returned by admitContract for every rejection path
// — engine refusal, gas saturation, or a final resource-budget miss — so
// the caller's single error check routes uniformly to the package-failure
// handling spec.md §4.3 step 9 describes. It never escapes CreateNewBlock.
var ErrContractRefused = errors.New("contract admission refused")

// admitContract implements the eight-step protocol of spec.md §4.4: decide
// whether executing entry's contract call fits the remaining gas and
// resource budgets, committing its side effects to the engine, the block,
// and bceResult only on success, and restoring the engine's roots
// unconditionally on failure.
func (g *BlkTmplGenerator) admitContract(s *session, entry *mempool.TxEntry) error {
	engine := g.engine
	snapshot := engine.GetState()

	localWeight := s.resources.blockWeight + entry.Weight
	localSigOps := s.resources.blockSigOpsCost + entry.SigOpCost

	result, err := engine.RunContractTx(entry.Tx.MsgTx(), g.gasParams, s.bce.usedGas)
	if err != nil {
		engine.UpdateState(snapshot)
		return ErrContractRefused
	}

	if s.bce.usedGas+result.UsedGas > g.gasParams.SoftBlockGasLimit {
		engine.UpdateState(snapshot)
		return ErrContractRefused
	}

	for _, vt := range result.ValueTransfers {
		localWeight += vt.Weight()
		localSigOps += legacySigOpCost(vt)
	}

	newProofTx := s.proofTx.Copy()
	for _, out := range result.RefundOutputs {
		newProofTx.AddTxOut(out)
	}
	oldProofSigOps := legacySigOpCost(s.proofTx)
	newProofSigOps := legacySigOpCost(newProofTx)
	localSigOps = localSigOps - oldProofSigOps + newProofSigOps

	if !s.resources.finalFits(localWeight, localSigOps) {
		engine.UpdateState(snapshot)
		return ErrContractRefused
	}

	var refundSum int64
	for _, out := range result.RefundOutputs {
		refundSum += out.Value
	}

	s.bce.fold(result.UsedGas, result.RefundSender, result.RefundOutputs, result.ValueTransfers)

	s.block.AddTransaction(entry.Tx.MsgTx())
	s.fees = append(s.fees, entry.Fee-refundSum)
	s.sigOpCosts = append(s.sigOpCosts, entry.SigOpCost)
	for _, vt := range result.ValueTransfers {
		s.addRawTx(vt, legacySigOpCost(vt))
	}

	s.resources.blockWeight = localWeight
	s.resources.blockSigOpsCost = localSigOps
	s.resources.blockTxCount += int64(1 + len(result.ValueTransfers))
	s.resources.fees += entry.Fee - refundSum

	s.markIncluded(entry.Handle())

	s.block.Transactions[s.proofIndex] = newProofTx
	s.proofTx = newProofTx
	s.sigOpCosts[s.proofIndex] = newProofSigOps

	return nil
}
