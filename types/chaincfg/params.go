// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"
)

// DefinedDeployments houses the number of currently defined consensus
// deployments, used to size the fixed Deployments array on Params.
const DefinedDeployments = 2

// DeploymentError describes an error in using the Params.Deployments array.
type DeploymentError uint32

func (e DeploymentError) Error() string {
	return "deployment ID does not correspond to a recognized deployment"
}

// DeploymentID is an identifier for a consensus deployment.
type DeploymentID int

const (
	// DeploymentSegwit defines the rule change deployment ID for the
	// witness/weight serialization rules the resource accountant scales
	// non-witness bytes by (spec.md §4.1's 3*base+total formula).
	DeploymentSegwit DeploymentID = iota

	// DeploymentContracts defines the rule change deployment ID for the
	// contract admission sub-protocol (spec.md §4.4). Activation itself is
	// read from Params.SBTCContractForkHeight, not from this entry; before
	// it, admitContract is never invoked and a package containing a
	// contract-call entry is refused.
	DeploymentContracts
)

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  Threshold states are generally irrelevant to
// this repository since it only reads activation height, not BIP9
// versionbits state; the struct still carries the familiar shape so the
// activation data can be lifted wholesale from a real chain's parameters.
type ConsensusDeployment struct {
	BitNumber  uint8
	StartTime  uint64
	ExpireTime uint64
}

// PowParams houses the proof-of-work related parameters of a chain.
type PowParams struct {
	PowLimit                 *big.Int
	PowLimitBits             uint32
	TargetTimespan           time.Duration
	TargetTimePerBlock       time.Duration
	RetargetAdjustmentFactor int64
	ReduceMinDifficulty      bool
	MinDiffReductionTime     time.Duration
}

// Params defines a bitcoin-family network by its parameters, trimmed from
// the teacher's dual beacon/shard chaincfg.Params to the single classic
// chain the assembler targets: no shard ID, no DNS seeds, no checkpoints
// (collaborator concerns belong to node/chainview, not to the assembler).
type Params struct {
	Name string

	PowParams PowParams

	// SubsidyHalvingInterval is the number of blocks between subsidy
	// halving events, following miner.cpp's GetBlockSubsidy.
	SubsidyHalvingInterval int32

	// CoinbaseMaturity is the number of blocks required before newly
	// generated coins via the coinbase transaction can be spent.
	CoinbaseMaturity uint16

	// Deployments defines the specific consensus rule changes tracked
	// for this chain, indexed by DeploymentID.
	Deployments [DefinedDeployments]ConsensusDeployment

	// SBTCContractForkHeight is the height at which the contract
	// admission sub-protocol (spec.md §4.4) activates. While the tip is
	// below this height, CreateNewBlock builds no proof transaction and
	// refuses contract-call entries.
	SBTCContractForkHeight int32
}

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name: "mainnet",

	PowParams: PowParams{
		PowLimit:                 new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 224), big.NewInt(1)),
		PowLimitBits:             0x1d00ffff,
		TargetTimespan:           time.Hour * 24 * 14,
		TargetTimePerBlock:       time.Minute * 10,
		RetargetAdjustmentFactor: 4,
	},

	SubsidyHalvingInterval: 210000,
	CoinbaseMaturity:       100,
	SBTCContractForkHeight: 700000,
}

// RegressionNetParams defines the network parameters for the regression
// test network, used by node/mining's tests to exercise the assembler
// without real chain history.
var RegressionNetParams = Params{
	Name: "regtest",

	PowParams: PowParams{
		PowLimit:                 new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1)),
		PowLimitBits:             0x207fffff,
		TargetTimespan:           time.Hour * 24 * 14,
		TargetTimePerBlock:       time.Minute * 10,
		RetargetAdjustmentFactor: 4,
		ReduceMinDifficulty:      true,
		MinDiffReductionTime:     time.Minute * 20,
	},

	SubsidyHalvingInterval: 150,
	CoinbaseMaturity:       100,
	SBTCContractForkHeight: 0,
}
