// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainhash

// HashMerkleBranches computes the parent of two sibling nodes in a Merkle
// tree: double-SHA256 of their concatenation, the same pairing
// wire.CalcMerkleRoot folds inline when it only needs the root.
func HashMerkleBranches(left, right *Hash) *Hash {
	var buf [HashSize * 2]byte
	copy(buf[:HashSize], left[:])
	copy(buf[HashSize:], right[:])
	h := DoubleHashH(buf[:])
	return &h
}

// buildMerkleTree returns every level of the classic Bitcoin Merkle tree
// for txHashes, flattened bottom (leaves) to top (root). A level with an
// odd number of nodes duplicates its final node before pairing, matching
// the original Satoshi BuildMerkleTree/GetMerkleBranch construction.
func buildMerkleTree(txHashes []Hash) []Hash {
	tree := make([]Hash, len(txHashes), len(txHashes)*2)
	copy(tree, txHashes)

	j := 0
	for size := len(txHashes); size > 1; size = (size + 1) / 2 {
		for i := 0; i < size; i += 2 {
			i2 := i + 1
			if i2 >= size {
				i2 = size - 1
			}
			tree = append(tree, *HashMerkleBranches(&tree[j+i], &tree[j+i2]))
		}
		j += size
	}
	return tree
}

// MerkleTreeRoot returns the Merkle root of txHashes, or the zero Hash for
// an empty input.
func MerkleTreeRoot(txHashes []Hash) Hash {
	if len(txHashes) == 0 {
		return Hash{}
	}
	tree := buildMerkleTree(txHashes)
	return tree[len(tree)-1]
}

// BuildMerkleTreeProof returns the audit path proving txHashes[0]'s
// membership in MerkleTreeRoot(txHashes): the sibling hash needed at every
// level on the way up from the leaf, the way an SPV client verifies a
// transaction was included in a block without downloading the whole thing.
func BuildMerkleTreeProof(txHashes []Hash) []Hash {
	if len(txHashes) <= 1 {
		return []Hash{}
	}
	tree := buildMerkleTree(txHashes)

	branch := make([]Hash, 0, len(tree))
	index, j := 0, 0
	for size := len(txHashes); size > 1; size = (size + 1) / 2 {
		sibling := index ^ 1
		if sibling >= size {
			sibling = size - 1
		}
		branch = append(branch, tree[j+sibling])
		index >>= 1
		j += size
	}
	return branch
}

// ValidateMerkleTreeProof reports whether leaf, combined with proof walked
// bottom to top via HashMerkleBranches, reproduces root.
func ValidateMerkleTreeProof(leaf Hash, proof []Hash, root Hash) bool {
	current := leaf
	for _, sibling := range proof {
		current = *HashMerkleBranches(&current, &sibling)
	}
	return current == root
}
