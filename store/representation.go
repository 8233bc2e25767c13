package store

import "lattice.dev/ledger/primitives"

// PutWeight writes the aggregate balance delegated to rep.
func (t *Tx) PutWeight(rep primitives.Address, weight primitives.Uint256) error {
	key := rep.Bytes()
	val := weight.Bytes()
	return t.bucket(bucketRepresentation).Put(key[:], val[:])
}

// GetWeight reads the aggregate balance delegated to rep, or zero if
// rep has never been delegated to.
func (t *Tx) GetWeight(rep primitives.Address) (primitives.Uint256, error) {
	key := rep.Bytes()
	v := t.bucket(bucketRepresentation).Get(key[:])
	if v == nil {
		return primitives.Uint256{}, nil
	}
	return primitives.Uint256FromBytes(v)
}

// DelWeight removes rep's representation-table row entirely (used
// when its weight drops back to zero).
func (t *Tx) DelWeight(rep primitives.Address) error {
	key := rep.Bytes()
	return t.bucket(bucketRepresentation).Delete(key[:])
}

// AddWeight adds delta (which may be produced via Sub for a
// subtraction) to rep's current weight and persists the result.
func (t *Tx) AddWeight(rep primitives.Address, delta primitives.Uint256) error {
	cur, err := t.GetWeight(rep)
	if err != nil {
		return err
	}
	next := cur.Add(delta)
	if next.IsZero() {
		return t.DelWeight(rep)
	}
	return t.PutWeight(rep, next)
}

// SubWeight subtracts delta from rep's current weight and persists
// the result.
func (t *Tx) SubWeight(rep primitives.Address, delta primitives.Uint256) error {
	cur, err := t.GetWeight(rep)
	if err != nil {
		return err
	}
	next := cur.Sub(delta)
	if next.IsZero() {
		return t.DelWeight(rep)
	}
	return t.PutWeight(rep, next)
}
