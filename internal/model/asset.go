package model

import "time"

// AssetID identifies a non-fungible asset. Assigned by the ledger at
// mint time.
type AssetID string

// Asset is the local record for one owned non-fungible unit.
// Each asset belongs to at most one account in the local model; the
// ledger may disagree transiently.
type Asset struct {
	ID       AssetID
	Name     string
	MintedAt time.Time
}
