// Package model defines data structures for the documents returned by the
// Web3.Storage HTTP API: upload records, per-CID status, pin placements on
// the IPFS network, and Filecoin storage deals. The structs mirror the
// service's JSON verbatim; no local validation or transformation is applied.
package model

import "time"

// Upload describes one entry of the account's upload listing.
type Upload struct {
	// CID is the content identifier assigned by the service. It is treated
	// as an opaque key throughout the SDK.
	CID string `json:"cid"`
	// Name is the optional display name supplied at upload time.
	Name string `json:"name,omitempty"`
	// Type is the upload kind as reported by the service (e.g. "Car",
	// "Upload", "Multipart").
	Type string `json:"type,omitempty"`
	// DagSize is the total size in bytes of the stored DAG.
	DagSize int64 `json:"dagSize"`
	// Created is the creation timestamp of the upload.
	Created time.Time `json:"created"`
	// Pins lists IPFS peers currently pinning the content.
	Pins []Pin `json:"pins,omitempty"`
	// Deals lists Filecoin storage deals covering the content.
	Deals []Deal `json:"deals,omitempty"`
}

// Status describes the storage state of a single CID, as returned by the
// status endpoint. It carries the same network placement details as Upload
// but is keyed by CID rather than scoped to the account listing.
type Status struct {
	CID     string    `json:"cid"`
	DagSize int64     `json:"dagSize"`
	Created time.Time `json:"created"`
	Pins    []Pin     `json:"pins,omitempty"`
	Deals   []Deal    `json:"deals,omitempty"`
}

// Pin identifies an IPFS peer holding a copy of the content.
type Pin struct {
	PeerID   string    `json:"peerId"`
	PeerName string    `json:"peerName,omitempty"`
	Region   string    `json:"region,omitempty"`
	Status   string    `json:"status"`
	Updated  time.Time `json:"updated"`
}

// Deal describes a Filecoin storage deal accepted for the content.
type Deal struct {
	DealID            uint64    `json:"dealId,omitempty"`
	StorageProvider   string    `json:"storageProvider,omitempty"`
	Status            string    `json:"status"`
	PieceCID          string    `json:"pieceCid,omitempty"`
	DataCID           string    `json:"dataCid,omitempty"`
	DataModelSelector string    `json:"dataModelSelector,omitempty"`
	Activation        time.Time `json:"activation,omitempty"`
	Created           time.Time `json:"created,omitempty"`
	Updated           time.Time `json:"updated,omitempty"`
}

// PinStatus values reported by the service.
const (
	PinStatusPinned    = "Pinned"
	PinStatusPinning   = "Pinning"
	PinStatusPinQueued = "PinQueued"
)

// Deal status values reported by the service.
const (
	DealStatusQueued    = "Queued"
	DealStatusPublished = "Published"
	DealStatusActive    = "Active"
)
