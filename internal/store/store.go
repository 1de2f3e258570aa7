package store

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mock/store.go -package=mock . Store,TableManager

var (
	// ErrNotFound is returned by GetSpice when no record exists for the key.
	ErrNotFound = errors.New("spice record not found")
	// ErrUnavailable wraps any backend communication fault.
	ErrUnavailable = errors.New("spice store unavailable")
)

// Store keeps one SpiceRecord per (owner, spice name) pair.
type Store interface {
	GetSpice(ctx context.Context, ownerID, spiceName string) (*SpiceRecord, error)
	// PutSpice overwrites any existing record for the same key.
	PutSpice(ctx context.Context, rec SpiceRecord) error
}

// TableManager prepares the backing collection before traffic is served.
type TableManager interface {
	EnsureTable(ctx context.Context) error
}

type SpiceRecord struct {
	OwnerID   string `dynamodbav:"ownerId" json:"ownerId"`
	SpiceName string `dynamodbav:"spiceName" json:"spiceName"`
	Location  string `dynamodbav:"location" json:"location"`
	Row       string `dynamodbav:"row" json:"row"`
	Column    string `dynamodbav:"column" json:"column"`
}
