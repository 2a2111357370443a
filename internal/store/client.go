package store

import (
	"context"
	"errors"
)

// Client is the contract against the remote collection store. Collections
// are flat sets of keyed records; nested sub-collections are addressed by
// slash-separated paths (users/<id>/notifications/<reportId>).
type Client interface {
	// Subscribe opens a live snapshot stream on a collection. Every change
	// to the collection produces a fresh full snapshot; within one
	// subscription snapshots arrive in emit order. A stream fault is fatal
	// to the subscription and is reported once on Errs.
	Subscribe(ctx context.Context, collection string, filter *Filter) (Subscription, error)
	// Query reads a one-off snapshot of a collection.
	Query(ctx context.Context, collection string, filter *Filter) (Snapshot, error)
	// Mutate merges fields into an existing record.
	Mutate(ctx context.Context, path string, fields map[string]string) error
	// Write replaces or creates the record at an exact path.
	Write(ctx context.Context, path string, fields map[string]string) error
	// Push creates a record under a collection with a store-assigned key.
	Push(ctx context.Context, collection string, fields map[string]string) (string, error)
	Close() error
}

// Subscription is one live snapshot stream. Snapshots is closed after a
// fatal stream error or after Close; Errs carries at most one error.
type Subscription interface {
	Snapshots() <-chan Snapshot
	Errs() <-chan error
	Close()
}

// Filter restricts a subscription or query to records whose field equals a
// value, mirroring the remote store's orderBy/equalTo pair.
type Filter struct {
	Field string
	Equal string
}

type Record struct {
	Key    string
	Fields map[string]string
}

// Snapshot is a point-in-time read of a collection, ordered the way the
// store emits it (insertion order).
type Snapshot struct {
	Records []Record
}

func (s Snapshot) Size() int { return len(s.Records) }

var (
	// ErrPermission marks a mutation rejected by the store's access
	// control layer.
	ErrPermission = errors.New("permission denied by remote store")
	// ErrConnectivity marks a subscription setup or stream failure.
	ErrConnectivity = errors.New("remote store unreachable")
)
