// Package localstore is the durable key/value space a shopper's client state
// lives in, the server-side counterpart of a browser's local storage.
package localstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("localstore: key not found")

type Storage interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
}

// Namespace scopes every key of s under prefix, so that one backing store can
// hold the state of many shoppers without collisions.
func Namespace(s Storage, prefix string) Storage {
	return &namespaced{inner: s, prefix: prefix + ":"}
}

type namespaced struct {
	inner  Storage
	prefix string
}

func (n *namespaced) GetItem(ctx context.Context, key string) ([]byte, error) {
	return n.inner.GetItem(ctx, n.prefix+key)
}

func (n *namespaced) SetItem(ctx context.Context, key string, value []byte) error {
	return n.inner.SetItem(ctx, n.prefix+key, value)
}

func (n *namespaced) RemoveItem(ctx context.Context, key string) error {
	return n.inner.RemoveItem(ctx, n.prefix+key)
}
