package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrNotFound is returned when no document exists under the requested key.
var ErrNotFound = errors.New("store: key not found")

// Key conventions of the document namespace.
const (
	PrefixTransaction = "tx_"
	PrefixCustomer    = "cust_"
	PrefixReminder    = "reminder_"
	KeyStaff          = "config_staff"
	KeyMemberships    = "config_memberships"
)

// Tx exposes document reads and writes inside a single transaction.
type Tx interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// Documents is a whole-record keyed document store. Set overwrites the
// full document under its key; callers read-modify-write entire objects.
type Documents interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)

	// Update runs fn against a transactional view; either every write in
	// fn commits or none do.
	Update(ctx context.Context, fn func(Tx) error) error
}

// GetJSON reads and unmarshals the document at key into v.
func GetJSON(ctx context.Context, docs Documents, key string, v interface{}) error {
	raw, err := docs.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// SetJSON marshals v and stores it under key.
func SetJSON(ctx context.Context, docs Documents, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return docs.Set(ctx, key, raw)
}
