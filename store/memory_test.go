package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Get(ctx, "tx_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.Set(ctx, "tx_1", []byte(`{"id":"tx_1"}`)))
	value, err := m.Get(ctx, "tx_1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"tx_1"}`), value)
}

func TestMemoryDelete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "tx_1", []byte("{}")))
	require.NoError(t, m.Delete(ctx, "tx_1"))

	_, err := m.Get(ctx, "tx_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryListByPrefix(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "tx_2", []byte("{}")))
	require.NoError(t, m.Set(ctx, "tx_1", []byte("{}")))
	require.NoError(t, m.Set(ctx, "cust_1", []byte("{}")))

	keys, err := m.List(ctx, PrefixTransaction)
	require.NoError(t, err)
	assert.Equal(t, []string{"tx_1", "tx_2"}, keys)
}

func TestMemoryUpdateCommitsOnSuccess(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	err := m.Update(ctx, func(tx Tx) error {
		if err := tx.Set("tx_1", []byte("a")); err != nil {
			return err
		}
		return tx.Set("cust_1", []byte("b"))
	})
	require.NoError(t, err)

	value, err := m.Get(ctx, "cust_1")
	require.NoError(t, err)
	assert.Equal(t, []byte("b"), value)
}

func TestMemoryUpdateDiscardsOnError(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	boom := errors.New("boom")

	err := m.Update(ctx, func(tx Tx) error {
		if err := tx.Set("tx_1", []byte("a")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = m.Get(ctx, "tx_1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUpdateReadsOwnWrites(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "cust_1", []byte("old")))

	err := m.Update(ctx, func(tx Tx) error {
		if err := tx.Set("cust_1", []byte("new")); err != nil {
			return err
		}
		value, err := tx.Get("cust_1")
		if err != nil {
			return err
		}
		assert.Equal(t, []byte("new"), value)
		return nil
	})
	require.NoError(t, err)
}
