package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// RevocationStore is an opt-in denylist of token ids, backed by Badger.
// Entries carry a TTL matching the remaining token lifetime, so the store
// stays bounded without any sweeper.
type RevocationStore struct {
	db       *badger.DB
	dbPath   string
	isTestDB bool
}

// OpenRevocationStore opens the denylist at path. An empty path creates a
// throwaway store in a temp directory, used by tests.
func OpenRevocationStore(path string) (*RevocationStore, error) {
	isTest := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "simpleblog_revocations_")
		if err != nil {
			return nil, fmt.Errorf("error creating temp dir: %v", err)
		}
		path = tempPath
		isTest = true
	}
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &RevocationStore{
		db:       db,
		dbPath:   path,
		isTestDB: isTest,
	}, nil
}

func (r *RevocationStore) Close() error {
	if err := r.db.Close(); err != nil {
		return err
	}
	if r.isTestDB {
		if err := os.RemoveAll(r.dbPath); err != nil {
			return fmt.Errorf("failed to cleanup test store: %v", err)
		}
	}
	return nil
}

// Revoke denylists a token id for the given duration.
func (r *RevocationStore) Revoke(tokenID string, ttl time.Duration) error {
	return r.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(revocationKey(tokenID), []byte{1}).WithTTL(ttl)
		return txn.SetEntry(entry)
	})
}

// IsRevoked reports whether a token id is currently denylisted.
func (r *RevocationStore) IsRevoked(tokenID string) (bool, error) {
	revoked := false
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(revocationKey(tokenID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		revoked = true
		return nil
	})
	return revoked, err
}

func revocationKey(tokenID string) []byte {
	return []byte("revoked:" + tokenID)
}
