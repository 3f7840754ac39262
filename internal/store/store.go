// Package store is the persistent record store backing the dashboard.
// It is a single bbolt bucket of string keys mapping to JSON values.
// Every save is a full overwrite of the key's value; there is no
// versioning, merging or conflict detection, so concurrent writers are
// last-write-wins. Reads perform no schema validation — a malformed
// stored value surfaces as a decode error at the call site.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	bolt "go.etcd.io/bbolt"
)

// Storage keys. All dashboard state lives under these four keys.
const (
	KeyAuth        = "shippy_auth"
	KeyProducts    = "shippy_products"
	KeyTeamMembers = "shippy_team_members"
	KeySalary      = "shippy_salary"
)

var (
	bucketName = []byte("shippy")
	json       = jsoniter.ConfigCompatibleWithStandardLibrary
)

// Store wraps the bbolt database file.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if necessary) the store at the given data
// directory. The database file is <dir>/shippy.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	path := filepath.Join(dir, "shippy.db")
	db, err := bolt.Open(path, 0644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.db.Path()
}

// LoadRaw returns the raw bytes stored under key, or found=false when
// the key is absent.
func (s *Store) LoadRaw(key string) ([]byte, bool, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(key))
		if v != nil {
			out = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return out, out != nil, nil
}

// SaveRaw overwrites the value stored under key.
func (s *Store) SaveRaw(key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Has reports whether a key exists.
func (s *Store) Has(key string) (bool, error) {
	_, found, err := s.LoadRaw(key)
	return found, err
}

// Reset drops every stored key, returning the store to its
// never-written state.
func (s *Store) Reset() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketName)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	return nil
}

// Load decodes the JSON value stored under key into out. found is
// false when the key has never been written. Decode errors from
// malformed stored data propagate to the caller unhandled.
func Load[T any](s *Store, key string) (out T, found bool, err error) {
	raw, found, err := s.LoadRaw(key)
	if err != nil || !found {
		return out, found, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, true, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return out, true, nil
}

// Save encodes value as JSON and overwrites the key wholesale.
func Save[T any](s *Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return s.SaveRaw(key, raw)
}

// LoadOrSeed reads the value under key, writing and returning seed
// when the key is absent (read-through seeding of defaults).
func LoadOrSeed[T any](s *Store, key string, seed T) (T, error) {
	out, found, err := Load[T](s, key)
	if err != nil {
		return out, err
	}
	if found {
		return out, nil
	}
	if err := Save(s, key, seed); err != nil {
		return seed, err
	}
	return seed, nil
}
