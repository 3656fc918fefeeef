package cache

import (
	"crypto/sha256"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/fine-structures/wln/codec"
	"github.com/fine-structures/wln/fsm"
)

// Store is a badger-backed memoization layer: one key namespace for
// canonicalizer output (keyed by a structural hash of the ring system) and
// one for compiled minimal DFAs (keyed by a hash of their grammar source),
// matching SPEC_FULL.md §10's wiring of badger/v3.
type Store struct {
	db *badger.DB
}

const (
	canonPrefix = "c:"
	dfaPrefix   = "d:"
)

// Open opens or creates a badger store at dir. An empty dir runs badger
// in-memory.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	if dir == "" {
		opts.InMemory = true
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "cache: open badger store")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying badger store.
func (s *Store) Close() error {
	return s.db.Close()
}

// StructuralHash hashes a byte-serialized ring/molecule fingerprint into a
// cache key. Callers build the fingerprint (e.g. a sorted atom/bond
// listing) -- cache only hashes and stores.
func StructuralHash(fingerprint []byte) []byte {
	sum := sha256.Sum256(fingerprint)
	return sum[:]
}

// CanonicalString returns the cached canonical WLN string for hash, or
// calls compute, stores, and returns its result on a miss.
func (s *Store) CanonicalString(hash []byte, compute func() (string, error)) (string, error) {
	key := append([]byte(canonPrefix), hash...)

	var cached string
	var hit bool
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			cached = string(val)
			hit = true
			return nil
		})
	})
	if err != nil {
		return "", errors.Wrap(err, "cache: read canonical string")
	}
	if hit {
		return cached, nil
	}

	result, err := compute()
	if err != nil {
		return "", err
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, []byte(result))
	}); err != nil {
		return "", errors.Wrap(err, "cache: write canonical string")
	}
	return result, nil
}

// CompiledDFA returns the cached minimal DFA for hash, or calls compute,
// stores a varint snapshot, and returns its result on a miss.
func (s *Store) CompiledDFA(hash []byte, compute func() (*fsm.DFA, error)) (*fsm.DFA, error) {
	key := append([]byte(dfaPrefix), hash...)

	var snapshot []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			snapshot = append([]byte{}, val...)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "cache: read compiled DFA")
	}
	if snapshot != nil {
		return decodeDFA(snapshot)
	}

	dfa, err := compute()
	if err != nil {
		return nil, err
	}
	if err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, encodeDFA(dfa))
	}); err != nil {
		return nil, errors.Wrap(err, "cache: write compiled DFA")
	}
	return dfa, nil
}

// SavePPMSession persists a coding session's drifted frequency state under
// key, so a later invocation can resume an adaptive model rather than
// start from uniform frequencies.
func (s *Store) SavePPMSession(key []byte, model *codec.Model) error {
	snapshot := encodePPMFreqs(model.ExportFreqs())
	fullKey := append([]byte("p:"), key...)
	return errors.Wrap(s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(fullKey, snapshot)
	}), "cache: write PPM session")
}

// LoadPPMSession restores a previously saved frequency state into model,
// a no-op if no session was saved under key.
func (s *Store) LoadPPMSession(key []byte, model *codec.Model) error {
	fullKey := append([]byte("p:"), key...)

	var snapshot []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(fullKey)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			snapshot = append([]byte{}, val...)
			return nil
		})
	})
	if err != nil {
		return errors.Wrap(err, "cache: read PPM session")
	}
	if snapshot == nil {
		return nil
	}

	freqs, err := decodePPMFreqs(snapshot)
	if err != nil {
		return err
	}
	model.ImportFreqs(freqs)
	return nil
}
