package checkpoint

import (
	"bytes"

	"github.com/gdbu/atoms"
	"github.com/hatchify/errors"
	"github.com/mojura/enkodo"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	// ErrNotFound is returned when a checkpoint is not available for the given name
	ErrNotFound = errors.Error("checkpoint was not found")
	// ErrEmptyName is returned when a checkpoint name is empty
	ErrEmptyName = errors.Error("invalid checkpoint name, cannot be empty")
)

var keyPrefix = []byte("checkpoints::")

// Open will open (or create) a checkpoint store within the provided directory
func Open(dir string) (sp *Store, err error) {
	var db *leveldb.DB
	if db, err = leveldb.OpenFile(dir, nil); err != nil {
		return
	}

	return newStore(db), nil
}

// OpenMemory will open a checkpoint store which does not persist
func OpenMemory() (sp *Store, err error) {
	var db *leveldb.DB
	if db, err = leveldb.Open(storage.NewMemStorage(), nil); err != nil {
		return
	}

	return newStore(db), nil
}

func newStore(db *leveldb.DB) *Store {
	var s Store
	s.db = db
	return &s
}

// Store manages named checkpoints
type Store struct {
	db *leveldb.DB

	// Closed state
	closed atoms.Bool
}

// Save will set the checkpoint for a given name
func (s *Store) Save(name string, c Checkpoint) (err error) {
	if len(name) == 0 {
		return ErrEmptyName
	}

	buf := bytes.NewBuffer(nil)
	if err = enkodo.NewWriter(buf).Encode(&c); err != nil {
		return
	}

	return s.db.Put(getKey(name), buf.Bytes(), nil)
}

// Load will retrieve the checkpoint for a given name
func (s *Store) Load(name string) (c Checkpoint, err error) {
	var bs []byte
	if bs, err = s.db.Get(getKey(name), nil); err == leveldb.ErrNotFound {
		err = ErrNotFound
		return
	} else if err != nil {
		return
	}

	err = decode(bs, &c)
	return
}

// Delete will remove the checkpoint for a given name
func (s *Store) Delete(name string) (err error) {
	return s.db.Delete(getKey(name), nil)
}

// ForEach will iterate through each of the checkpoints
func (s *Store) ForEach(fn func(name string, c Checkpoint) error) (err error) {
	iter := s.db.NewIterator(util.BytesPrefix(keyPrefix), nil)
	defer iter.Release()

	for iter.Next() {
		var c Checkpoint
		if err = decode(iter.Value(), &c); err != nil {
			return
		}

		name := string(iter.Key()[len(keyPrefix):])
		if err = fn(name, c); err != nil {
			return
		}
	}

	return iter.Error()
}

// Close will close the store
func (s *Store) Close() (err error) {
	if !s.closed.Set(true) {
		return errors.ErrIsClosed
	}

	return s.db.Close()
}

func decode(bs []byte, c *Checkpoint) (err error) {
	return enkodo.NewReader(bytes.NewReader(bs)).Decode(c)
}

func getKey(name string) (key []byte) {
	key = make([]byte, 0, len(keyPrefix)+len(name))
	key = append(key, keyPrefix...)
	key = append(key, name...)
	return
}
