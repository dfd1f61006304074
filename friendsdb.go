package main

import (
	"encoding/binary"
	"encoding/json"
	"errors"

	"github.com/boltdb/bolt"
)

var (
	friendshipsBucket = []byte("friendships")
	metaBucket        = []byte("meta")
	membersKey        = []byte("members")
)

// ErrStop can be returned by a ForEach callback to end the walk early.
var ErrStop = errors.New("stop iteration")

// FriendsDb stores a friendship log ordered by timestamp. Entries sharing a
// timestamp keep their insertion order.
type FriendsDb struct {
	db *bolt.DB
}

func OpenFriendsDb(path string) (*FriendsDb, error) {
	db, err := bolt.Open(path, 0666, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if db != nil {
			db.Close()
		}
	}()
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{friendshipsBucket, metaBucket} {
			_, err := tx.CreateBucketIfNotExists(name)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	friendsDb := &FriendsDb{
		db: db,
	}
	db = nil
	return friendsDb, nil
}

func (db *FriendsDb) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// Big-endian keys sort like the integers they encode, timestamps are never
// negative.
func makeByteKey(ts int64, seq uint64) []byte {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf, uint64(ts))
	binary.BigEndian.PutUint64(buf[8:], seq)
	return buf
}

func (db *FriendsDb) Put(f *Friendship) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return db.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(friendshipsBucket)
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(makeByteKey(f.Timestamp, seq), data)
	})
}

// PutAll stores every entry returned by r in a single transaction and
// returns how many were written. If not nil, seen is called after each
// entry is stored.
func (db *FriendsDb) PutAll(r *LogReader, seen func(f *Friendship)) (int, error) {
	n := 0
	err := db.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(friendshipsBucket)
		for r.Next() {
			data, err := json.Marshal(r.Entry())
			if err != nil {
				return err
			}
			seq, err := b.NextSequence()
			if err != nil {
				return err
			}
			err = b.Put(makeByteKey(r.Entry().Timestamp, seq), data)
			if err != nil {
				return err
			}
			n++
			if seen != nil {
				seen(r.Entry())
			}
		}
		return r.Err()
	})
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ForEach calls fn on every entry by increasing timestamp. The Friendship
// is reused between calls.
func (db *FriendsDb) ForEach(fn func(f *Friendship) error) error {
	err := db.db.View(func(tx *bolt.Tx) error {
		f := &Friendship{}
		return tx.Bucket(friendshipsBucket).ForEach(func(k, v []byte) error {
			*f = Friendship{}
			err := json.Unmarshal(v, f)
			if err != nil {
				return err
			}
			return fn(f)
		})
	})
	if err == ErrStop {
		err = nil
	}
	return err
}

func (db *FriendsDb) SetMembers(n int) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(n))
	return db.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metaBucket).Put(membersKey, buf)
	})
}

// Members returns the stored member count, or false if none was set.
func (db *FriendsDb) Members() (int, bool, error) {
	n := 0
	found := false
	err := db.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(metaBucket).Get(membersKey)
		if data == nil {
			return nil
		}
		if len(data) != 8 {
			return errors.New("corrupted member count")
		}
		found = true
		n = int(binary.BigEndian.Uint64(data))
		return nil
	})
	return n, found, err
}
