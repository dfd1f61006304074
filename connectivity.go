package main

import (
	"fmt"

	"github.com/pmezard/uf/disjoint"
)

// Connectivity tracks which members of a social network are friends of
// friends, one friendship at a time.
type Connectivity struct {
	set *disjoint.DisjointSet
}

func NewConnectivity(members int) *Connectivity {
	return &Connectivity{
		set: disjoint.New(members),
	}
}

// Add records a friendship and returns true if all members are connected
// afterwards.
func (c *Connectivity) Add(f *Friendship) (bool, error) {
	_, err := c.set.Union(f.First, f.Second)
	if err != nil {
		return false, fmt.Errorf("friendship at %d: %w", f.Timestamp, err)
	}
	return c.set.Count() == 1, nil
}

// Groups returns the number of groups of connected members.
func (c *Connectivity) Groups() int {
	return c.set.Count()
}

// EarliestAllConnected replays friendships by increasing timestamp and
// returns the timestamp of the first one after which every member is
// connected. It returns false if the log never connects everybody.
func EarliestAllConnected(members int,
	walk func(fn func(f *Friendship) error) error) (int64, bool, error) {

	c := NewConnectivity(members)
	ts := int64(0)
	found := false
	err := walk(func(f *Friendship) error {
		done, err := c.Add(f)
		if err != nil {
			return err
		}
		if done {
			ts = f.Timestamp
			found = true
			return ErrStop
		}
		return nil
	})
	if err == ErrStop {
		err = nil
	}
	if err != nil {
		return 0, false, err
	}
	return ts, found, nil
}
