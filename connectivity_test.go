package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/pmezard/uf/disjoint"
)

func earliestFromLog(t *testing.T, members int, data string) (int64, bool, error) {
	t.Helper()
	r := NewLogReader(strings.NewReader(data))
	return EarliestAllConnected(members, r.ForEach)
}

func TestEarliestAllConnected(t *testing.T) {
	data := `
100 0 1
200 2 3
300 1 0
400 1 2
500 3 4
600 0 4
`
	ts, ok, err := earliestFromLog(t, 5, data)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || ts != 500 {
		t.Fatalf("unexpected result: %d, %t", ts, ok)
	}

	ts, ok, err = earliestFromLog(t, 6, data)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("members should never be connected, got %d", ts)
	}
}

func TestEarliestSingleMember(t *testing.T) {
	ts, ok, err := earliestFromLog(t, 1, "7 0 0\n9 0 0\n")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || ts != 7 {
		t.Fatalf("unexpected result: %d, %t", ts, ok)
	}
	_, ok, err = earliestFromLog(t, 1, "")
	if err != nil || ok {
		t.Fatalf("empty log should never connect: %t, %v", ok, err)
	}
}

func TestEarliestUnknownMember(t *testing.T) {
	_, _, err := earliestFromLog(t, 3, "1 0 1\n2 1 3\n")
	if !errors.Is(err, disjoint.ErrIndexOutOfBounds) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestConnectivityGroups(t *testing.T) {
	c := NewConnectivity(4)
	for i, f := range []Friendship{{1, 0, 1}, {2, 1, 0}, {3, 2, 3}} {
		f := f
		done, err := c.Add(&f)
		if err != nil {
			t.Fatal(err)
		}
		if done {
			t.Fatalf("connected too early at %d", i)
		}
	}
	if c.Groups() != 2 {
		t.Fatalf("unexpected groups: %d", c.Groups())
	}
}
