package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/pmezard/uf/disjoint"
)

func TestDemo(t *testing.T) {
	buf := &bytes.Buffer{}
	err := runDemo(buf)
	if err != nil {
		t.Fatal(err)
	}
	want := `Created UF of size 10
(0,3,5) (1) (2) (4,6,7,8) (9)
3 & 5 connected? true
3 & 6 connected? false
`
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestUnion(t *testing.T) {
	buf := &bytes.Buffer{}
	err := runUnion(buf, zap.NewNop(), 6, []string{"0,1", "2, 3", "1,3"},
		[]string{"0,2", "4,5"})
	if err != nil {
		t.Fatal(err)
	}
	want := `(0,1,2,3) (4) (5)
0 & 2 connected? true
4 & 5 connected? false
`
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestUnionErrors(t *testing.T) {
	lg := zap.NewNop()
	buf := &bytes.Buffer{}
	if err := runUnion(buf, lg, 3, []string{"0-1"}, nil); err == nil {
		t.Fatal("expected pair error")
	}
	err := runUnion(buf, lg, 3, []string{"0,3"}, nil)
	if !errors.Is(err, disjoint.ErrIndexOutOfBounds) {
		t.Fatalf("unexpected error: %v", err)
	}
	err = runUnion(buf, lg, 0, nil, []string{"0,0"})
	if !errors.Is(err, disjoint.ErrIndexOutOfBounds) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func writeLog(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, "friends.log")
	err := os.WriteFile(path, []byte(data), 0666)
	if err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIndexAndEarliest(t *testing.T) {
	dir := t.TempDir()
	logPath := writeLog(t, dir, `# out of order on purpose
40 2 3
10 0 1
30 1 2
20 0 1
`)
	dbPath := filepath.Join(dir, "friends.db")
	n, err := indexFriends(zap.NewNop(), logPath, dbPath, -1)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("unexpected count: %d", n)
	}
	ts, ok, err := findEarliest(dbPath, -1)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || ts != 40 {
		t.Fatalf("unexpected result: %d, %t", ts, ok)
	}

	// A larger network is never fully connected
	_, ok, err = findEarliest(dbPath, 5)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("5 members should never be connected")
	}

	// Indexing again replaces the previous DB
	logPath = writeLog(t, dir, "5 0 1\n")
	_, err = indexFriends(zap.NewNop(), logPath, dbPath, 2)
	if err != nil {
		t.Fatal(err)
	}
	ts, ok, err = findEarliest(dbPath, -1)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || ts != 5 {
		t.Fatalf("unexpected result: %d, %t", ts, ok)
	}
}

func TestIndexMemberCount(t *testing.T) {
	dir := t.TempDir()
	logPath := writeLog(t, dir, "1 0 4\n")
	_, err := indexFriends(zap.NewNop(), logPath, filepath.Join(dir, "friends.db"), 3)
	if err == nil {
		t.Fatal("expected member count error")
	}
}
