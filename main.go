package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alecthomas/kingpin"
	"go.uber.org/zap"

	"github.com/pmezard/uf/disjoint"
)

var (
	app      = kingpin.New("uf", "weighted union-find playground")
	appDebug = app.Flag("debug", "enable debug logging").Bool()
)

func newLogger(debug bool) (*zap.Logger, error) {
	lcfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(zap.InfoLevel),
		Development:       false,
		DisableStacktrace: true,
		Encoding:          "console",
		EncoderConfig:     zap.NewDevelopmentEncoderConfig(),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}
	if debug {
		lcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return lcfg.Build()
}

// printQuery writes connectivity queries the way the demo does.
func printQuery(w io.Writer, d *disjoint.DisjointSet, p, q int) error {
	ok, err := d.Connected(p, q)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d & %d connected? %t\n", p, q, ok)
	return err
}

var (
	demoCmd = app.Command("demo", "run the 10 elements union-find demo")
)

func runDemo(w io.Writer) error {
	d := disjoint.New(10)
	fmt.Fprintf(w, "Created UF of size %d\n", d.Len())
	for _, p := range [][2]int{{0, 3}, {0, 5}, {4, 8}, {4, 6}, {4, 7}} {
		_, err := d.Union(p[0], p[1])
		if err != nil {
			return err
		}
	}
	err := d.Print(w)
	if err != nil {
		return err
	}
	err = printQuery(w, d, 3, 5)
	if err != nil {
		return err
	}
	return printQuery(w, d, 3, 6)
}

func demoFn() error {
	return runDemo(os.Stdout)
}

func parsePair(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid pair, expected p,q: %q", s)
	}
	p, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pair element: %q", s)
	}
	q, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid pair element: %q", s)
	}
	return p, q, nil
}

var (
	unionCmd     = app.Command("union", "merge pairs and print the resulting groups")
	unionSize    = unionCmd.Arg("size", "number of elements").Required().Int()
	unionPairs   = unionCmd.Arg("pairs", "p,q pairs to merge").Strings()
	unionQueries = unionCmd.Flag("query", "p,q pair to test for connectivity").
			Strings()
)

func runUnion(w io.Writer, lg *zap.Logger, size int, pairs, queries []string) error {
	d := disjoint.New(size)
	for _, s := range pairs {
		p, q, err := parsePair(s)
		if err != nil {
			return err
		}
		merged, err := d.Union(p, q)
		if err != nil {
			return fmt.Errorf("cannot merge %s: %w", s, err)
		}
		lg.Debug("union", zap.Int("p", p), zap.Int("q", q),
			zap.Bool("merged", merged), zap.Int("groups", d.Count()))
	}
	err := d.Print(w)
	if err != nil {
		return err
	}
	for _, s := range queries {
		p, q, err := parsePair(s)
		if err != nil {
			return err
		}
		err = printQuery(w, d, p, q)
		if err != nil {
			return fmt.Errorf("cannot query %s: %w", s, err)
		}
	}
	return nil
}

func unionFn(lg *zap.Logger) error {
	return runUnion(os.Stdout, lg, *unionSize, *unionPairs, *unionQueries)
}

var (
	indexCmd     = app.Command("index", "index a friendship log in k/v store")
	indexLog     = indexCmd.Arg("logPath", "friendship log path").Required().String()
	indexDb      = indexCmd.Arg("dbPath", "output DB path").Required().String()
	indexMembers = indexCmd.Flag("members",
		"member count, defaults to the highest member id plus one").Default("-1").Int()
)

func indexFriends(lg *zap.Logger, logPath, dbPath string, members int) (int, error) {
	r, err := OpenLogReader(logPath)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	if _, err := os.Stat(dbPath); err == nil {
		err = os.Remove(dbPath)
		if err != nil {
			return 0, err
		}
	}
	db, err := OpenFriendsDb(dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	highest := -1
	n, err := db.PutAll(r, func(f *Friendship) {
		if f.First > highest {
			highest = f.First
		}
		if f.Second > highest {
			highest = f.Second
		}
		lg.Debug("indexing", zap.Int64("ts", f.Timestamp),
			zap.Int("first", f.First), zap.Int("second", f.Second))
	})
	if err != nil {
		return 0, err
	}
	if members < 0 {
		members = highest + 1
	} else if highest >= members {
		return 0, fmt.Errorf("member id %d exceeds member count %d", highest, members)
	}
	err = db.SetMembers(members)
	if err != nil {
		return 0, err
	}
	lg.Info("indexed", zap.Int("friendships", n), zap.Int("members", members))
	return n, nil
}

func indexFn(lg *zap.Logger) error {
	start := time.Now()
	n, err := indexFriends(lg, *indexLog, *indexDb, *indexMembers)
	if err != nil {
		return err
	}
	fmt.Printf("written: %d in %s\n", n, time.Since(start))
	return nil
}

var (
	earliestCmd     = app.Command("earliest", "find when all members became connected")
	earliestDb      = earliestCmd.Arg("dbPath", "friendship DB path").Required().String()
	earliestMembers = earliestCmd.Flag("members", "override stored member count").
			Default("-1").Int()
)

func findEarliest(dbPath string, members int) (int64, bool, error) {
	db, err := OpenFriendsDb(dbPath)
	if err != nil {
		return 0, false, err
	}
	defer db.Close()
	if members < 0 {
		n, ok, err := db.Members()
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, fmt.Errorf("no member count in %s, use --members", dbPath)
		}
		members = n
	}
	return EarliestAllConnected(members, db.ForEach)
}

func earliestFn(lg *zap.Logger) error {
	ts, ok, err := findEarliest(*earliestDb, *earliestMembers)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("never connected")
		return nil
	}
	lg.Debug("all connected", zap.Int64("ts", ts))
	fmt.Println(ts)
	return nil
}

func dispatch() error {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	lg, err := newLogger(*appDebug)
	if err != nil {
		return err
	}
	defer lg.Sync()

	switch cmd {
	case demoCmd.FullCommand():
		return demoFn()
	case unionCmd.FullCommand():
		return unionFn(lg)
	case indexCmd.FullCommand():
		return indexFn(lg)
	case earliestCmd.FullCommand():
		return earliestFn(lg)
	}
	return fmt.Errorf("unknown command: %s", cmd)
}

func main() {
	err := dispatch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
