package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/dentiny/MVCC/internal/telemetry"
	"github.com/dentiny/MVCC/pkg/mvcc"
)

// shell holds the REPL's entire mutable state: one Database and at
// most one open Connection. Verbs run one at a time, from this one
// goroutine, matching the engine's single-threaded contract.
type shell struct {
	db   *mvcc.Database
	conn *mvcc.Connection
}

func newShell(defaultIsolation mvcc.IsolationLevel) *shell {
	db := mvcc.NewDatabase().WithLogger(telemetry.Log())
	db.SetIsolation(defaultIsolation)
	return &shell{db: db}
}

func (sh *shell) run() {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            "mvcc» ",
		HistoryFile:       "/tmp/mvccsh_history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "^D",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		if err != nil {
			if err == readline.ErrInterrupt || err == io.EOF {
				return
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "exit" || fields[0] == "quit" {
			return
		}
		sh.dispatch(fields[0], fields[1:])
	}
}

func (sh *shell) dispatch(verb string, args []string) {
	switch verb {
	case "begin":
		sh.begin(args)
	case "get":
		sh.get(args)
	case "set":
		sh.set(args)
	case "delete":
		sh.delete(args)
	case "commit":
		sh.commit()
	case "abort":
		sh.abort()
	case "stats":
		sh.stats()
	case "snapshot":
		sh.snapshot()
	default:
		fmt.Printf("unknown command %q\n", verb)
	}
}

func (sh *shell) begin(args []string) {
	if sh.conn != nil {
		fmt.Println("a transaction is already open; commit or abort it first")
		return
	}

	if len(args) == 0 {
		sh.conn = sh.db.Begin()
		fmt.Printf("txn %d started\n", sh.conn.Txn().ID())
		return
	}

	level, err := mvcc.ParseIsolationLevel(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	sh.conn = sh.db.Begin(level)
	fmt.Printf("txn %d started (%s)\n", sh.conn.Txn().ID(), level)
}

func (sh *shell) get(args []string) {
	if !sh.requireOpenConn() || len(args) < 1 {
		return
	}
	value, ok := sh.conn.Get(args[0])
	if !ok {
		fmt.Println("(none)")
		return
	}
	fmt.Println(string(value))
}

func (sh *shell) set(args []string) {
	if !sh.requireOpenConn() || len(args) < 2 {
		fmt.Println("usage: set <key> <value>")
		return
	}
	sh.conn.Set(args[0], []byte(strings.Join(args[1:], " ")))
}

func (sh *shell) delete(args []string) {
	if !sh.requireOpenConn() || len(args) < 1 {
		return
	}
	fmt.Println(sh.conn.Delete(args[0]))
}

func (sh *shell) commit() {
	if !sh.requireOpenConn() {
		return
	}
	ok := sh.conn.Commit()
	fmt.Println(ok)
	if sh.conn.Txn().State() != mvcc.InProgress {
		sh.conn = nil
	}
}

func (sh *shell) abort() {
	if !sh.requireOpenConn() {
		return
	}
	sh.conn.Abort()
	sh.conn = nil
}

func (sh *shell) stats() {
	s := sh.db.Stats()
	fmt.Printf("in-progress=%d committed=%d aborted=%d keys=%d versions=%d\n",
		s.InProgress, s.Committed, s.Aborted, s.Keys, s.Versions)
}

func (sh *shell) snapshot() {
	if !sh.requireOpenConn() {
		return
	}
	for _, row := range sh.db.Snapshot(sh.conn) {
		fmt.Printf("%s = %s\n", row.Key, string(row.Value))
	}
}

func (sh *shell) requireOpenConn() bool {
	if sh.conn == nil {
		fmt.Println("no open transaction; run `begin` first")
		return false
	}
	return true
}
