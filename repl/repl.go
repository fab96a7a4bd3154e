package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ergochat/readline"
	"github.com/google/uuid"

	"github.com/feedlab/postdex"
	"github.com/feedlab/postdex/utils"
)

// REPL per se.
type REPL struct {
	Catalog *postdex.Catalog
	ctx     context.Context
	log     utils.Logger
	rl      *readline.Instance
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("help"),

	readline.PcItem("add"),
	readline.PcItem("get"),
	readline.PcItem("range"),

	readline.PcItem("top"),
	readline.PcItem("pop"),
	readline.PcItem("list"),

	readline.PcItem("stats"),
	readline.PcItem("demo"),

	readline.PcItem("exit"),
	readline.PcItem("quit"),
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func (repl *REPL) Open() (err error) {
	repl.rl, err = readline.NewEx(&readline.Config{
		Prompt:          "◌ ",
		HistoryFile:     ".postdex_cmd_log.txt",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		return
	}
	repl.rl.CaptureExitSignal()

	repl.log = utils.NewDefaultLogger(slog.LevelInfo)
	repl.ctx = utils.WithDefaultArgs(context.Background(), "session", uuid.NewString())
	repl.Catalog = postdex.NewCatalog(postdex.Options{Logger: repl.log})
	repl.log.InfoCtx(repl.ctx, "shell open")
	return
}

func (repl *REPL) Close() error {
	if repl.rl != nil {
		_ = repl.rl.Close()
		repl.rl = nil
	}
	return nil
}

func (repl *REPL) REPL() (err error) {
	var line string
	line, err = repl.rl.Readline()
	if err == readline.ErrInterrupt && len(line) != 0 {
		return nil
	}
	if err != nil {
		return err
	}

	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return nil
	}
	ws := strings.IndexAny(line, " \t\r\n")
	cmd := ""
	if ws > 0 {
		cmd = line[:ws]
		line = strings.TrimSpace(line[ws:])
	} else {
		cmd = line
		line = ""
	}
	switch cmd {
	case "help":
		err = repl.CommandHelp(line)
	// ----- writes -----
	case "add":
		err = repl.CommandAdd(line)
	case "demo":
		err = repl.CommandDemo(line)
	// ----- queries -----
	case "get":
		err = repl.CommandGet(line)
	case "range":
		err = repl.CommandRange(line)
	case "top":
		err = repl.CommandTop(line)
	case "pop":
		err = repl.CommandPop(line)
	case "ls", "show", "list":
		err = repl.CommandList(line)
	case "stats":
		err = repl.CommandStats(line)
	case "exit", "quit":
		err = repl.Catalog.Close()
		if err == nil {
			err = io.EOF
		}
	default:
		_, _ = fmt.Fprintf(os.Stderr, "command unknown: %s\n", cmd)
	}
	return
}

func main() {
	repl := REPL{}

	err := repl.Open()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	for err != io.EOF {
		if err != nil {
			_, _ = fmt.Fprintf(os.Stdout, "%s\n", err.Error())
			err = nil
		}
		err = repl.REPL()
	}
	_ = repl.Close()
}
