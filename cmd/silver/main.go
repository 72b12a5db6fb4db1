package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	silver "github.com/silverlang/silverc"
)

const (
	appName     = "silver"
	historyFile = ".silver_history"
	promptMain  = "> "
)

var banner = fmt.Sprintf("Silver lexer %s\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", silver.Version)

func red(s string) string { return "\x1b[31m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "lex":
		os.Exit(cmdLex(os.Args[2:]))
	case "tree":
		os.Exit(cmdTree(os.Args[2:]))
	case "version":
		fmt.Println(silver.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Silver %s (built %s)

Usage:
  %s repl [--strings]                         Start the interactive lexer.
  %s lex [--json] [--with-eof] [file ...]     Lex file(s), or stdin when none given.
  %s tree [--load] [dir]                      Print a project's module tree.
  %s version                                  Print the compiled version.

The tree root defaults to $SILVERPATH, then the current directory.

`, silver.Version, silver.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	withStrings := fs.Bool("strings", false, "enable the string-literal rule")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	fmt.Println(banner)
	silver.EnableColor = true

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	var opts []silver.Option
	if *withStrings {
		opts = append(opts, silver.WithRule(silver.StringRule))
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.TrimSpace(strings.ToLower(line)) {
			case ":quit":
				return 0
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		// The literal two-character escape \n embeds a newline, so block
		// nesting can be tried from a single prompt.
		src := strings.ReplaceAll(line, `\n`, "\n")

		lx := silver.NewLexer(src, opts...)
		for {
			tok, err := lx.Next()
			if err != nil {
				fmt.Fprintln(os.Stderr, red(silver.WrapErrorWithSource(err, src).Error()))
				continue
			}
			if tok.Type == silver.EOF {
				break
			}
			fmt.Println(silver.FormatToken(tok))
		}
		ln.AppendHistory(line)
	}
}

// -----------------------------------------------------------------------------
// lex
// -----------------------------------------------------------------------------

func cmdLex(args []string) int {
	fs := flag.NewFlagSet("lex", flag.ContinueOnError)
	flagJSON := fs.Bool("json", false, "emit NDJSON: one JSON object per token")
	flagWithEOF := fs.Bool("with-eof", false, "include the EOF token in output")
	flagStrings := fs.Bool("strings", false, "enable the string-literal rule")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var opts []silver.Option
	if *flagStrings {
		opts = append(opts, silver.WithRule(silver.StringRule))
	}

	paths := fs.Args()
	if len(paths) == 0 {
		return lexOne(os.Stdin, "stdin", *flagJSON, *flagWithEOF, opts)
	}

	exit := 0
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", path, err)
			exit = 1
			continue
		}
		if code := lexOne(f, path, *flagJSON, *flagWithEOF, opts); code != 0 {
			exit = code
		}
		f.Close()
	}
	return exit
}

func lexOne(r io.Reader, name string, asJSON, withEOF bool, opts []silver.Option) int {
	data, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return 1
	}
	src := string(data)

	toks, err := silver.NewLexer(src, opts...).Scan()
	if err != nil {
		fmt.Fprintln(os.Stderr, silver.WrapErrorWithName(err, name, src).Error())
		return 1
	}

	if !withEOF && len(toks) > 0 && toks[len(toks)-1].Type == silver.EOF {
		toks = toks[:len(toks)-1]
	}

	if asJSON {
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		for _, t := range toks {
			b, err := silver.MarshalToken(t)
			if err != nil {
				fmt.Fprintf(os.Stderr, "encode json: %v\n", err)
				return 1
			}
			w.Write(b)
			w.WriteByte('\n')
		}
		return 0
	}

	fmt.Printf("== %s ==\n", name)
	if len(toks) > 0 {
		fmt.Println(silver.FormatTokens(toks))
	}
	return 0
}

// -----------------------------------------------------------------------------
// tree
// -----------------------------------------------------------------------------

func cmdTree(args []string) int {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	loadAll := fs.Bool("load", false, "load every file and print its base offset")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	root := os.Getenv("SILVERPATH")
	if root == "" {
		root = "."
	}
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	sm, err := silver.NewSourceMap(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	fmt.Print(sm.Tree().String())

	if *loadAll {
		for _, leaf := range sm.Tree().Leaves() {
			sf, err := sm.Load(leaf.Value.Path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err.Error())
				return 1
			}
			fmt.Printf("%s: base %d, end %d (id %016x)\n", sf.Path, sf.Base, sf.End(), uint64(sf.ID))
		}
	}
	return 0
}
