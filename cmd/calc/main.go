package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/graeme-hill/calcstuff-go/console"
	"github.com/graeme-hill/calcstuff-go/lib"
	"golang.org/x/term"
)

var debug = flag.Bool("debug", false, "dump the tokens and postfix order of each expression to stderr")

func main() {
	log.SetFlags(0)
	log.SetPrefix("calc: ")

	file := flag.String("f", "", "evaluate each line of `file`")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: calc [-debug] [-f file] [expression...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	switch {
	case *file != "":
		results, err := lib.ReadBatchFromFile(*file)
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(printResults(results))
	case flag.NArg() > 0:
		value, err := evaluate(strings.Join(flag.Args(), " "))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(lib.FormatResult(value))
	case term.IsTerminal(int(os.Stdin.Fd())):
		if err := runConsole(); err != nil {
			log.Fatal(err)
		}
	default:
		results, err := lib.EvaluateLines(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(printResults(results))
	}
}

func runConsole() error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	session := console.NewSession(os.Stdin, os.Stdout, evaluate)
	err = session.Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}

// printResults writes one line per result and returns the exit status.
func printResults(results []lib.BatchResult) int {
	status := 0
	for _, r := range results {
		if *debug {
			dump(r.Expression)
		}
		if r.Err != nil {
			status = 1
			fmt.Printf("%d: %s\n", r.Line, r)
			continue
		}
		fmt.Println(r)
	}
	return status
}

func evaluate(expr string) (float64, error) {
	if *debug {
		dump(expr)
	}
	return lib.Evaluate(expr)
}

func dump(expr string) {
	tokens, err := lib.Tokenize(expr)
	if err != nil {
		return
	}
	fmt.Fprintf(os.Stderr, "tokens for %q:\n", expr)
	spew.Fdump(os.Stderr, tokens)

	postfix, err := lib.ToPostfix(tokens)
	if err != nil {
		return
	}
	fmt.Fprintf(os.Stderr, "postfix: %v\n", postfix)
	spew.Fdump(os.Stderr, postfix)
}
