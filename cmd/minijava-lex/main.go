package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agenthands/minijava/pkg/compiler/lexer"
	"github.com/agenthands/minijava/pkg/logger"
	"github.com/agenthands/minijava/pkg/playground"
	"github.com/agenthands/minijava/pkg/tokenstore"
)

const usage = "Usage: minijava-lex [tokens|demo|save|show|runs|serve] ..."

// sampleProgram is tokenized by the demo command.
const sampleProgram = `class Factorial {
    public static void main(String[] a) {
        System.out.println(new Fac().ComputeFac(10));
    }
}

class Fac {
    public int ComputeFac(int num) {
        int num_aux;
        if (num < 1)
            num_aux = 1;
        else
            num_aux = num * (this.ComputeFac(num-1));
        return num_aux;
    }
}
`

var errStrict = errors.New("source contains unrecognized characters")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, logger.NewLogger()))
}

func run(args []string, stdin io.Reader, stdout io.Writer, log *logger.Logger) int {
	if len(args) < 1 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	var err error
	switch args[0] {
	case "tokens":
		err = runTokens(args[1:], stdin, stdout)
	case "demo":
		printTokens(stdout, lexer.Tokenize(sampleProgram), false)
	case "save":
		err = runSave(args[1:], stdin, stdout, log)
	case "show":
		err = runShow(args[1:], stdout)
	case "runs":
		err = runRuns(args[1:], stdout)
	case "serve":
		err = runServe(args[1:], log)
	default:
		fmt.Fprintln(stdout, "Unknown command:", args[0])
		fmt.Fprintln(stdout, usage)
		return 1
	}

	if err != nil {
		if !errors.Is(err, errStrict) {
			log.Error(err.Error())
		}
		return 1
	}
	return 0
}

func readSource(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(b), nil
}

func printTokens(w io.Writer, toks []lexer.Token, errorsOnly bool) {
	n := 0
	for _, tok := range toks {
		if tok.Kind == lexer.KindEOF {
			continue
		}
		n++
		if errorsOnly && tok.Kind != lexer.KindError {
			continue
		}
		fmt.Fprintln(w, tok)
	}
	fmt.Fprintf(w, "Total tokens: %d\n", n)
}

func runTokens(args []string, stdin io.Reader, stdout io.Writer) error {
	cmd := flag.NewFlagSet("tokens", flag.ContinueOnError)
	errorsOnly := cmd.Bool("errors-only", false, "Print only ERROR tokens")
	strict := cmd.Bool("strict", false, "Exit with status 1 if any ERROR token is produced")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if cmd.NArg() < 1 {
		return errors.New("usage: minijava-lex tokens [-errors-only] [-strict] <file|->")
	}

	src, err := readSource(cmd.Arg(0), stdin)
	if err != nil {
		return err
	}

	toks := lexer.Tokenize(src)
	printTokens(stdout, toks, *errorsOnly)
	if *strict && lexer.ErrorCount(toks) > 0 {
		return errStrict
	}
	return nil
}

func dbFlag(cmd *flag.FlagSet) *string {
	def := os.Getenv("MINIJAVA_DB")
	if def == "" {
		def = "minijava-tokens.db"
	}
	return cmd.String("db", def, "SQLite database path (default $MINIJAVA_DB)")
}

func runSave(args []string, stdin io.Reader, stdout io.Writer, log *logger.Logger) error {
	cmd := flag.NewFlagSet("save", flag.ContinueOnError)
	dbPath := dbFlag(cmd)
	name := cmd.String("name", "", "Run name (defaults to the file name)")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if cmd.NArg() < 1 {
		return errors.New("usage: minijava-lex save [-db path] [-name n] <file|->")
	}
	if *name == "" {
		*name = cmd.Arg(0)
	}

	src, err := readSource(cmd.Arg(0), stdin)
	if err != nil {
		return err
	}

	store, err := tokenstore.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	toks := lexer.Tokenize(src)
	saved, err := store.Save(context.Background(), *name, toks)
	if err != nil {
		return err
	}
	log.Scan(*name, saved.Tokens, saved.Errors)
	fmt.Fprintln(stdout, saved.ID)
	return nil
}

func runShow(args []string, stdout io.Writer) error {
	cmd := flag.NewFlagSet("show", flag.ContinueOnError)
	dbPath := dbFlag(cmd)
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if cmd.NArg() < 1 {
		return errors.New("usage: minijava-lex show [-db path] <run-id>")
	}

	store, err := tokenstore.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	toks, err := store.Load(context.Background(), cmd.Arg(0))
	if err != nil {
		return err
	}
	printTokens(stdout, toks, false)
	return nil
}

func runRuns(args []string, stdout io.Writer) error {
	cmd := flag.NewFlagSet("runs", flag.ContinueOnError)
	dbPath := dbFlag(cmd)
	if err := cmd.Parse(args); err != nil {
		return err
	}

	store, err := tokenstore.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background())
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintf(stdout, "%s\t%s\t%s\ttokens=%d errors=%d\n",
			r.ID, r.CreatedAt.Format(time.RFC3339), r.Name, r.Tokens, r.Errors)
	}
	return nil
}

func runServe(args []string, log *logger.Logger) error {
	cmd := flag.NewFlagSet("serve", flag.ContinueOnError)
	addr := cmd.String("addr", ":8080", "Listen address")
	maxSource := cmd.Int64("max-source", playground.DefaultConfig().MaxSourceBytes, "Largest accepted source in bytes")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	cfg := playground.DefaultConfig()
	cfg.MaxSourceBytes = *maxSource

	srv := &http.Server{
		Addr:              *addr,
		Handler:           playground.NewMux(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("playground listening on %s", *addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("playground server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down playground")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
