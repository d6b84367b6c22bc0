package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/kr/pretty"

	"minicc/pkg/compiler"
	"minicc/pkg/utils"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be driven from tests.
// It returns 0 on success, 1 on a read/compile/write failure, and 2 on a
// usage error.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("minicc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inPath := fs.String("in", "", "input C source file path")
	outPath := fs.String("out", "", `output assembly file path (default: input with .s extension, "-" for stdout)`)
	workers := fs.Int("j", 1, "number of declarations to generate concurrently (0 = unlimited)")
	dumpTokens := fs.Bool("tokens", false, "print the token stream to stderr")
	dumpAST := fs.Bool("ast", false, "print the parsed AST to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *inPath == "" {
		fmt.Fprintln(stderr, "nothing to do: provide -in <file.c>")
		fs.Usage()
		return 2
	}
	if *workers < 0 {
		fmt.Fprintln(stderr, "-j must not be negative")
		return 2
	}

	src, err := utils.ReadSource(*inPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to read input file: %v\n", err)
		return 1
	}

	tokens, err := compiler.Lex(src)
	if err != nil {
		fmt.Fprint(stderr, compiler.FormatDiagnostic(*inPath, src, err))
		return 1
	}
	if *dumpTokens {
		for _, tok := range tokens {
			fmt.Fprintf(stderr, "  %s  %q\n", tok, tok.Text(src))
		}
	}

	prog, err := compiler.Parse(tokens, src)
	if err != nil {
		fmt.Fprint(stderr, compiler.FormatDiagnostic(*inPath, src, err))
		return 1
	}
	if *dumpAST {
		pretty.Fprintf(stderr, "%# v\n", prog)
	}

	var asm string
	if *workers == 1 {
		asm, err = compiler.Generate(prog)
	} else {
		asm, err = compiler.GenerateConcurrent(context.Background(), prog, *workers)
	}
	if err != nil {
		fmt.Fprint(stderr, compiler.FormatDiagnostic(*inPath, src, err))
		return 1
	}

	output := *outPath
	if output == "" {
		output = utils.OutputPath(*inPath, ".s")
	}
	if output == "-" {
		fmt.Fprint(stdout, asm)
		return 0
	}
	if err := os.WriteFile(output, []byte(asm), 0o644); err != nil {
		fmt.Fprintf(stderr, "failed to write assembly file %q: %v\n", output, err)
		return 1
	}
	fmt.Fprintf(stdout, "compiled %d declarations -> %s\n", len(prog.Decls), output)
	return 0
}
