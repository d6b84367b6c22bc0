package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kr/pretty"

	"minicc/pkg/compiler"
	"minicc/pkg/utils"
)

const testSource = `int main(void argc) {
	return 42;
}

float half(int x, int y,) {
	return;
}
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("ccompiler: ")

	src := testSource
	name := "<builtin>"
	if len(os.Args) > 1 {
		fullPath, _, err := utils.GetPathInfo(os.Args[1])
		if err != nil {
			log.Fatalf("resolve %s: %v", os.Args[1], err)
		}
		src, err = utils.ReadSource(fullPath)
		if err != nil {
			log.Fatal(err)
		}
		name = os.Args[1]
	}

	fmt.Printf("Source:\n%s\n", src)

	// Lex
	tokens, err := compiler.Lex(src)
	if err != nil {
		log.Fatalf("lex error:\n%s", compiler.FormatDiagnostic(name, src, err))
	}

	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Printf("  %s  %q\n", tok, tok.Text(src))
	}
	fmt.Println()

	// Parse
	prog, err := compiler.Parse(tokens, src)
	if err != nil {
		log.Fatalf("parse error:\n%s", compiler.FormatDiagnostic(name, src, err))
	}

	fmt.Println("AST")
	pretty.Printf("%# v\n", prog)
	fmt.Println()

	// Code generation
	asm, err := compiler.Generate(prog)
	if err != nil {
		log.Fatalf("codegen error:\n%s", compiler.FormatDiagnostic(name, src, err))
	}

	fmt.Println("Generated Assembly")
	fmt.Print(asm)
}
