package compiler

import "context"

// Compile runs the whole pipeline over src and returns the assembly text.
func Compile(src string) (string, error) {
	prog, err := parseSource(src)
	if err != nil {
		return "", err
	}
	return Generate(prog)
}

// CompileConcurrent is Compile with code generation spread over workers
// goroutines. See GenerateConcurrent.
func CompileConcurrent(ctx context.Context, src string, workers int) (string, error) {
	prog, err := parseSource(src)
	if err != nil {
		return "", err
	}
	return GenerateConcurrent(ctx, prog, workers)
}

func parseSource(src string) (*Program, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, src)
}
