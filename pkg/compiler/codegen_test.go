package compiler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

// assertContains checks if the generated code contains the expected substring.
func assertContains(t *testing.T, code, expected string) {
	t.Helper()
	if !strings.Contains(code, expected) {
		t.Errorf("Expected code to contain %q, but it didn't.\nCode:\n%s", expected, code)
	}
}

func TestGenerate_Golden(t *testing.T) {
	code, err := Compile("int f(void x){return 0;}")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	want := "\t.globl _f\n" +
		"\n" +
		"_f:\n" +
		"\tmov\tw0, #0\n" +
		"\tret\n"
	if code != want {
		t.Errorf("Compile output mismatch.\n got: %q\nwant: %q", code, want)
	}
}

func TestGenerate_BareReturn(t *testing.T) {
	code, err := Compile("void f(void x) { return; }")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	assertContains(t, code, "_f:\n\tret\n")
	if strings.Contains(code, "mov") {
		t.Errorf("bare return should not move a value:\n%s", code)
	}
}

func TestGenerate_Statements(t *testing.T) {
	code, err := Compile("int f() { return 1; return; return 2147483647; }")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	want := "_f:\n\tmov\tw0, #1\n\tret\n\tret\n\tmov\tw0, #2147483647\n\tret\n"
	assertContains(t, code, want)
}

func TestGenerate_EmptyBody(t *testing.T) {
	code, err := Compile("int f() {}")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if code != "\t.globl _f\n\n_f:\n\n" {
		t.Errorf("got %q", code)
	}
}

func TestGenerate_EmptyProgram(t *testing.T) {
	code, err := Generate(&Program{})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if code != "" {
		t.Errorf("got %q, want empty output", code)
	}
}

func TestGenerate_DeclarationOrder(t *testing.T) {
	code, err := Compile("int f(){return 1;} int g(){return 2;} int h(){return 3;}")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	last := -1
	for _, label := range []string{"_f:", "_g:", "_h:"} {
		idx := strings.Index(code, label)
		if idx < 0 {
			t.Fatalf("missing label %s in:\n%s", label, code)
		}
		if idx < last {
			t.Errorf("label %s out of order in:\n%s", label, code)
		}
		last = idx
	}
	// Functions are separated by a blank line.
	assertContains(t, code, "\tret\n\n\t.globl _g\n")
}

func TestGenerate_Unsupported(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantConstruct string
		wantText      string
	}{
		{name: "Float", input: "float f() { return 1.5; }", wantConstruct: "float literal", wantText: "1.5"},
		{name: "Bool", input: "bool f() { return false; }", wantConstruct: "bool literal", wantText: "false"},
		{name: "Name Reference", input: "int f(int a) { return a; }", wantConstruct: `reference to "a"`, wantText: "a"},
		{name: "After Valid Function", input: "int f() { return 0; } int g() { return 0; return 2.0; }", wantConstruct: "float literal", wantText: "2.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, err := Compile(tc.input)
			if err == nil {
				t.Fatalf("expected error, got:\n%s", code)
			}
			if code != "" {
				t.Errorf("expected no partial output, got %q", code)
			}
			var ue *UnsupportedError
			if !errors.As(err, &ue) {
				t.Fatalf("expected *UnsupportedError, got %T (%v)", err, err)
			}
			if ue.Construct != tc.wantConstruct {
				t.Errorf("Construct = %q, want %q", ue.Construct, tc.wantConstruct)
			}
			if got := ue.Span.Text(tc.input); got != tc.wantText {
				t.Errorf("span text = %q, want %q", got, tc.wantText)
			}
		})
	}
}

func TestGenerate_UnsupportedHandBuiltNodes(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		want string
	}{
		{"Double", Literal{Value: DoubleValue(2.5), Span: span(1, 4)}, "double literal"},
		{"Char", Literal{Value: CharValue('c'), Span: span(1, 4)}, "char literal"},
	}

	for _, tc := range tests {
		prog := &Program{Decls: []Decl{
			&Function{
				ReturnType: prim(Int, 0, 0),
				Name:       ident("f", 0, 0),
				Body: &Block{Stmts: []Stmt{
					&ReturnStmt{Value: &PrimaryExpr{Value: tc.lit}},
				}},
			},
		}}
		_, err := Generate(prog)
		var ue *UnsupportedError
		if !errors.As(err, &ue) || ue.Construct != tc.want || ue.Span != tc.lit.Span {
			t.Errorf("%s: got %v, want unsupported %s at %s", tc.name, err, tc.want, tc.lit.Span)
		}
	}
}

func manyFunctions(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "int fn_%c%c(void x) { return %d; }\n", 'a'+i/26, 'a'+i%26, i)
	}
	return b.String()
}

func TestGenerateConcurrent_MatchesGenerate(t *testing.T) {
	src := manyFunctions(60)
	prog := mustParse(t, src)

	want, err := Generate(prog)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, workers := range []int{0, 1, 2, 8} {
		got, err := GenerateConcurrent(context.Background(), prog, workers)
		if err != nil {
			t.Fatalf("GenerateConcurrent(%d) failed: %v", workers, err)
		}
		if got != want {
			t.Errorf("GenerateConcurrent(%d) output differs from Generate", workers)
		}
	}
}

func TestGenerateConcurrent_EarliestErrorWins(t *testing.T) {
	src := manyFunctions(20) + "int bad_a() { return 1.5; }\n" + manyFunctions(20) + "int bad_b() { return x; }\n"
	prog := mustParse(t, src)

	_, seqErr := Generate(prog)
	_, conErr := GenerateConcurrent(context.Background(), prog, 4)

	var seq, con *UnsupportedError
	if !errors.As(seqErr, &seq) || !errors.As(conErr, &con) {
		t.Fatalf("expected unsupported errors, got %v and %v", seqErr, conErr)
	}
	if *seq != *con || seq.Construct != "float literal" {
		t.Errorf("sequential %v, concurrent %v", seq, con)
	}
}

func TestGenerateConcurrent_Cancelled(t *testing.T) {
	prog := mustParse(t, manyFunctions(5))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := GenerateConcurrent(ctx, prog, 2); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCompileConcurrent(t *testing.T) {
	src := manyFunctions(10)
	want, err := Compile(src)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	got, err := CompileConcurrent(context.Background(), src, 3)
	if err != nil {
		t.Fatalf("CompileConcurrent failed: %v", err)
	}
	if got != want {
		t.Errorf("CompileConcurrent output differs from Compile")
	}

	if _, err := CompileConcurrent(context.Background(), "int f(", 3); err == nil {
		t.Error("expected parse error from CompileConcurrent")
	}
}
