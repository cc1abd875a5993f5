package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"

	"exprvm/pkg/asm"
	"exprvm/pkg/compiler"
	"exprvm/pkg/demo"
	"exprvm/pkg/grammar"
	"exprvm/pkg/utils"
	"exprvm/pkg/vm"
)

// Globals are shared by every command.
type Globals struct {
	AllowTrailing bool   `help:"Stop at the end of the first complete expression instead of rejecting leftover input." env:"EXPRC_ALLOW_TRAILING"`
	Frontend      string `help:"Parser to use (${enum})." enum:"descent,participle" default:"descent" env:"EXPRC_FRONTEND"`

	Out io.Writer `kong:"-"`
	Err io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Tokens  TokensCmd  `cmd:"" help:"Print the token stream of an expression."`
	Parse   ParseCmd   `cmd:"" help:"Parse an expression and print its forms and value."`
	Compile CompileCmd `cmd:"" help:"Lower an expression to a VM program."`
	Run     RunCmd     `cmd:"" help:"Run a VM program from an .asm or .bin file."`
	Eval    EvalCmd    `cmd:"" help:"Compile and run an expression, checked against the tree evaluator."`
	Demo    DemoCmd    `cmd:"" help:"Print the built-in showcase."`
	Grammar GrammarCmd `cmd:"" help:"Print the grammar as EBNF."`
}

func (g *Globals) parse(src string) (compiler.Expr, error) {
	if g.Frontend == "participle" {
		return grammar.Parse(src, g.AllowTrailing)
	}
	var opts []compiler.Option
	if g.AllowTrailing {
		opts = append(opts, compiler.AllowTrailing())
	}
	return compiler.Parse(src, opts...)
}

type TokensCmd struct {
	Expr string `arg:"" help:"Expression."`
}

func (c *TokensCmd) Run(g *Globals) error {
	_, err := fmt.Fprintln(g.Out, compiler.Show(compiler.Lex(c.Expr)))
	return err
}

type ParseCmd struct {
	Expr string `arg:"" help:"Expression."`
	Dump bool   `help:"Also dump the syntax tree."`
}

func (c *ParseCmd) Run(g *Globals) error {
	expr, err := g.parse(c.Expr)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	fmt.Fprintf(g.Out, "pretty: %s\n", expr.Pretty())
	fmt.Fprintf(g.Out, "full:   %s\n", expr)
	fmt.Fprintf(g.Out, "value:  %d\n", expr.Evaluate())
	if c.Dump {
		fmt.Fprintln(g.Out, repr.String(expr, repr.Indent("  ")))
	}
	return nil
}

type CompileCmd struct {
	Expr   string `arg:"" help:"Expression."`
	Output string `short:"o" type:"path" help:"Write the program to this file instead of stdout."`
	Format string `enum:"auto,asm,bin" default:"auto" help:"Output format (${enum}). auto follows the -o extension and falls back to asm."`
}

// format resolves the output format. A file written with -o must carry an
// extension that run will load in the same format.
func (c *CompileCmd) format() (string, error) {
	if c.Output == "" {
		if c.Format == "auto" {
			return "asm", nil
		}
		return c.Format, nil
	}
	kind, err := utils.KindOf(c.Output)
	if err != nil {
		return "", err
	}
	want := "asm"
	if kind == utils.KindBinary {
		want = "bin"
	}
	if c.Format != "auto" && c.Format != want {
		return "", fmt.Errorf("format %s does not match output file %s (%s)", c.Format, c.Output, want)
	}
	return want, nil
}

func (c *CompileCmd) Run(g *Globals) error {
	expr, err := g.parse(c.Expr)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	format, err := c.format()
	if err != nil {
		return err
	}
	prog := compiler.Lower(expr)

	var out []byte
	switch format {
	case "bin":
		if c.Output == "" {
			return fmt.Errorf("binary output needs -o")
		}
		out = vm.Encode(prog)
	default:
		out = []byte(fmt.Sprintf("; %s\n%s", expr.Pretty(), asm.Disassemble(prog)))
	}

	if c.Output == "" {
		_, err = g.Out.Write(out)
		return err
	}
	if err := os.WriteFile(c.Output, out, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "compiled %d instructions -> %s\n", len(prog), c.Output)
	return nil
}

type RunCmd struct {
	File  string `arg:"" type:"existingfile" help:"Program file (.asm or .bin)."`
	Trace bool   `help:"Log every executed instruction to stderr."`
}

func (c *RunCmd) Run(g *Globals) error {
	fullPath, data, kind, err := utils.ReadProgramFile(c.File)
	if err != nil {
		return err
	}

	var prog vm.Program
	switch kind {
	case utils.KindBinary:
		prog, err = vm.Decode(data)
	default:
		prog, _, err = asm.Assemble(string(data))
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", fullPath, err)
	}

	m := vm.New(prog)
	if c.Trace {
		m.Logger = log.New(g.Err, "trace: ", 0)
	}
	v, ok, err := m.Run()
	if err != nil {
		return err
	}
	return printTop(g.Out, v, ok)
}

type EvalCmd struct {
	Expr string `arg:"" help:"Expression."`
}

func (c *EvalCmd) Run(g *Globals) error {
	expr, err := g.parse(c.Expr)
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}
	v, ok, err := vm.Execute(compiler.Lower(expr))
	if err != nil {
		return err
	}
	if want := expr.Evaluate(); !ok || v != want {
		return fmt.Errorf("vm result %d (ok=%v) disagrees with evaluator %d", v, ok, want)
	}
	return printTop(g.Out, v, ok)
}

type DemoCmd struct{}

func (c *DemoCmd) Run(g *Globals) error {
	var opts []compiler.Option
	if g.AllowTrailing {
		opts = append(opts, compiler.AllowTrailing())
	}
	return demo.Run(g.Out, opts...)
}

type GrammarCmd struct{}

func (c *GrammarCmd) Run(g *Globals) error {
	_, err := fmt.Fprintln(g.Out, grammar.String())
	return err
}

func printTop(w io.Writer, v int64, ok bool) error {
	if !ok {
		_, err := fmt.Fprintln(w, "empty")
		return err
	}
	_, err := fmt.Fprintln(w, v)
	return err
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("exprc"),
		kong.Description("Parse, compile and run single-digit arithmetic expressions on a stack VM."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cli.Out, cli.Err = stdout, stderr
	return ctx.Run(&cli.Globals)
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatalf("exprc: %v", err)
	}
}
