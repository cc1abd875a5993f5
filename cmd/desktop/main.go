package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"exprvm/pkg/compiler"
	"exprvm/pkg/demo"
	"exprvm/pkg/grid"
	"exprvm/pkg/vm"
)

const (
	screenWidth  = 640
	screenHeight = 480

	lineHeight = 16
	panelX     = 360 // left edge of the stack panel

	cellCols   = 3
	cellWidth  = 88
	cellHeight = 28
)

var (
	face = text.NewGoXFace(basicfont.Face7x13)

	cellColor    = color.RGBA{0x2e, 0x4a, 0x7a, 0xff}
	topCellColor = color.RGBA{0x7a, 0x4a, 0x2e, 0xff}
)

// session is one expression loaded into a steppable VM.
type session struct {
	expr compiler.Expr
	prog vm.Program
	vm   *vm.VM
	err  error
}

func newSession(src string) (*session, error) {
	expr, prog, err := compiler.Compile(src)
	if err != nil {
		return nil, err
	}
	return &session{expr: expr, prog: prog, vm: vm.New(prog)}, nil
}

func (s *session) step() {
	if s.err == nil {
		s.err = s.vm.Step()
	}
}

func (s *session) runToEnd() {
	for !s.vm.Halted && s.err == nil {
		s.step()
	}
}

func (s *session) reset() {
	s.vm.Reset()
	s.err = nil
}

// status describes where execution stands.
func (s *session) status() string {
	switch {
	case s.err != nil:
		return "error: " + s.err.Error()
	case !s.vm.Halted:
		return fmt.Sprintf("pc %d/%d", s.vm.PC, len(s.prog))
	}
	if v, ok := s.vm.Top(); ok {
		return fmt.Sprintf("halted, result %d (evaluator %d)", v, s.expr.Evaluate())
	}
	return "halted, stack empty"
}

// listing renders the program with a marker on the next instruction.
func (s *session) listing() []string {
	lines := make([]string, len(s.prog))
	for i, instr := range s.prog {
		marker := "  "
		if i == s.vm.PC && !s.vm.Halted {
			marker = "> "
		}
		lines[i] = fmt.Sprintf("%s%3d  %s", marker, i, instr)
	}
	return lines
}

type Game struct {
	s *session
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.s.step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.s.runToEnd()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.s.reset()
	}
	return nil
}

func drawText(screen *ebiten.Image, s string, x, y int) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.LineSpacing = lineHeight
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, face, op)
}

// drawStack draws the operand stack bottom first, the top cell highlighted.
func (g *Game) drawStack(screen *ebiten.Image) {
	stack := g.s.vm.Stack()
	drawText(screen, fmt.Sprintf("stack (%d)", len(stack)), panelX, 8)

	for i, v := range stack {
		x, y := grid.GetGridCoords(i, cellCols)
		px := panelX + x*(cellWidth+4)
		py := 32 + y*(cellHeight+4)

		clr := cellColor
		if i == len(stack)-1 {
			clr = topCellColor
		}
		cell := screen.SubImage(image.Rect(px, py, px+cellWidth, py+cellHeight)).(*ebiten.Image)
		cell.Fill(clr)
		drawText(screen, fmt.Sprint(v), px+6, py+8)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	header := []string{
		"expression: " + g.s.expr.String(),
		"pretty:     " + g.s.expr.Pretty(),
		g.s.status(),
		"",
	}
	drawText(screen, strings.Join(append(header, g.s.listing()...), "\n"), 8, 8)
	g.drawStack(screen)

	ebitenutil.DebugPrintAt(screen, "SPACE step   ENTER run   R reset", 8, screenHeight-20)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	src := demo.LoweredInput
	if len(os.Args) > 1 {
		src = strings.Join(os.Args[1:], " ")
	}

	s, err := newSession(src)
	if err != nil {
		log.Fatalf("Compilation failed: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("exprvm stepper")

	if err := ebiten.RunGame(&Game{s: s}); err != nil {
		log.Fatal(err)
	}
}
