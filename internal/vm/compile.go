package vm

import "github.com/lapla-cogito/rustegex/internal/syntax"

// Compile walks ast and emits the bytecode program in spec.md §4.4's
// schema, appending a terminal Match.
func Compile(ast *syntax.Node) Program {
	c := &compiler{}
	c.emit(ast)
	c.prog = append(c.prog, Inst{Op: OpMatch})
	return c.prog
}

type compiler struct {
	prog Program
}

func (c *compiler) here() PC { return len(c.prog) }

func (c *compiler) push(i Inst) PC {
	c.prog = append(c.prog, i)
	return c.here() - 1
}

func (c *compiler) emit(ast *syntax.Node) {
	switch ast.Kind {
	case syntax.KindChar:
		c.push(Inst{Op: OpChar, Char: ast.Char})

	case syntax.KindEmpty:
		// no instructions: the empty pattern consumes nothing.

	case syntax.KindConcat:
		c.emit(ast.Left)
		c.emit(ast.Right)

	case syntax.KindAlt:
		split := c.push(Inst{Op: OpSplit})
		l1 := c.here()
		c.emit(ast.Left)
		jmp := c.push(Inst{Op: OpJump})
		l2 := c.here()
		c.emit(ast.Right)
		l3 := c.here()
		c.prog[split].A, c.prog[split].B = l1, l2
		c.prog[jmp].A = l3

	case syntax.KindStar:
		l1 := c.here()
		split := c.push(Inst{Op: OpSplit})
		l2 := c.here()
		c.emit(ast.Inner)
		c.push(Inst{Op: OpJump, A: l1})
		l3 := c.here()
		c.prog[split].A, c.prog[split].B = l2, l3

	case syntax.KindPlus:
		l1 := c.here()
		c.emit(ast.Inner)
		split := c.push(Inst{Op: OpSplit})
		l2 := c.here()
		c.prog[split].A, c.prog[split].B = l1, l2

	case syntax.KindQuestion:
		split := c.push(Inst{Op: OpSplit})
		l1 := c.here()
		c.emit(ast.Inner)
		l2 := c.here()
		c.prog[split].A, c.prog[split].B = l1, l2

	default:
		panic("vm: unhandled AST kind")
	}
}
