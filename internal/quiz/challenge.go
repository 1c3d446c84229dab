// Package quiz generates arithmetic challenges and runs the timed answer
// session that interrupts play whenever a brick is destroyed.
package quiz

import (
	"fmt"

	"github.com/vovakirdan/mathbreak/internal/core"
)

// Operator is one of the supported arithmetic operators.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	opCount
)

// Symbol returns the operator as displayed in a question.
func (o Operator) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "×"
	default:
		return "?"
	}
}

// String returns a stable name used by the answer journal.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	default:
		return "unknown"
	}
}

// Apply evaluates a OP b with integer arithmetic.
func (o Operator) Apply(a, b int) int {
	switch o {
	case OpAdd:
		return a + b
	case OpSub:
		return a - b
	case OpMul:
		return a * b
	default:
		return 0
	}
}

// Challenge is an arithmetic question with its precomputed answer.
type Challenge struct {
	A, B   int
	Op     Operator
	Result int
}

// Question returns the prompt shown to the player, e.g. "7 × 3 = ?".
func (c Challenge) Question() string {
	return fmt.Sprintf("%d %s %d = ?", c.A, c.Op.Symbol(), c.B)
}

// Generate draws operands uniformly from [1, maxOperand] and an operator
// uniformly from {+, -, ×}.
func Generate(rng *core.RNG, maxOperand int) Challenge {
	if maxOperand < 1 {
		maxOperand = 1
	}
	a := rng.IntRange(1, maxOperand)
	b := rng.IntRange(1, maxOperand)
	op := Operator(rng.Intn(int(opCount)))

	return Challenge{
		A:      a,
		B:      b,
		Op:     op,
		Result: op.Apply(a, b),
	}
}
