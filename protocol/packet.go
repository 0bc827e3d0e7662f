package protocol

import (
	"fmt"

	"github.com/pkg/errors"
)

// Operation is the function an operator packet applies to its children.
type Operation uint8

const (
	Sum Operation = iota
	Product
	Minimum
	Maximum
	GreaterThan
	LessThan
	EqualTo
)

// OperationFromTypeID maps an operator type id to its Operation.
// TYPE_LITERAL and anything outside 0-7 are rejected.
func OperationFromTypeID(typeID uint8) (Operation, error) {
	switch typeID {
	case TYPE_SUM:
		return Sum, nil
	case TYPE_PRODUCT:
		return Product, nil
	case TYPE_MINIMUM:
		return Minimum, nil
	case TYPE_MAXIMUM:
		return Maximum, nil
	case TYPE_GREATER_THAN:
		return GreaterThan, nil
	case TYPE_LESS_THAN:
		return LessThan, nil
	case TYPE_EQUAL_TO:
		return EqualTo, nil
	default:
		return 0, errors.Wrapf(ErrUnknownOperation, "type id %d", typeID)
	}
}

func (o Operation) String() string {
	switch o {
	case Sum:
		return "sum"
	case Product:
		return "product"
	case Minimum:
		return "min"
	case Maximum:
		return "max"
	case GreaterThan:
		return "gt"
	case LessThan:
		return "lt"
	case EqualTo:
		return "eq"
	default:
		return fmt.Sprintf("operation(%d)", uint8(o))
	}
}

// Symbol is the short form used by Packet.String.
func (o Operation) Symbol() string {
	switch o {
	case Sum:
		return "+"
	case Product:
		return "*"
	case Minimum:
		return "min"
	case Maximum:
		return "max"
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case EqualTo:
		return "=="
	default:
		return o.String()
	}
}

// IsComparison reports whether o takes exactly two operands.
func (o Operation) IsComparison() bool {
	return o == GreaterThan || o == LessThan || o == EqualTo
}

// Body is either a Literal or an Operator.
type Body interface {
	isBody()
}

type Literal struct {
	Value uint64
}

type Operator struct {
	Operation Operation
	Packets   []*Packet
}

func (Literal) isBody()  {}
func (Operator) isBody() {}

type Packet struct {
	Version uint8
	TypeID  uint8
	Body    Body
}

func (p *Packet) IsLiteral() bool {
	_, ok := p.Body.(Literal)
	return ok
}

// Value returns the literal value, ok is false for operators.
func (p *Packet) Value() (value uint64, ok bool) {
	if l, isLiteral := p.Body.(Literal); isLiteral {
		return l.Value, true
	}

	return 0, false
}

// Children returns the sub-packets of an operator, nil for literals.
func (p *Packet) Children() []*Packet {
	if op, ok := p.Body.(Operator); ok {
		return op.Packets
	}

	return nil
}

// Walk visits p and every descendant in pre-order.
// Returning false from fn skips the children of that packet.
func Walk(p *Packet, fn func(p *Packet, depth int) bool) {
	walk(p, 0, fn)
}

func walk(p *Packet, depth int, fn func(p *Packet, depth int) bool) {
	if !fn(p, depth) {
		return
	}

	for _, child := range p.Children() {
		walk(child, depth+1, fn)
	}
}
