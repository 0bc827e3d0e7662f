package protocol

import (
	"strconv"
	"strings"
)

// String renders the packet tree in prefix form, e.g. "(+ 1 (* 2 3))".
func (p *Packet) String() string {
	var sb strings.Builder
	p.writePrefix(&sb)
	return sb.String()
}

func (p *Packet) writePrefix(sb *strings.Builder) {
	switch body := p.Body.(type) {
	case Literal:
		sb.WriteString(strconv.FormatUint(body.Value, 10))
	case Operator:
		sb.WriteString("(")
		sb.WriteString(body.Operation.Symbol())
		for _, child := range body.Packets {
			sb.WriteString(" ")
			child.writePrefix(sb)
		}
		sb.WriteString(")")
	default:
		sb.WriteString("<nil>")
	}
}

// Infix renders the packet tree as a conventional infix expression.
// Minimum and maximum become min(...) and max(...) calls and comparisons
// are turned into 1/0 with a ternary, e.g. "((5 < 15) ? 1 : 0)".
func (p *Packet) Infix() string {
	switch body := p.Body.(type) {
	case Literal:
		return strconv.FormatUint(body.Value, 10)
	case Operator:
		operands := make([]string, 0, len(body.Packets))
		for _, child := range body.Packets {
			operands = append(operands, child.Infix())
		}

		switch body.Operation {
		case Sum:
			if len(operands) == 0 {
				return "0"
			}
			return "(" + strings.Join(operands, " + ") + ")"
		case Product:
			if len(operands) == 0 {
				return "1"
			}
			return "(" + strings.Join(operands, " * ") + ")"
		case Minimum, Maximum:
			return body.Operation.String() + "(" + strings.Join(operands, ", ") + ")"
		default:
			return "((" + strings.Join(operands, " "+body.Operation.Symbol()+" ") + ") ? 1 : 0)"
		}
	default:
		return ""
	}
}
