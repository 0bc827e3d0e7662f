package protocol

import (
	"github.com/pkg/errors"
)

// SumOfVersions adds up the version of p and of every packet below it.
func SumOfVersions(p *Packet) uint64 {
	sum := uint64(p.Version)
	for _, child := range p.Children() {
		sum += SumOfVersions(child)
	}

	return sum
}

// Evaluate computes the value of the expression rooted at p.
func Evaluate(p *Packet) (uint64, error) {
	switch body := p.Body.(type) {
	case Literal:
		return body.Value, nil
	case Operator:
		return evaluateOperator(body)
	default:
		return 0, errors.Errorf("protocol: packet has no body (type id %d)", p.TypeID)
	}
}

func evaluateOperator(op Operator) (uint64, error) {
	values := make([]uint64, 0, len(op.Packets))
	for _, child := range op.Packets {
		v, err := Evaluate(child)
		if err != nil {
			return 0, err
		}

		values = append(values, v)
	}

	if op.Operation.IsComparison() {
		return compare(op.Operation, values)
	}

	switch op.Operation {
	case Sum:
		var sum uint64
		for _, v := range values {
			sum += v
		}
		return sum, nil
	case Product:
		product := uint64(1)
		for _, v := range values {
			product *= v
		}
		return product, nil
	case Minimum, Maximum:
		if len(values) == 0 {
			return 0, errors.Wrapf(ErrEmptyReduction, "%s", op.Operation)
		}

		result := values[0]
		for _, v := range values[1:] {
			if (op.Operation == Minimum && v < result) || (op.Operation == Maximum && v > result) {
				result = v
			}
		}
		return result, nil
	default:
		return 0, errors.Wrapf(ErrUnknownOperation, "%s", op.Operation)
	}
}

// compare yields 1 when the comparison holds between exactly two values, else 0.
func compare(operation Operation, values []uint64) (uint64, error) {
	if len(values) != 2 {
		return 0, errors.Wrapf(ErrArity, "%s has %d operands", operation, len(values))
	}

	var holds bool
	switch operation {
	case GreaterThan:
		holds = values[0] > values[1]
	case LessThan:
		holds = values[0] < values[1]
	default:
		holds = values[0] == values[1]
	}

	if holds {
		return 1, nil
	}
	return 0, nil
}
