package cpu

import (
	"math/big"
)

// doAlu performs the requested ALU action on signed operands, and returns
// the result if it fits in a signed word.
func doAlu(op CodeOp, a int, b int) (value int, err error) {
	switch op {
	case OP_ADD: // add
		value = a + b
	case OP_SUB: // sub
		value = a - b
	case OP_AND: // and
		value = a & b
	case OP_XOR: // xor
		value = a ^ b
	case OP_SHL: // shl
		if b < 0 {
			err = MakeErrRange(b)
			return
		}
		switch {
		case a == 0:
			value = 0
		case b > 47:
			// The result does not fit in a machine integer.
			err = ErrRange{Value: new(big.Int).Lsh(big.NewInt(int64(a)), uint(b))}
			return
		default:
			value = a << b
		}
	case OP_SHR: // shr
		if b < 0 {
			err = MakeErrRange(b)
			return
		}
		value = a >> b
	default:
		err = ErrOpcodeInvalid
		return
	}

	if !InRange(value) {
		err = MakeErrRange(value)
		value = 0
	}

	return
}
