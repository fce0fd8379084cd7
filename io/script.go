package io

// Script is a non-interactive gateway. Inputs are consumed in order, and
// every output word is recorded.
type Script struct {
	Inputs  []uint16
	Outputs []uint16

	ReadIndex int
}

var _ Gateway = (*Script)(nil)

// Rewind restarts the input queue and clears the recorded output.
func (sc *Script) Rewind() {
	sc.ReadIndex = 0
	sc.Outputs = sc.Outputs[:0]
}

// Receive returns the next queued input, or ErrInputEmpty once the
// queue is drained.
func (sc *Script) Receive() (value uint16, err error) {
	if sc.ReadIndex >= len(sc.Inputs) {
		err = ErrInputEmpty
		return
	}

	value = sc.Inputs[sc.ReadIndex]
	sc.ReadIndex++

	return
}

// Send records the output word.
func (sc *Script) Send(value uint16) (err error) {
	sc.Outputs = append(sc.Outputs, value)
	return
}
