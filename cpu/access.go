package cpu

// load reads a memory word. A read of ADDR_IO first fetches a value from
// the console gateway into memory.
func (cpu *Cpu) load(addr uint8) (value Word, err error) {
	if addr == ADDR_IO {
		var input uint16
		input, err = cpu.receive()
		if err != nil {
			return
		}
		cpu.Memory[addr] = Word(input)
	}

	value = cpu.Memory[addr]

	return
}

// store writes a memory word. A write to ADDR_IO is also sent to the
// console gateway, before memory is updated.
func (cpu *Cpu) store(addr uint8, value Word) (err error) {
	if addr == ADDR_IO {
		err = cpu.send(value)
		if err != nil {
			return
		}
	}

	cpu.Memory[addr] = value

	return
}

func (cpu *Cpu) receive() (value uint16, err error) {
	if cpu.Gateway == nil {
		err = ErrGatewayMissing
		return
	}

	return cpu.Gateway.Receive()
}

func (cpu *Cpu) send(value Word) (err error) {
	if cpu.Gateway == nil {
		err = ErrGatewayMissing
		return
	}

	return cpu.Gateway.Send(uint16(value))
}
