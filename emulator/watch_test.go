package emulator

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/toy/io"
)

func TestWatch_Match(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, sumProgram, t)
	assert.NoError(emu.Reset())
	emu.Cpu.Register[0xa] = 5

	table := [](struct {
		expr  string
		match bool
	}){
		{"True", true},
		{"pc == 0x10", true},
		{"pc == 0x11", false},
		{"RA > 3 and ticks == 0", true},
		{"op == 'ld' and d == 0xa and addr == 0xff", true},
		{"s == 0xf and t == 0xf", true},
		{"M[0x12] == 0x1cab", true},
		{"op in ('st', 'sti')", false},
	}

	for _, entry := range table {
		ok, err := NewWatch(entry.expr).Match(emu)
		assert.NoError(err, entry.expr)
		assert.Equal(entry.match, ok, entry.expr)
	}
}

func TestWatch_Error(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	doLoad(emu, sumProgram, t)

	emu.Watch = NewWatch("pc ==")
	err := emu.Reset()
	assert.Error(err)
	assert.IsType(&ErrWatch{}, err)
	assert.True(strings.HasPrefix(err.Error(), "watch 'pc ==' "))

	emu.Watch = NewWatch("unknown_name > 1")
	err = emu.Reset()
	assert.Error(err)
}

func TestWatch_Trace(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer

	emu := NewEmulator()
	emu.Config = Config{Debug: true}
	emu.Cpu.Logger = log.New(&buf, "", 0)
	emu.Gateway = &io.Script{Inputs: []uint16{1, 2}}
	emu.Watch = NewWatch("op == 'add'")
	doLoad(emu, sumProgram, t)

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	assert.Equal("12: add RA (0001) + RB (0002) -> RC\n", buf.String())
}
