package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_Signed(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   Word
		signed int
	}){
		{0x0000, 0},
		{0x0001, 1},
		{0x7fff, 32767},
		{0x8000, -32768},
		{0xfffe, -2},
		{0xffff, -1},
	}

	for _, entry := range table {
		assert.Equal(entry.signed, entry.word.Signed(), entry.word.String())
		assert.Equal(entry.word, MakeWord(entry.signed), entry.word.String())
	}
}

func TestWord_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	for n := range 0x10000 {
		w := Word(n)
		signed := w.Signed()
		if !assert.True(InRange(signed)) {
			break
		}
		if !assert.Equal(w, MakeWord(signed)) {
			break
		}
		if !assert.Equal(signed, MakeWord(signed).Signed()) {
			break
		}
	}
}

func TestWord_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0000", Word(0).String())
	assert.Equal("002A", Word(0x2a).String())
	assert.Equal("FFFF", MakeWord(-1).String())
}

func TestInRange(t *testing.T) {
	assert := assert.New(t)

	assert.True(InRange(WORD_MIN))
	assert.True(InRange(WORD_MAX))
	assert.False(InRange(WORD_MIN - 1))
	assert.False(InRange(WORD_MAX + 1))
}
