package cpu

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sumListing = `program Sum
// Input: two numbers
// Output: their sum

10: 8AFF   read R[A]
11: 8BFF   read R[B]
12: 1CAB   R[C] <- R[A] + R[B]
13: 9CFF   write R[C]
14: 0000   halt
`

func TestLoader(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}

	prog, err := ld.Parse(strings.NewReader(sumListing))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	expected := []Entry{
		{5, 0x10, 0x8aff, "read R[A]"},
		{6, 0x11, 0x8bff, "read R[B]"},
		{7, 0x12, 0x1cab, "R[C] <- R[A] + R[B]"},
		{8, 0x13, 0x9cff, "write R[C]"},
		{9, 0x14, 0x0000, "halt"},
	}

	assert.Equal(expected, prog.Entries)
	assert.Equal(PC_ENTRY, prog.Pc)
}

func TestLoader_Lines(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		line string
		ok   bool
		addr uint8
		word Word
	}){
		{"plain", "10: 7101", true, 0x10, 0x7101},
		{"comment", "2F: C020 loop", true, 0x2f, 0xc020},
		{"extra_digits", "10: 710123", true, 0x10, 0x7101},
		{"crlf", "10: 7101\r", true, 0x10, 0x7101},
		{"lower_case", "1f: 7101", false, 0, 0},
		{"short_word", "10: 710", false, 0, 0},
		{"long_address", "100: 7101", false, 0, 0},
		{"no_space", "10:7101", false, 0, 0},
		{"two_spaces", "10:  7101", false, 0, 0},
		{"indented", " 10: 7101", false, 0, 0},
		{"text", "function foo", false, 0, 0},
	}

	for _, entry := range table {
		ld := &Loader{}
		prog, err := ld.Parse(strings.NewReader(entry.line))
		assert.NoError(err, entry.name)
		if !entry.ok {
			assert.Empty(prog.Entries, entry.name)
			continue
		}
		if assert.Len(prog.Entries, 1, entry.name) {
			assert.Equal(entry.addr, prog.Entries[0].Address, entry.name)
			assert.Equal(entry.word, prog.Entries[0].Word, entry.name)
		}
	}
}

func TestLoader_Strict(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{Strict: true}

	_, err := ld.Parse(strings.NewReader(sumListing))
	assert.NoError(err)

	prog, err := ld.Parse(strings.NewReader("10: 7101\nbogus line\n11: 0000\n"))
	assert.Nil(prog)
	assert.ErrorIs(err, ErrLineUnknown)

	var syntax ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal(2, syntax.LineNo)
	assert.Equal("bogus line", syntax.Line)
	assert.Equal("line 2 'bogus line' unrecognized line format", err.Error())
}

func TestLoader_Redefine(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}

	prog, err := ld.Parse(strings.NewReader("10: 7101\n10: 7202\n"))
	assert.NoError(err)

	image := prog.Image()
	assert.Equal(Word(0x7202), image[0x10])

	entry, ok := prog.Debug(0x10)
	assert.True(ok)
	assert.Equal(2, entry.LineNo)
}

func TestLoader_Verbose(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	ld := &Loader{Verbose: true, Logger: log.New(&buf, "", 0)}

	_, err := ld.Parse(strings.NewReader("// note\n10: 7101 lda\nbogus\n11: 0000\n"))
	assert.NoError(err)
	assert.Equal("2: M[10] = 7101\n"+
		"3: ignored 'bogus'\n"+
		"4: M[11] = 0000\n", buf.String())
}
