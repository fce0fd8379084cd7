package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PROMPT is written before every console read.
const PROMPT = ": "

// Console provides line oriented console I/O for address 0xFF.
// It wraps an io.Reader for input and io.Writer for output, converting
// between text lines and machine words.
type Console struct {
	Input  io.Reader
	Output io.Writer
	Ascii  bool   // If set, words are character codes.
	Prompt string // Written before a read; PROMPT if empty.

	reader *bufio.Reader
	source io.Reader
}

var _ Gateway = (*Console)(nil)

// Rewind drops any buffered input.
func (con *Console) Rewind() {
	con.reader = nil
	con.source = nil
}

func (con *Console) readLine() (line string, err error) {
	if con.Input == nil {
		err = ErrInputEmpty
		return
	}

	if con.reader == nil || con.source != con.Input {
		con.reader = bufio.NewReader(con.Input)
		con.source = con.Input
	}

	line, err = con.reader.ReadString('\n')
	if err == io.EOF && len(line) > 0 {
		err = nil
	}
	if err == io.EOF {
		err = ErrInputEmpty
	}
	if err != nil {
		return
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return
}

// Receive prompts for and reads one line of input.
//
// In ASCII mode the value is the code of the first character, and an
// empty line is the newline character. Otherwise the line must hold a
// hexadecimal word of one to four digits.
func (con *Console) Receive() (value uint16, err error) {
	if con.Output != nil {
		prompt := con.Prompt
		if len(prompt) == 0 {
			prompt = PROMPT
		}
		_, err = io.WriteString(con.Output, prompt)
		if err != nil {
			return
		}
	}

	line, err := con.readLine()
	if err != nil {
		return
	}

	if con.Ascii {
		if len(line) == 0 {
			value = '\n'
			return
		}
		r := []rune(line)[0]
		if r > 0xffff {
			// Does not fit in a word.
			err = ErrParseValue(line)
			return
		}
		value = uint16(r)
		return
	}

	value, err = ParseWord(line)
	return
}

// Send writes the word and its decoded form.
func (con *Console) Send(value uint16) (err error) {
	if con.Output == nil {
		return
	}

	_, err = io.WriteString(con.Output, Echo(value, con.Ascii)+"\n")
	return
}

// ParseWord parses a hexadecimal word of one to four digits, with an
// optional 0x prefix.
func ParseWord(text string) (value uint16, err error) {
	digits := strings.TrimSpace(text)
	digits = strings.TrimPrefix(strings.TrimPrefix(digits, "0x"), "0X")
	if len(digits) == 0 || len(digits) > 4 {
		err = ErrParseValue(text)
		return
	}

	v64, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		err = ErrParseValue(text)
		return
	}

	value = uint16(v64)
	return
}

// Echo formats a word as written to the console: the 4-hex-digit word,
// then the character (ASCII mode) or the signed decimal value.
func Echo(value uint16, ascii bool) string {
	if ascii {
		return fmt.Sprintf("> %04X, %c", value, rune(value))
	}
	return fmt.Sprintf("> %04X, %d", value, int16(value))
}
