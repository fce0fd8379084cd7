// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// listingLine is a single memory definition, `AA: WWWW comment`.
type listingLine struct {
	Address string   `@Hex Colon`
	Word    string   `Space @Hex`
	Comment []string `@(Hex | Colon | Space | Rest)*`
}

var listingLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Hex", Pattern: `[0-9A-F]+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Space", Pattern: ` `},
	{Name: "Rest", Pattern: `[^\n]+`},
})

var listingParser = participle.MustBuild[listingLine](
	participle.Lexer(listingLexer),
)

// Lines with these prefixes are never memory definitions.
var ignoredPrefix = []string{
	"//",
	"program",
	"function",
}

// Loader reads TOY program listings.
type Loader struct {
	Verbose bool        // If set, verbosely logs the loader actions.
	Strict  bool        // If set, unrecognized lines are errors.
	Logger  *log.Logger // Log destination; log.Default() if nil.
}

func (ld *Loader) logger() *log.Logger {
	if ld.Logger != nil {
		return ld.Logger
	}
	return log.Default()
}

// parseLine parses a memory definition line.
func (ld *Loader) parseLine(line string) (entry Entry, ok bool) {
	parsed, err := listingParser.ParseString("", line)
	if err != nil {
		return
	}

	if len(parsed.Address) != 2 || len(parsed.Word) < 4 {
		return
	}

	addr, err := strconv.ParseUint(parsed.Address, 16, 8)
	if err != nil {
		return
	}

	// Extra digits past the fourth are commentary.
	word, err := strconv.ParseUint(parsed.Word[:4], 16, 16)
	if err != nil {
		return
	}

	entry = Entry{
		Address: uint8(addr),
		Word:    Word(word),
		Comment: strings.TrimSpace(parsed.Word[4:] + strings.Join(parsed.Comment, "")),
	}
	ok = true

	return
}

// ignored returns true for comments, declarations, and blank lines.
func ignored(line string) bool {
	if len(strings.TrimSpace(line)) == 0 {
		return true
	}

	for _, prefix := range ignoredPrefix {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}

	return false
}

// Parse parses a listing into a Program, with the conventional entry point.
func (ld *Loader) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{Pc: PC_ENTRY}

	for scanner.Scan() {
		line = strings.TrimSuffix(scanner.Text(), "\r")
		lineno += 1

		entry, ok := ld.parseLine(line)
		if ok {
			entry.LineNo = lineno
			if ld.Verbose {
				ld.logger().Printf("%v: M[%02X] = %v", lineno, entry.Address, entry.Word)
			}
			prog.Entries = append(prog.Entries, entry)
			continue
		}

		if ignored(line) {
			continue
		}

		if ld.Strict {
			err = ErrLineUnknown
			prog = nil
			return
		}

		if ld.Verbose {
			ld.logger().Printf("%v: ignored '%v'", lineno, line)
		}
	}

	err = scanner.Err()
	if err != nil {
		prog = nil
	}

	return
}
