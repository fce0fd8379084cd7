// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/toy/cpu"
	"github.com/ezrec/toy/emulator"
)

func main() {
	var debug bool
	var ascii bool
	var entry string
	var input string
	var output string
	var watch string
	var strict bool

	flag.BoolVar(&debug, "d", false, "Trace each instruction before it executes")
	flag.BoolVar(&ascii, "a", false, "Console I/O as ASCII characters")
	flag.StringVar(&entry, "pc", "10", "Entry point (hex)")
	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.StringVar(&watch, "w", "", "Only trace when this expression is true")
	flag.BoolVar(&strict, "strict", false, "Reject unrecognized listing lines")

	flag.Parse()

	if flag.NArg() > 2 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[2:])
	}

	stdin := bufio.NewReader(os.Stdin)

	// toy [FILE [1]]
	var listing string
	if flag.NArg() >= 1 {
		listing = flag.Arg(0)
	}
	if flag.NArg() == 2 {
		debug = debug || flag.Arg(1) == "1"
	}
	if len(listing) == 0 {
		fmt.Print("File name: ")
		line, err := stdin.ReadString('\n')
		if err != nil && len(line) == 0 {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		listing = strings.TrimSpace(line)
	}

	pc, err := strconv.ParseUint(entry, 16, 8)
	if err != nil {
		log.Fatalf("%v: -pc %v: %v", os.Args[0], entry, err)
	}

	inf, err := os.Open(listing)
	if err != nil {
		log.Fatalf("%v: %v", listing, err)
	}
	defer inf.Close()

	ld := &cpu.Loader{Verbose: debug, Strict: strict}
	prog, err := ld.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", listing, err)
	}
	prog.Pc = int(pc)

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Config = emulator.Config{Debug: debug, Ascii: ascii}
	if len(watch) != 0 {
		emu.Watch = emulator.NewWatch(watch)
	}

	if input == "-" {
		emu.Console.Input = stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Console.Input = inf
	}

	if output == "-" {
		emu.Console.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Console.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		if debug {
			log.Printf("%v: state\n%v", listing, emu.Cpu.String())
		}
		log.Fatal(err)
	}
}
