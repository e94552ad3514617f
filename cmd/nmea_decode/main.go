// Copyright 2021 Clayton Craft <clayton@craftyguy.net>
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gitlab.com/postmarketOS/gnss_nmea/internal/nmea"
	"gitlab.com/postmarketOS/gnss_nmea/internal/render"
	"gitlab.com/postmarketOS/gnss_nmea/internal/source"
)

func usage() {
	flag.CommandLine.Usage()
}

func main() {
	var output string
	flag.StringVar(&output, "o", "text", "Output format: text, json or yaml.")
	var file string
	flag.StringVar(&file, "f", "", "Read sentences from file, one per line.")
	var help bool
	flag.BoolVar(&help, "h", false, "Print help and quit.")

	flag.Usage = func() {
		fmt.Println("usage: nmea_decode [OPTION...] [SENTENCE...]")
		fmt.Println("Decodes the given sentences, else every line of the file given with -f, else every line of stdin.")
		fmt.Println("Options:")
		flag.PrintDefaults()
	}

	flag.Parse()

	if help {
		usage()
		return
	}

	format, err := render.ParseFormat(output)
	if err != nil {
		log.Fatal(err)
	}

	var src source.Source
	switch {
	case flag.NArg() > 0:
		src = source.NewReader(strings.NewReader(strings.Join(flag.Args(), "\n")))
	case file != "":
		src = source.NewFile(file)
	default:
		src = source.NewReader(os.Stdin)
	}

	failed, err := decode(source.Lines(src, make(chan bool)), os.Stdout, os.Stderr, format)
	if err != nil {
		log.Fatal(err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// decode renders every line that parses to out and reports the others to
// errOut, returning how many failed. Only read and write errors abort.
func decode(lines <-chan source.Line, out io.Writer, errOut io.Writer, format render.Format) (failed int, err error) {
	for l := range lines {
		if l.Error != nil {
			return failed, l.Error
		}

		s, perr := nmea.Parse(string(l.Line))
		if perr != nil {
			failed++
			fmt.Fprintf(errOut, "%s: %s\n", l.Line, nmea.ErrorString(perr))
			continue
		}

		if err = render.Encode(out, s, format); err != nil {
			return
		}
	}
	return
}
