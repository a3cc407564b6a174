// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// gentables generates the Latin-1 case tables used by utf16case and
// verifies the assumptions the fast path makes about them. The tables
// must be regenerated if this code is changed (`go generate`).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"unicode"
	"unicode/utf16"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/rangetable"
)

func init() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout) // use stdout instead of stderr
}

const maxLatin1 = 0x100

func buildTables() (upper, lower [maxLatin1]uint16) {
	for c := rune(0); c < maxLatin1; c++ {
		u := unicode.ToUpper(c)
		l := unicode.ToLower(c)
		if u > 0xFFFF || l > 0xFFFF {
			log.Panicf("simple case mapping of %U leaves the BMP: %U / %U", c, u, l)
		}
		upper[c] = uint16(u)
		lower[c] = uint16(l)
	}
	return upper, lower
}

// verifyBMP sweeps every cased BMP letter and checks the two assumptions
// baked into the converter:
//
//  1. simple case mappings of BMP code points stay in the BMP, so a 1:1
//     replacement never needs a surrogate pair;
//  2. for Latin-1 code units the generated tables equal the full Unicode
//     mapping of x/text/cases after length reconciliation (replacements
//     whose UTF-16 length differs from 1 fall back to the original).
//
// It returns the cased Latin-1 runes whose full invariant mapping is
// suppressed by reconciliation, for the generation report.
func verifyBMP(upper, lower *[maxLatin1]uint16) []rune {
	cased := rangetable.Merge(unicode.Lu, unicode.Ll, unicode.Lt)

	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(0xFFFF)
	} else {
		bar = progressbar.DefaultSilent(0xFFFF)
	}

	toUpper := cases.Upper(language.Und)
	toLower := cases.Lower(language.Und)

	var suppressed []rune
	for c := rune(0); c <= 0xFFFF; c++ {
		bar.Add(1)
		if utf16.IsSurrogate(c) || !unicode.Is(cased, c) {
			continue
		}
		if u := unicode.ToUpper(c); u > 0xFFFF {
			log.Panicf("ToUpper(%U) = %U leaves the BMP", c, u)
		}
		if l := unicode.ToLower(c); l > 0xFFFF {
			log.Panicf("ToLower(%U) = %U leaves the BMP", c, l)
		}
		if c >= maxLatin1 {
			continue
		}
		checkLatin1(c, upper[c], toUpper, &suppressed)
		checkLatin1(c, lower[c], toLower, &suppressed)
	}
	bar.Finish()

	slices.Sort(suppressed)
	return slices.Compact(suppressed)
}

// checkLatin1 checks one table entry against the full mapping of caser
// after length reconciliation.
func checkLatin1(c rune, got uint16, caser cases.Caser, suppressed *[]rune) {
	full := utf16.Encode([]rune(caser.String(string(c))))
	want := uint16(c) // reconciliation keeps the original
	if len(full) == 1 {
		want = full[0]
	} else {
		*suppressed = append(*suppressed, c)
	}
	if got != want {
		log.Panicf("table mapping of %U is %U, want: %U", c, rune(got), rune(want))
	}
}

func writeTables(name string, upper, lower *[maxLatin1]uint16) {
	var w bytes.Buffer
	fmt.Fprintf(&w, "// Code generated by internal/gentables. DO NOT EDIT.\n\n")
	fmt.Fprintf(&w, "package utf16case\n\n")
	fmt.Fprintf(&w, "// unicodeVersion is the Unicode version the tables below were built\n")
	fmt.Fprintf(&w, "// against. The Latin-1 simple mappings have been stable since Unicode 1.1.\n")
	fmt.Fprintf(&w, "const unicodeVersion = %q\n\n", unicode.Version)
	writeTable(&w, "_upper", upper)
	writeTable(&w, "_lower", lower)

	src, err := format.Source(w.Bytes())
	if err != nil {
		log.Panicf("formatting generated source: %v", err)
	}
	if err := os.WriteFile(name, src, 0644); err != nil {
		log.Panic(err)
	}
}

func writeTable(w *bytes.Buffer, name string, table *[maxLatin1]uint16) {
	fmt.Fprintf(w, "var %s = [%d]uint16{\n", name, maxLatin1)
	for i := 0; i < maxLatin1; i += 8 {
		w.WriteByte('\t')
		for j := i; j < i+8; j++ {
			fmt.Fprintf(w, "0x%04X, ", table[j])
		}
		fmt.Fprintf(w, "// 0x%02X\n", i)
	}
	fmt.Fprintf(w, "}\n\n")
}

func main() {
	skipChecks := flag.Bool("skip-checks", false,
		"skip the BMP verification sweep (DEV ONLY)")
	dryRun := flag.Bool("dry-run", false,
		"verify and report but do not write tables.go")
	outfile := flag.String("o", "tables.go", "output `file` name")
	flag.Parse()

	upper, lower := buildTables()
	if !*skipChecks {
		suppressed := verifyBMP(&upper, &lower)
		log.Printf("verified BMP sweep: %d Latin-1 mappings suppressed by reconciliation: %q",
			len(suppressed), suppressed)
	}
	if *dryRun {
		log.Println("dry-run: exiting")
		return
	}
	writeTables(*outfile, &upper, &lower)
	log.Printf("wrote %s (Unicode %s)", *outfile, unicode.Version)
}
