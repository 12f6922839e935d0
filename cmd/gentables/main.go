// Command gentables computes the attack tables, verifies them, and writes them out as Go
// array literals so they are compiled into the binary instead of built at start-up.
//
//	go run -tags gentables ./cmd/gentables -o tables/tables_gen.go
//
// The gentables tag leaves the old generated file out of the build, so a missing or stale
// file never stops the generator from compiling.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"

	"chess-attacks/board"
	"chess-attacks/tables"
)

const fileTemplate = `// Code generated by cmd/gentables; DO NOT EDIT.

//go:build !gentables

package {{.Package}}

import "chess-attacks/board"

// King and knight attacks, indexed by square.

var generatedKing = [64]board.Bitboard{
{{rows 1 4 (hex64 .King)}}}

var generatedKnight = [64]board.Bitboard{
{{rows 1 4 (hex64 .Knight)}}}

// Pawn pushes and captures, indexed by color and square.

var generatedPawnQuiet = [2][64]board.Bitboard{
{{range .PawnQuiet}}	{
{{rows 2 4 (hex64 .)}}	},
{{end}}}

var generatedPawnCapture = [2][64]board.Bitboard{
{{range .PawnCapture}}	{
{{rows 2 4 (hex64 .)}}	},
{{end}}}

// Sliding attacks on one 8-square line, indexed by position and line occupancy.

var generatedLine = [8][256]uint8{
{{range .Line}}	{
{{rows 2 16 (hex8 .)}}	},
{{end}}}

// Precomputed returns the tables compiled into the binary. It does no table computation
// beyond the line masks and returns the same tables as New.
func Precomputed() *Tables {
	t := &Tables{
		king:        generatedKing,
		knight:      generatedKnight,
		pawnQuiet:   generatedPawnQuiet,
		pawnCapture: generatedPawnCapture,
		line:        generatedLine,
	}
	t.initMasks()
	return t
}
`

type tableData struct {
	Package     string
	King        []board.Bitboard
	Knight      []board.Bitboard
	PawnQuiet   [2][]board.Bitboard
	PawnCapture [2][]board.Bitboard
	Line        [8][]uint8
}

var funcs = template.FuncMap{
	"hex64": func(bbs []board.Bitboard) []string {
		out := make([]string, len(bbs))
		for i, bb := range bbs {
			out[i] = fmt.Sprintf("0x%016x", uint64(bb))
		}
		return out
	},
	"hex8": func(vals []uint8) []string {
		out := make([]string, len(vals))
		for i, v := range vals {
			out[i] = fmt.Sprintf("0x%02x", v)
		}
		return out
	},
	// rows lays out values perLine to a line, each line indented by depth tabs.
	"rows": func(depth, perLine int, vals []string) string {
		var sb strings.Builder
		indent := strings.Repeat("\t", depth)
		for i := 0; i < len(vals); i += perLine {
			end := i + perLine
			if end > len(vals) {
				end = len(vals)
			}
			sb.WriteString(indent)
			sb.WriteString(strings.Join(vals[i:end], ", "))
			sb.WriteString(",\n")
		}
		return sb.String()
	},
}

func collect(t *tables.Tables, pkg string) tableData {
	king, knight := t.KingTable(), t.KnightTable()
	quiet, capture := t.PawnQuietTable(), t.PawnCaptureTable()
	line := t.LineTable()

	d := tableData{
		Package: pkg,
		King:    king[:],
		Knight:  knight[:],
	}
	for c := range quiet {
		d.PawnQuiet[c] = quiet[c][:]
		d.PawnCapture[c] = capture[c][:]
	}
	for pos := range line {
		d.Line[pos] = line[pos][:]
	}
	return d
}

func render(t *tables.Tables, pkg string) ([]byte, error) {
	tmpl, err := template.New("tables").Funcs(funcs).Parse(fileTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, collect(t, pkg)); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func main() {
	out := flag.String("o", "tables_gen.go", "Output file")
	pkg := flag.String("pkg", "tables", "Package name of the generated file")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("gentables: ")

	t := tables.New()
	if err := tables.Verify(t); err != nil {
		log.Fatalf("table verification failed: %v", err)
	}

	src, err := render(t, *pkg)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("write: %v", err)
	}
	log.Printf("wrote %s (%d bytes)", *out, len(src))
}
