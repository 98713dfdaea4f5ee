// Command levelconv converts a Tiled map into the grid text format.
//
// Usage:
//
//	levelconv -in maps/tower.tmx -out assets/levels/tower.txt
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/sweeper/grid"
)

func main() {
	in := flag.String("in", "", "Tiled map (.tmx) to convert")
	out := flag.String("out", "", "Output file (default: stdout)")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	dir, name := filepath.Split(*in)
	if dir == "" {
		dir = "."
	}
	g, err := grid.LoadTMX(os.DirFS(dir), name)
	if err != nil {
		log.Fatalf("Failed to convert: %v", err)
	}

	// Round-trip through the decoder so a bad map never produces a file.
	text := g.Encode()
	if _, err := grid.Decode(text); err != nil {
		log.Fatalf("Converted grid does not decode: %v", err)
	}

	if *out == "" {
		os.Stdout.WriteString(text)
		return
	}
	if err := os.WriteFile(*out, []byte(text), 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
	log.Printf("Wrote %s (%dx%d, %d commands)", *out, g.W, g.H, len(g.Meta))
}
