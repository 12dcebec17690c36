// Command export writes the built-in color tables as JSON or YAML.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/subsurface-colortables/server/pkg/colortable"
)

func main() {
	format := flag.String("format", "json", "Output format: json or yaml")
	name := flag.String("name", "", "Export a single table instead of the whole catalogue")
	out := flag.String("out", "", "Output file (default stdout)")
	flag.Parse()

	if err := run(os.Stdout, *format, *name, *out); err != nil {
		log.Fatalf("export: %v", err)
	}
}

func run(stdout io.Writer, format, name, out string) error {
	f, err := colortable.ParseFormat(format)
	if err != nil {
		return err
	}

	var v any = colortable.Default().Tables()
	if name != "" {
		t, err := colortable.Default().Get(name)
		if err != nil {
			return err
		}
		v = t
	}

	w := stdout
	if out != "" {
		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		defer file.Close()
		w = file
	}

	return colortable.Encode(w, f, v)
}
