// Command blfdump is a small inspection tool for BLF files: it prints the
// FileStatistics header, a per-ObjectType histogram, and/or one line per
// event record, in the flag-driven, stderr-usage-banner register of
// GzipFileBuffer's command-line tool rather than a structured logger the
// library itself has no use for.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/carlosdem/vector-blf"
	"github.com/carlosdem/vector-blf/event"
	"github.com/carlosdem/vector-blf/format"
)

func main() {
	app := &cli.App{
		Name:      "blfdump",
		Usage:     "inspect Vector BLF log files",
		ArgsUsage: "<file.blf>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print the FileStatistics header",
			},
			&cli.BoolFlag{
				Name:  "types",
				Usage: "print a histogram of event counts by ObjectType",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "stop dumping after this many records (0 means no limit)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "blfdump: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("blfdump: missing <file.blf> argument", 1)
	}

	f, err := blf.Open(path, blf.ModeRead)
	if err != nil {
		return cli.Exit(fmt.Sprintf("blfdump: %v", err), 1)
	}
	defer f.Close()

	printStats := c.Bool("stats")
	printTypes := c.Bool("types")
	limit := c.Int("limit")

	if !printStats && !printTypes {
		return dumpRecords(c.App.Writer, f, limit)
	}

	if printStats {
		printFileStatistics(c.App.Writer, f)
	}
	if printTypes {
		if err := printTypeHistogram(c.App.Writer, f); err != nil {
			return cli.Exit(fmt.Sprintf("blfdump: %v", err), 1)
		}
	}
	return nil
}

func printFileStatistics(w io.Writer, f *blf.File) {
	st := f.Stats()
	fmt.Fprintf(w, "fileSize:             %d\n", st.FileSize)
	fmt.Fprintf(w, "uncompressedFileSize: %d\n", st.UncompressedFileSize)
	fmt.Fprintf(w, "objectCount:          %d\n", st.ObjectCount)
	fmt.Fprintf(w, "objectsRead:          %d\n", st.ObjectsRead)
	fmt.Fprintf(w, "applicationID:        %d\n", st.ApplicationID)
	fmt.Fprintf(w, "apiVersion:           %d.%d.%d.%d\n",
		st.APIMajor, st.APIMinor, st.APIBuild, st.APIPatch)
}

func printTypeHistogram(w io.Writer, f *blf.File) error {
	counts := map[format.ObjectType]int{}
	for {
		rec, err := f.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		counts[rec.Type()]++
	}
	for t, n := range counts {
		fmt.Fprintf(w, "type=%-4d count=%d known=%v\n", t, n, event.IsKnown(t))
	}
	return nil
}

func dumpRecords(w io.Writer, f *blf.File, limit int) error {
	n := 0
	for {
		if limit > 0 && n >= limit {
			break
		}
		rec, err := f.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return cli.Exit(fmt.Sprintf("blfdump: %v", err), 1)
		}
		fmt.Fprintf(w, "%6d  type=%-4d headerVersion=%d objectSize=%d known=%v\n",
			n, rec.Type(), rec.Header().HeaderVersion, rec.Header().ObjectSize, event.IsKnown(rec.Type()))
		n++
	}
	return nil
}
