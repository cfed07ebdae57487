package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vista6040/vistamap/internal/landmark"

	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type Options struct {
	Input  string `short:"i" long:"in" description:"Landmark dataset (YAML). Reads from stdin if '-', embedded dataset if empty"`
	Output string `short:"o" long:"out" description:"Output file path. Writes to stdout if empty"`
	Format string `short:"f" long:"format" description:"Output format" choice:"json" choice:"yaml" default:"json"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// Read Input
	var set *landmark.Set
	var err error

	switch opts.Input {
	case "":
		set, err = landmark.Default()
	case "-":
		var data []byte
		data, err = io.ReadAll(os.Stdin)
		if err == nil {
			set, err = landmark.Parse(data)
		}
	default:
		set, err = landmark.Load(opts.Input)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading landmarks: %v\n", err)
		os.Exit(1)
	}

	fc := set.FeatureCollection()

	// marshal
	var outputData []byte
	if opts.Format == "yaml" {
		// round trip through JSON so geometry keeps its GeoJSON shape
		var generic map[string]interface{}
		raw, jerr := fc.MarshalJSON()
		if jerr == nil {
			jerr = json.Unmarshal(raw, &generic)
		}
		if jerr != nil {
			err = jerr
		} else {
			outputData, err = yaml.Marshal(generic)
		}
	} else {
		outputData, err = json.MarshalIndent(fc, "", "  ")
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling data: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		err = os.WriteFile(opts.Output, outputData, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Successfully converted %d landmarks to %s (format: %s)\n", set.Len(), opts.Output, opts.Format)
	} else {
		fmt.Println(string(outputData))
	}
}
