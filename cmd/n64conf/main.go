// Command n64conf identifies N64 ROM images and derives core settings.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/ZaparooProject/go-n64conf"
)

var (
	inputFile  = flag.String("i", "", "input file path (required)")
	homeDir    = flag.String("home", "", "directory holding N64-database.txt files")
	outputFile = flag.String("o", "", "write the normalized big-endian image to this path")
	jsonOutput = flag.Bool("json", false, "output as JSON")
	verbose    = flag.Bool("v", false, "log detection steps to stderr")
	version    = flag.Bool("version", false, "print version and exit")
)

const appVersion = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s -i <file> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Identifies N64 ROM images and derives core settings.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -i game.z64\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i game.v64 -o game.z64\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i game.zip -home ~/.n64conf -json\n", os.Args[0])
	}
	flag.Parse()

	if *version {
		fmt.Printf("n64conf version %s\n", appVersion)
		os.Exit(0)
	}

	if *inputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: input file required (-i)\n")
		flag.Usage()
		os.Exit(1)
	}

	opts := n64conf.Options{HomeDir: *homeDir}
	if *verbose {
		opts.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	var sink *fileSink
	if *outputFile != "" {
		out, err := os.Create(*outputFile) //nolint:gosec // User-provided path is expected
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		sink = &fileSink{file: out}
		opts.Sink = sink
	}

	engine := n64conf.New(opts)

	result, err := engine.LoadFile(*inputFile)
	if sink != nil {
		if closeErr := sink.file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ROM: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		outputJSON(result)
	} else {
		outputText(result)
	}
}

// fileSink streams the normalized image into a file.
type fileSink struct {
	file *os.File
}

func (s *fileSink) Start() {}

func (s *fileSink) Chunk(p []byte) error {
	_, err := s.file.Write(p)
	return err
}

func (s *fileSink) Stop() {}

func outputJSON(result *n64conf.LoadResult) {
	out := struct {
		Format       string `json:"format"`
		HeaderMD5    string `json:"header_md5"`
		FileMD5      string `json:"file_md5"`
		InternalName string `json:"internal_name,omitempty"`
		CartID       string `json:"cart_id,omitempty"`
		Region       string `json:"region,omitempty"`
		Revision     uint8  `json:"revision"`
		Source       string `json:"source"`
		SaveType     string `json:"save_type"`
		System       string `json:"system"`
		CIC          string `json:"cic"`
		ControlPak   bool   `json:"controller_pak"`
		RumblePak    bool   `json:"rumble_pak"`
		TransferPak  bool   `json:"transfer_pak"`
		RTC          bool   `json:"rtc"`
		Diagnostic   string `json:"diagnostic,omitempty"`
	}{
		Format:       result.Format.String(),
		HeaderMD5:    result.HeaderMD5,
		FileMD5:      result.FileMD5,
		InternalName: result.InternalName,
		CartID:       result.Identity.ID,
		Revision:     result.Identity.Revision,
		Source:       result.Source.String(),
		SaveType:     result.Settings.Save.String(),
		System:       result.Settings.System.String(),
		CIC:          result.Settings.CIC.String(),
		ControlPak:   result.Settings.Peripherals.ControllerPak,
		RumblePak:    result.Settings.Peripherals.RumblePak,
		TransferPak:  result.Settings.Peripherals.TransferPak,
		RTC:          result.Settings.Peripherals.RTC,
	}
	if result.Identity.RegionCode != 0 {
		out.Region = string(result.Identity.RegionCode)
	}
	if result.Diagnostic != nil {
		out.Diagnostic = result.Diagnostic.Error()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}

func outputText(result *n64conf.LoadResult) {
	fmt.Printf("Format: %s\n", result.Format)
	if result.InternalName != "" {
		fmt.Printf("Internal Name: %s\n", result.InternalName)
	}
	if result.Identity.ID != "" {
		fmt.Printf("Cart ID: %s\n", result.Identity.ID)
	}
	if result.Identity.RegionCode != 0 {
		fmt.Printf("Region: %c (revision %d)\n", result.Identity.RegionCode, result.Identity.Revision)
	}
	fmt.Printf("Header MD5: %s\n", result.HeaderMD5)
	fmt.Printf("File MD5: %s\n", result.FileMD5)
	fmt.Printf("Source: %s\n", result.Source)

	fmt.Println("\nSettings:")
	fmt.Printf("  System: %s\n", result.Settings.System)
	fmt.Printf("  CIC: %s\n", result.Settings.CIC)
	fmt.Printf("  Save Type: %s\n", result.Settings.Save)
	fmt.Printf("  Controller Pak: %v\n", result.Settings.Peripherals.ControllerPak)
	fmt.Printf("  Rumble Pak: %v\n", result.Settings.Peripherals.RumblePak)
	fmt.Printf("  Transfer Pak: %v\n", result.Settings.Peripherals.TransferPak)
	fmt.Printf("  RTC: %v\n", result.Settings.Peripherals.RTC)

	if result.Diagnostic != nil {
		fmt.Printf("\nDiagnostic: %v\n", result.Diagnostic)
	}
}
