package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/pprof"

	"github.com/ushitora-anqou/slotassets/config"
	"github.com/ushitora-anqou/slotassets/firmware"
	"github.com/ushitora-anqou/slotassets/util"
)

var (
	flagExport = flag.String("export", "", "write the asset tables and exit: hex, json, yaml or crc")
	flagOutput = flag.String("o", "", "output file of -export (default: stdout)")
	flagBase   = flag.Uint("base", 0, "load address of the image written by -export hex")
)

func exportAssets(kind string, w io.Writer, base uint32) error {
	switch kind {
	case "hex":
		return firmware.Build(base).WriteHex(w)
	case "json":
		return firmware.NewDump().WriteJSON(w)
	case "yaml":
		return firmware.NewDump().WriteYAML(w)
	case "crc":
		_, err := fmt.Fprintf(w, "0x%04x\n", firmware.Build(base).Checksum())
		return err
	}
	return fmt.Errorf("Unknown export format: %q", kind)
}

func runExport(kind, output string, base uint32) error {
	if output == "" {
		return exportAssets(kind, os.Stdout, base)
	}
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := exportAssets(kind, file, base); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func run() error {
	// Parse options and arguments
	flag.Parse()
	if flag.NArg() > 0 {
		return fmt.Errorf("Usage: %s [-export hex|json|yaml|crc] [-o FILE] [-base ADDR]", os.Args[0])
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Trace {
		util.EnableTrace()
	}

	if *flagExport != "" {
		if *flagBase > 0xffffffff {
			return fmt.Errorf("Invalid base address: 0x%x", *flagBase)
		}
		return runExport(*flagExport, *flagOutput, uint32(*flagBase))
	}

	if cfg.CPUProfile != "" {
		file, err := os.Create(cfg.CPUProfile)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	return runFrontEnd(cfg)
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}
