// Command snepulator-smoke is a minimal, flag-driven smoke-test harness:
// it loads a ROM, runs it headless for a fixed number of frames, and
// writes the final framebuffer out as a PNG. It is not a front end (no
// windowing, no audio device, no input) — that surface is out of scope;
// this exists to drive the core end to end without one.
package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	"github.com/joppyfurr/snepulator-go/internal/console"
	"github.com/joppyfurr/snepulator-go/internal/romdb"
)

func main() {
	romPath := flag.String("rom", "", "path to a ROM image")
	biosPath := flag.String("bios", "", "path to a BIOS image (ColecoVision only)")
	machine := flag.String("console", "sms", "sms, gg, sg or col")
	frames := flag.Int("frames", 60, "number of frames to run headless")
	pal := flag.Bool("pal", false, "use PAL timing instead of NTSC")
	out := flag.String("out", "snapshot.png", "PNG output path for the final frame")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("missing -rom")
	}

	raw, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("reading rom: %v", err)
	}
	rom, hash := romdb.Prepare(raw)
	hint, known := romdb.Lookup(hash)
	if known {
		log.Printf("matched known title, hints=%#x", hint)
	}

	region := console.RegionNTSC
	if *pal || hint&romdb.HintPALOnly != 0 {
		region = console.RegionPAL
	}

	var c *console.Console
	switch *machine {
	case "sms", "gg":
		kind := mapperKindFor(hint)
		c = console.NewSMS(rom, kind, region)
	case "sg":
		c = console.NewSG1000(rom, hint&romdb.HintSGGraphicBoard != 0, region)
	case "col":
		if *biosPath == "" {
			log.Fatal("ColecoVision requires -bios")
		}
		bios, err := os.ReadFile(*biosPath)
		if err != nil {
			log.Fatalf("reading bios: %v", err)
		}
		c = console.NewColecoVision(bios, rom, region)
	default:
		log.Fatalf("unknown -console %q", *machine)
	}

	for i := 0; i < *frames; i++ {
		c.RunFrame()
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("creating output file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, c.Framebuffer()); err != nil {
		log.Fatalf("encoding png: %v", err)
	}
	log.Printf("wrote %s after %d frames", *out, *frames)
}

func mapperKindFor(hint romdb.Hint) console.MapperKind {
	switch {
	case hint&romdb.HintMapperCodemasters != 0:
		return console.MapperCodemasters
	case hint&romdb.HintMapperKorean != 0:
		return console.MapperKorean
	default:
		return console.MapperSega
	}
}
