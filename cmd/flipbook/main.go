// Command flipbook generates the stylesheet of flip-book animations.
//
// A flip-book shows the child elements of a container one after the other,
// like the pages of a flip-book. Example:
//
//     flipbook -selector .walk -frames 12 -rate 0.1 -out walk.css
//     flipbook -config page.yaml -markup page.html -html-out page.out.html
//
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/flipbook"
	"github.com/npillmayer/flipbook/config"
	"github.com/npillmayer/flipbook/css"
	"github.com/npillmayer/flipbook/dom"
	"github.com/npillmayer/flipbook/dom/domdbg"
	"github.com/npillmayer/flipbook/frames"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

var traceKeys = []string{
	"flipbook",
	"flipbook.frames",
	"flipbook.css",
	"flipbook.style",
	"flipbook.cssom",
	"flipbook.dom",
	"flipbook.config",
}

func main() {
	selectorPtr := flag.String("selector", "", "Selector of the container element")
	namePtr := flag.String("name", "", "Base name of the @keyframes rules (default: derived from -selector)")
	framesPtr := flag.Int("frames", 0, "Number of frames (default: number of children with -markup)")
	ratePtr := flag.Float64("rate", frames.DefaultRate, "Display time of a frame in seconds")
	alternatePtr := flag.Bool("alternate", true, "Play backwards after each pass")
	var iterations css.IterationCount
	flag.Var(&iterations, "iterations", `Number of passes or "infinite" (default: infinite)`)
	configPtr := flag.String("config", "", "YAML configuration of animations (replaces the animation flags)")
	markupPtr := flag.String("markup", "", "HTML page to bind frames to")
	outPtr := flag.String("out", "", "Stylesheet output file (default: stdout)")
	htmlOutPtr := flag.String("html-out", "", "Write the -markup page with the stylesheet injected")
	specOutPtr := flag.String("spec-out", "", "Write the frame timing as YAML")
	precisionPtr := flag.Int("precision", 0, "Decimals of percentages and durations (default: 5)")
	debugPtr := flag.Bool("debug", false, "Print the frames of each animation to stderr")
	verbosePtr := flag.Bool("v", false, "Trace the generation")

	flag.Parse()

	level := tracing.LevelError
	if *verbosePtr {
		level = tracing.LevelDebug
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}

	var anims []flipbook.Animation
	var opts flipbook.Options
	if *configPtr != "" {
		cfg, err := config.Read(*configPtr)
		if err != nil {
			log.Fatalf("[-] Error reading configuration: %v", err)
		}
		anims = cfg.Build()
		opts = cfg.Options()
		fmt.Fprintf(os.Stderr, "[*] %d animations in %s\n", len(anims), *configPtr)
	} else {
		if *selectorPtr == "" {
			flag.Usage()
			log.Fatalf("[-] Error: either -selector or -config is required")
		}
		p := frames.Params{
			Frames:     *framesPtr,
			Rate:       *ratePtr,
			Alternate:  *alternatePtr,
			Iterations: iterations,
		}
		anims = []flipbook.Animation{{
			Name:    *namePtr,
			Binding: flipbook.Positional(*selectorPtr),
			Params:  p,
		}}
	}
	if *precisionPtr > 0 {
		opts.Precision = *precisionPtr
	}

	var page *html.Node
	if *markupPtr != "" {
		var err error
		if page, err = dom.ParseFile(*markupPtr); err != nil {
			log.Fatalf("[-] Error reading markup: %v", err)
		}
		for i := range anims {
			bindToMarkup(page, &anims[i])
		}
	} else if *htmlOutPtr != "" {
		log.Fatalf("[-] Error: -html-out requires -markup")
	}

	results, sheet, err := flipbook.CompileAll(context.Background(), anims, opts)
	if err != nil {
		log.Fatalf("[-] Error: %v", err)
	}
	if *debugPtr {
		fmt.Fprint(os.Stderr, domdbg.Dump(results...))
	}

	if *outPtr == "" {
		fmt.Print(sheet.String())
	} else {
		if err := os.WriteFile(*outPtr, []byte(sheet.String()), 0644); err != nil {
			log.Fatalf("[-] Error writing stylesheet: %v", err)
		}
		fmt.Fprintf(os.Stderr, "[*] Stylesheet written to %s\n", *outPtr)
	}

	if *specOutPtr != "" {
		for _, r := range results {
			path := specPath(*specOutPtr, r.Name, len(results) > 1)
			if err := frames.WriteSpecFile(r.Spec, path); err != nil {
				log.Fatalf("[-] Error writing timing: %v", err)
			}
			fmt.Fprintf(os.Stderr, "[*] Timing of %s written to %s\n", r.Name, path)
		}
	}

	if *htmlOutPtr != "" {
		if err := dom.InjectStyle(page, sheet); err != nil {
			log.Fatalf("[-] Error: %v", err)
		}
		var buf bytes.Buffer
		if err := dom.Render(&buf, page); err != nil {
			log.Fatalf("[-] Error rendering page: %v", err)
		}
		if err := os.WriteFile(*htmlOutPtr, buf.Bytes(), 0644); err != nil {
			log.Fatalf("[-] Error writing page: %v", err)
		}
		fmt.Fprintf(os.Stderr, "[*] Page written to %s\n", *htmlOutPtr)
	}
}

// bindToMarkup binds the frames of a positional animation to the children
// of its container. The frame count is taken from the markup.
func bindToMarkup(page *html.Node, a *flipbook.Animation) {
	if a.Binding.IsExplicit() {
		return
	}
	b, err := dom.BindMarkup(page, a.Binding.Container)
	if err != nil {
		log.Fatalf("[-] Error binding %s: %v", a.Binding.Container, err)
	}
	if a.Params.Frames != 0 && a.Params.Frames != len(b.Frames) {
		log.Printf("[!] %s: %d frames declared, markup has %d", a.Binding.Container,
			a.Params.Frames, len(b.Frames))
	}
	a.Binding = b
	a.Params.Frames = len(b.Frames)
}

// specPath inserts the animation name into path if there is more than one
// animation: "timing.yaml" ⇒ "timing-walk.yaml".
func specPath(path, name string, many bool) string {
	if !many {
		return path
	}
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + name + ext
}
