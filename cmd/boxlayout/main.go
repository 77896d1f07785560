/*
Boxlayout lays out an HTML document and reports the resulting geometry.

Usage:

	boxlayout [flags] document.html

The flags are:

	-width n     width of the viewport in pixels; 0 lays out at natural width
	-font name   initial font family
	-mono        measure text with a monospace measurer, 10 pixels per cell
	-trace l     trace level [Debug|Info|Error]
	-png file    paint the laid out document into a PNG file
	-dot file    write the box tree in GraphViz DOT format
	-dump        print an indented dump of the box tree
	-tree        print the box tree
	-i           query boxes by CSS selectors, interactively

Images referenced by the document are loaded in the background. As soon as
their sizes are known, the document is laid out again.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"

	"github.com/npillmayer/cssbox/core"
	"github.com/npillmayer/cssbox/core/dimen"
	"github.com/npillmayer/cssbox/core/font"
	"github.com/npillmayer/cssbox/core/parameters"
	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/cssbox/engine/frame/boxtree"
	"github.com/npillmayer/cssbox/engine/frame/framedebug"
	"github.com/npillmayer/cssbox/engine/frame/layout"
	"github.com/npillmayer/cssbox/engine/glyphing/monospace"
	htmlinput "github.com/npillmayer/cssbox/input/html"
)

// tracer traces with key 'cssbox.cli'
func tracer() tracing.Trace {
	return tracing.Select("cssbox.cli")
}

// tracing keys configured by -trace
var traceKeys = []string{
	"cssbox.cli", "cssbox.core", "cssbox.input", "cssbox.resources",
	"cssbox.boxtree", "cssbox.frame", "cssbox.layout", "cssbox.inline",
	"cssbox.table", "cssbox.paint", "cssbox.gfx", "cssbox.font",
}

type options struct {
	width    float64
	font     string
	mono     bool
	png      string
	dot      string
	dump     bool
	tree     bool
	query    bool
	timeout  time.Duration
	document string
}

func main() {
	initDisplay()
	opts := options{}
	flag.Float64Var(&opts.width, "width", 800, "Viewport width in pixels, 0 for natural width")
	flag.StringVar(&opts.font, "font", "", "Initial font family")
	flag.BoolVar(&opts.mono, "mono", false, "Use monospace text measuring")
	flag.StringVar(&opts.png, "png", "", "Paint into PNG file")
	flag.StringVar(&opts.dot, "dot", "", "Write box tree as GraphViz DOT file")
	flag.BoolVar(&opts.dump, "dump", false, "Print a dump of the box tree")
	flag.BoolVar(&opts.tree, "tree", false, "Print the box tree")
	flag.BoolVar(&opts.query, "i", false, "Query boxes interactively")
	flag.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Timeout for loading images")
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	flag.Parse()
	//
	// set up logging
	conf := testconfig.Conf{
		"tracing.adapter": "go",
	}
	for _, key := range traceKeys {
		conf["trace."+key] = *tlevel
	}
	if opts.font != "" {
		conf[parameters.KeyFontFamily] = opts.font
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Infof("Trace level is %s", *tlevel)
	//
	if flag.NArg() != 1 {
		pterm.Error.Println("Usage: boxlayout [flags] document.html")
		flag.PrintDefaults()
		os.Exit(2)
	}
	opts.document = flag.Arg(0)
	if err := run(opts, parameters.FromConfig(conf)); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func run(opts options, params *parameters.LayoutParameters) error {
	doc, err := htmlinput.Load(opts.document)
	if err != nil {
		return err
	}
	var measurer font.Measurer = font.NewMeasurer(nil)
	if opts.mono {
		measurer = monospace.Measurer(10, nil)
	}
	tree, err := boxtree.BuildBoxTree(doc.Root, measurer, params)
	if err != nil {
		return err
	}
	elog := &frame.ErrorLog{}
	tree.Reporter = elog
	if title := doc.Title(); title != "" {
		pterm.Info.Printf("Laying out %q (%d boxes)\n", title, tree.Len())
	}
	lay := viewport{tree: tree, width: dimen.Dimen(opts.width)}
	size := lay.layout()
	//
	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()
	if loadImages(ctx, tree, doc) {
		size = lay.layout()
	}
	pterm.Info.Printf("Document size is %.2f × %.2f\n", float64(size.W), float64(size.H))
	for _, err := range elog.Errors {
		pterm.Error.Printf("[%d] %s\n", core.Code(err), core.UserMessage(err))
		tracer().Debugf("%v", err)
	}
	//
	if opts.dump {
		if err := framedebug.Dump(tree, os.Stdout); err != nil {
			return err
		}
	}
	if opts.tree {
		printTree(tree)
	} else if !opts.dump && !opts.query {
		printBoxes(boxesOf(tree))
	}
	if opts.dot != "" {
		if err := writeFile(opts.dot, func(f *os.File) error { return framedebug.ToGraphViz(tree, f) }); err != nil {
			return err
		}
	}
	if opts.png != "" {
		if err := writeFile(opts.png, func(f *os.File) error { return render(tree, size).Shipout(f) }); err != nil {
			return err
		}
		pterm.Success.Printf("Painted document into %s\n", opts.png)
	}
	if opts.query {
		return queryREPL(tree)
	}
	return nil
}

// viewport lays out a tree for a given width.
type viewport struct {
	tree  *frame.Tree
	width dimen.Dimen
}

func (v viewport) layout() dimen.Size {
	if v.width <= 0 {
		return layout.Unconstrained(v.tree)
	}
	root := v.tree.Root()
	root.SetLocation(0, 0)
	root.SetWidth(v.width)
	layout.PerformLayout(v.tree, root.ID())
	return v.tree.ActualSize()
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
