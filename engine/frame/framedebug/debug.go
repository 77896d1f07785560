/*
Package framedebug writes box trees in formats useful for debugging:
GraphViz DOT files and indented text dumps of box geometry.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"fmt"
	"image/color"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/cssbox/engine/frame"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cssbox.frame'.
func tracer() tracing.Trace {
	return tracing.Select("cssbox.frame")
}

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// maxNodes guards against erroneous trees.
const maxNodes = 5000

// ToGraphViz creates a graphical representation of a box tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
// Text boxes show a preview of their text, other boxes their display mode,
// tag and border box.
func ToGraphViz(tree *frame.Tree, w io.Writer) error {
	header, err := template.New("boxTree").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"istext":      isTextBox,
			"label":       label,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return err
	}
	if root := tree.Root(); root != nil {
		if err = boxes(root, w, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func boxes(b *frame.Box, w io.Writer, gparams *graphParamsType) error {
	gparams.cnt++
	if gparams.cnt == maxNodes {
		tracer().Errorf("box tree too large for GraphViz output, stopping at %s", b)
		return nil
	}
	if err := gparams.BoxTmpl.Execute(w, &cbox{C: b, Name: nodeName(b), Fill: fill(b)}); err != nil {
		return err
	}
	kids := b.ChildBoxes()
	if m := b.Marker(); m != nil {
		kids = append([]*frame.Box{m}, kids...)
	}
	for _, child := range kids {
		if err := boxes(child, w, gparams); err != nil {
			return err
		}
		e := cedge{N1: cbox{C: b, Name: nodeName(b)}, N2: cbox{C: child, Name: nodeName(child)}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

// Helper structs
type cbox struct {
	C    *frame.Box
	Name string
	Fill string
}

type cedge struct {
	N1, N2 cbox
}

func nodeName(b *frame.Box) string {
	return fmt.Sprintf("node%05d", b.ID())
}

func fill(b *frame.Box) string {
	bg := b.BackgroundColor()
	if bg.A == 0 {
		return "lightblue3"
	}
	return colorString(bg)
}

func colorString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func shortText(box *cbox) string {
	txt, _ := box.C.Text()
	s := fmt.Sprintf("\"%s \\\"", "T")
	if r := []rune(txt); len(r) > 10 {
		s += string(r[:10]) + "…\\\"\""
	} else {
		s += txt + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

func label(b *frame.Box) string {
	return "\"" + BoxLabel(b) + "\""
}

// BoxLabel is a short description of a box: display symbol, tag and
// border box.
func BoxLabel(b *frame.Box) string {
	if b == nil {
		return "<empty box>"
	}
	name := b.Tag
	if name == "" {
		name = "anon"
	}
	return fmt.Sprintf("%s %s %s", b.Display().Symbol(), name, b.BorderRect())
}

func isTextBox(b *frame.Box) bool {
	_, ok := b.Text()
	return ok
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`
const boxTmpl = `{{ if istext .C }}
{{ .Name }}	[ label={{ shortstring . }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .C }} shape=box style=filled fillcolor="{{ .Fill }}" ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
