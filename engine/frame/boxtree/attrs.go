package boxtree

import (
	"strconv"
	"strings"

	douceur "github.com/aymerick/douceur/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// presentational maps HTML attributes to CSS declarations. They are
// overridden by any author style.
func presentational(n *html.Node) []*douceur.Declaration {
	var decls []*douceur.Declaration
	set := func(prop, value string) {
		decls = append(decls, &douceur.Declaration{Property: prop, Value: value})
	}
	if dir, ok := attr(n, "dir"); ok && (dir == "rtl" || dir == "ltr") {
		set("direction", dir)
	}
	if c, ok := attr(n, "bgcolor"); ok {
		set("background-color", c)
	}
	switch n.DataAtom {
	case atom.Table:
		lengthAttr(n, "width", set)
		lengthAttr(n, "height", set)
		if w, ok := pixels(n, "border"); ok && w != "0" {
			set("border", w+"px outset")
		}
		if s, ok := pixels(n, "cellspacing"); ok {
			set("border-spacing", s+"px")
		}
	case atom.Td, atom.Th:
		lengthAttr(n, "width", set)
		lengthAttr(n, "height", set)
		if t := enclosingTable(n); t != nil {
			if p, ok := pixels(t, "cellpadding"); ok {
				set("padding", p+"px")
			}
			if w, ok := pixels(t, "border"); ok && w != "0" {
				set("border", "1px inset")
			}
		}
		cellAttrs(n, set)
	case atom.Tr, atom.Thead, atom.Tbody, atom.Tfoot:
		cellAttrs(n, set)
	case atom.Col, atom.Colgroup:
		lengthAttr(n, "width", set)
	case atom.Img, atom.Iframe, atom.Video, atom.Embed, atom.Object:
		lengthAttr(n, "width", set)
		lengthAttr(n, "height", set)
	case atom.Hr:
		lengthAttr(n, "width", set)
		if s, ok := pixels(n, "size"); ok {
			set("height", s+"px")
		}
		textAlign(n, set)
	case atom.P, atom.Div, atom.Caption, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		textAlign(n, set)
	case atom.Ol, atom.Ul, atom.Li:
		if t, ok := attr(n, "type"); ok {
			if lst := listStyleTypes[t]; lst != "" {
				set("list-style-type", lst)
			}
		}
	case atom.Font:
		if c, ok := attr(n, "color"); ok {
			set("color", c)
		}
		if f, ok := attr(n, "face"); ok {
			set("font-family", f)
		}
	case atom.Body:
		if c, ok := attr(n, "text"); ok {
			set("color", c)
		}
	}
	return decls
}

var listStyleTypes = map[string]string{
	"1":      "decimal",
	"a":      "lower-alpha",
	"A":      "upper-alpha",
	"i":      "lower-roman",
	"I":      "upper-roman",
	"disc":   "disc",
	"circle": "circle",
	"square": "square",
}

// cellAttrs maps alignment attributes of table rows and cells.
func cellAttrs(n *html.Node, set func(string, string)) {
	textAlign(n, set)
	if v, ok := attr(n, "valign"); ok {
		set("vertical-align", strings.ToLower(v))
	}
	if _, ok := attr(n, "nowrap"); ok {
		set("white-space", "nowrap")
	}
}

func textAlign(n *html.Node, set func(string, string)) {
	if a, ok := attr(n, "align"); ok {
		set("text-align", strings.ToLower(a))
	}
}

// lengthAttr maps an HTML length attribute, either a number of pixels or
// a percentage.
func lengthAttr(n *html.Node, key string, set func(string, string)) {
	v, ok := attr(n, key)
	if !ok {
		return
	}
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		if _, err := strconv.ParseFloat(v[:len(v)-1], 64); err == nil {
			set(key, v)
		}
		return
	}
	if p, ok := pixels(n, key); ok {
		set(key, p+"px")
	}
}

// pixels returns a non-negative integer attribute value.
func pixels(n *html.Node, key string) (string, bool) {
	v, ok := attr(n, key)
	if !ok {
		return "", false
	}
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	if v == "" { // <table border>
		return "1", key == "border"
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 0 {
		return "", false
	}
	return strconv.Itoa(i), true
}

func enclosingTable(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.DataAtom == atom.Table {
			return p
		}
	}
	return nil
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
