package boxtree

import (
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	douceur "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// userAgentCSS holds the default styles of HTML elements.
const userAgentCSS = `
html, body, div, p, h1, h2, h3, h4, h5, h6, ul, ol, dl, dt, dd, blockquote,
pre, address, center, form, fieldset, section, article, aside, header, footer,
nav, main, figure, figcaption, hr, details, summary { display: block }
head, script, style, title, meta, link, template, noscript, base { display: none }
li { display: list-item }
table { display: table; border-spacing: 2px }
thead { display: table-header-group }
tbody { display: table-row-group }
tfoot { display: table-footer-group }
tr { display: table-row }
td, th { display: table-cell; padding: 1px }
th { font-weight: bold; text-align: center }
caption { display: table-caption; text-align: center }
col { display: table-column }
colgroup { display: table-column-group }
body { margin: 8px }
p, dl, figure { margin: 1em 0 }
blockquote, figure { margin: 1em 40px }
ul, ol { margin: 1em 0; padding-left: 40px }
ul { list-style-type: disc }
ol { list-style-type: decimal }
ul ul, ol ul { list-style-type: circle }
dd { margin-left: 40px }
h1 { font-size: 2em; margin: 0.67em 0; font-weight: bold }
h2 { font-size: 1.5em; margin: 0.83em 0; font-weight: bold }
h3 { font-size: 1.17em; margin: 1em 0; font-weight: bold }
h4 { margin: 1.33em 0; font-weight: bold }
h5 { font-size: 0.83em; margin: 1.67em 0; font-weight: bold }
h6 { font-size: 0.67em; margin: 2.33em 0; font-weight: bold }
pre { white-space: pre; font-family: monospace; margin: 1em 0 }
code, kbd, samp, tt { font-family: monospace }
b, strong, dt { font-weight: bold }
i, em, cite, var, address { font-style: italic }
sub { vertical-align: sub; font-size: smaller }
sup { vertical-align: super; font-size: smaller }
small { font-size: smaller }
big { font-size: larger }
center { text-align: center }
u, ins { text-decoration: underline }
s, strike, del { text-decoration: line-through }
`

// ruleMatch is a rule of a stylesheet matching an element.
type ruleMatch struct {
	specificity int
	order       int
	decls       []*douceur.Declaration
}

// cascade collects the declarations applying to the elements of a document.
type cascade struct {
	ua, author map[*html.Node][]ruleMatch
	cache      map[*html.Node][]*douceur.Declaration
}

func newCascade(doc *html.Node) *cascade {
	c := &cascade{
		ua:     make(map[*html.Node][]ruleMatch),
		author: make(map[*html.Node][]ruleMatch),
		cache:  make(map[*html.Node][]*douceur.Declaration),
	}
	if ua, err := parser.Parse(userAgentCSS); err != nil {
		tracer().Errorf("user agent stylesheet: %v", err)
	} else {
		c.match(doc, ua, c.ua)
	}
	for _, sheet := range styleSheets(doc) {
		c.match(doc, sheet, c.author)
	}
	for _, m := range []map[*html.Node][]ruleMatch{c.ua, c.author} {
		for _, matches := range m {
			sort.SliceStable(matches, func(i, j int) bool {
				if matches[i].specificity != matches[j].specificity {
					return matches[i].specificity < matches[j].specificity
				}
				return matches[i].order < matches[j].order
			})
		}
	}
	return c
}

// match applies the qualified rules of a stylesheet to the elements of a
// document. Selectors cascadia cannot compile are skipped.
func (c *cascade) match(doc *html.Node, sheet *douceur.Stylesheet, to map[*html.Node][]ruleMatch) {
	for order, rule := range sheet.Rules {
		if rule.Kind != douceur.QualifiedRule {
			continue // @media and friends
		}
		for _, s := range rule.Selectors {
			sel, err := cascadia.Compile(s)
			if err != nil {
				tracer().Infof("skipping selector %q: %v", s, err)
				continue
			}
			spec := specificity(s)
			for _, n := range sel.MatchAll(doc) {
				to[n] = append(to[n], ruleMatch{specificity: spec, order: order, decls: rule.Declarations})
			}
		}
	}
}

// declarations returns the declarations for an element in cascade order:
// user agent rules, presentational attributes, author rules, the style
// attribute, and finally all important declarations.
func (c *cascade) declarations(n *html.Node) []*douceur.Declaration {
	if decls, ok := c.cache[n]; ok {
		return decls
	}
	var all []*douceur.Declaration
	for _, m := range c.ua[n] {
		all = append(all, m.decls...)
	}
	all = append(all, presentational(n)...)
	for _, m := range c.author[n] {
		all = append(all, m.decls...)
	}
	all = append(all, inlineStyle(n)...)
	decls := make([]*douceur.Declaration, 0, len(all))
	var important []*douceur.Declaration
	for _, d := range all {
		if d.Important {
			important = append(important, d)
		} else {
			decls = append(decls, d)
		}
	}
	decls = append(decls, important...)
	c.cache[n] = decls
	return decls
}

// styleSheets parses the <style> elements of a document.
func styleSheets(doc *html.Node) []*douceur.Stylesheet {
	var sheets []*douceur.Stylesheet
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			var text strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					text.WriteString(c.Data)
				}
			}
			sheet, err := parser.Parse(text.String())
			if err != nil {
				tracer().Errorf("cannot parse stylesheet: %v", err)
				return
			}
			sheets = append(sheets, sheet)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(doc)
	tracer().Debugf("document contains %d stylesheets", len(sheets))
	return sheets
}

// inlineStyle parses the style attribute of an element.
func inlineStyle(n *html.Node) []*douceur.Declaration {
	s, ok := attr(n, "style")
	if !ok || strings.TrimSpace(s) == "" {
		return nil
	}
	// the parser drops the value of an unterminated last declaration
	if s = strings.TrimSpace(s); !strings.HasSuffix(s, ";") {
		s += ";"
	}
	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		tracer().Errorf("<%s> has invalid style attribute: %v", n.Data, err)
		return nil
	}
	return decls
}

// specificity approximates the specificity of a selector as
// 10000 × ids + 100 × (classes, attributes, pseudo-classes) + types.
// Arguments of functional pseudo-classes count as well.
func specificity(sel string) int {
	ids, classes, types := 0, 0, 0
	boundary := true
	for i := 0; i < len(sel); i++ {
		ch := sel[i]
		switch {
		case ch == '#':
			ids++
		case ch == '.':
			classes++
		case ch == '[':
			classes++
			for i < len(sel) && sel[i] != ']' {
				i++
			}
		case ch == ':':
			if i+1 < len(sel) && sel[i+1] == ':' {
				types++
				i++
			} else {
				classes++
			}
		case boundary && isIdentStart(ch):
			types++
		}
		switch {
		case ch == ' ' || ch == '>' || ch == '+' || ch == '~' || ch == '(' || ch == ',':
			boundary = true
		case isIdentStart(ch) || ch == '-' || (ch >= '0' && ch <= '9'):
			boundary = false
		default:
			boundary = ch != '#' && ch != '.' && ch != ':' && ch != '*'
		}
	}
	return ids*10000 + classes*100 + types
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}
