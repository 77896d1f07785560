package html

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/cssbox/core"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

// Document is a parsed HTML document.
type Document struct {
	Root *nethtml.Node // document node
	Base string        // directory or URL relative references are resolved against
}

// Read parses an HTML document. contentType is the transport's content
// type, e.g. "text/html; charset=latin1", and may be empty.
func Read(r io.Reader, contentType string) (*Document, error) {
	utf8, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot determine character set of document")
	}
	root, err := nethtml.Parse(utf8)
	if err != nil {
		tracer().Errorf("unable to parse HTML: %v", err)
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML document")
	}
	doc := &Document{Root: root}
	if base := findElement(root, atom.Base); base != nil {
		doc.Base = attr(base, "href")
	}
	return doc, nil
}

// Load reads an HTML document from a file. If the document does not
// declare a base, the file's directory is used.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open document %s", path)
	}
	defer f.Close()
	ctype := ""
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".xhtml" || ext == ".htm" || ext == ".html" {
		ctype = "text/html"
	}
	doc, err := Read(f, ctype)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	switch {
	case doc.Base == "":
		doc.Base = dir
	case !isURL(doc.Base) && !filepath.IsAbs(doc.Base):
		doc.Base = filepath.Join(dir, filepath.FromSlash(doc.Base))
	}
	tracer().Infof("loaded document %s, base = %s", path, doc.Base)
	return doc, nil
}

// Resolve resolves a reference found in the document against the
// document's base.
func (doc *Document) Resolve(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" || isURL(ref) || doc.Base == "" {
		return ref
	}
	if isURL(doc.Base) {
		b, err := url.Parse(doc.Base)
		r, err2 := url.Parse(ref)
		if err != nil || err2 != nil {
			return ref
		}
		return b.ResolveReference(r).String()
	}
	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(doc.Base, filepath.FromSlash(ref))
}

// Title returns the text of the document's <title> element.
func (doc *Document) Title() string {
	t := findElement(doc.Root, atom.Title)
	if t == nil || t.FirstChild == nil {
		return ""
	}
	return strings.TrimSpace(t.FirstChild.Data)
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https" || u.Scheme == "file")
}

func findElement(n *nethtml.Node, a atom.Atom) *nethtml.Node {
	if n.Type == nethtml.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if e := findElement(c, a); e != nil {
			return e
		}
	}
	return nil
}

func attr(n *nethtml.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
