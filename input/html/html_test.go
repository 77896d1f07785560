package html

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/cssbox/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func TestReadDecodesCharset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.input")
	defer teardown()
	//
	latin1 := "<html><head><title>Gr\xfc\xdfe</title></head><body><p>x</p></body></html>"
	doc, err := Read(strings.NewReader(latin1), "text/html; charset=iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, "Grüße", doc.Title())
	assert.NotNil(t, findElement(doc.Root, atom.P))
	assert.Equal(t, "", doc.Base)
}

func TestBaseAndResolve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.input")
	defer teardown()
	//
	doc, err := Read(strings.NewReader(`<head><base href="https://example.com/docs/"></head><img src="a.png">`), "")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/docs/a.png", doc.Resolve("a.png"))
	assert.Equal(t, "https://example.com/b.png", doc.Resolve("/b.png"))
	assert.Equal(t, "http://other.org/c.png", doc.Resolve("http://other.org/c.png"))
	//
	local := &Document{Base: "/var/www"}
	assert.Equal(t, filepath.Join("/var/www", "img", "d.png"), local.Resolve("img/d.png"))
	assert.Equal(t, "", local.Resolve("  "))
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cssbox.input")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<title> Page </title><p>Hello"), 0644))
	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, doc.Base)
	assert.Equal(t, "Page", doc.Title())
	//
	sub := filepath.Join(dir, "sub.html")
	require.NoError(t, os.WriteFile(sub, []byte(`<base href="assets/"><p>x`), 0644))
	doc, err = Load(sub)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "assets"), doc.Base)
	//
	_, err = Load(filepath.Join(dir, "missing.html"))
	require.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
