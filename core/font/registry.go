package font

import (
	"fmt"
	"path"
	"strings"
	"sync"

	findfont "github.com/flopp/go-findfont"
	xfont "golang.org/x/image/font"

	"github.com/npillmayer/cssbox/core/dimen"
)

// Registry is a type for holding information about loaded fonts and
// prepared typecases.
type Registry struct {
	sync.Mutex
	fonts     map[string]*ScalableFont
	typecases map[string]*TypeCase
	missing   map[string]bool // system lookups which failed before
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold information about
// loaded fonts and typecases.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*ScalableFont),
		typecases: make(map[string]*TypeCase),
		missing:   make(map[string]bool),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(normalizedName string, f *ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// TypeCase returns a typecase for a font family, style, weight and size.
//
// family may be a CSS font-family list. Families are tried in order: fonts
// stored in the registry first, then system fonts (located with go-findfont).
// Generic families map to the Go fonts. If nothing matches, a Go fallback
// font is returned together with an error.
func (fr *Registry) TypeCase(family string, style xfont.Style, weight xfont.Weight,
	size dimen.Dimen) (*TypeCase, error) {
	//
	fr.Lock()
	defer fr.Unlock()
	for _, fam := range SplitFamilies(family) {
		fname := NormalizeFontname(fam, style, weight)
		tname := appendSize(fname, size)
		if t, ok := fr.typecases[tname]; ok {
			return t, nil
		}
		f := fr.findFont(fam, fname, style, weight)
		if f == nil {
			continue
		}
		t, err := f.PrepareCase(size)
		if err != nil {
			tracer().Errorf("cannot prepare font %s at %.2f: %v", fname, float64(size), err)
			continue
		}
		tracer().Debugf("font registry caches %s", tname)
		fr.typecases[tname] = t
		return t, nil
	}
	err := fmt.Errorf("font %q not found", family)
	tname := appendSize(NormalizeFontname("fallback", style, weight), size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	t, perr := FallbackFont(style, weight).PrepareCase(size)
	if perr != nil {
		panic("cannot prepare fallback font") // this cannot happen
	}
	tracer().Infof("font registry caches fallback font %s", tname)
	fr.typecases[tname] = t
	return t, err
}

// findFont must be called with the registry locked.
func (fr *Registry) findFont(family, fname string, style xfont.Style, weight xfont.Weight) *ScalableFont {
	if f, ok := fr.fonts[fname]; ok {
		return f
	}
	switch strings.ToLower(family) {
	case "sans-serif", "serif", "system-ui", "cursive", "fantasy", "go", "go sans":
		f := FallbackFont(style, weight)
		fr.fonts[fname] = f
		return f
	case "monospace", "go mono":
		f := MonospaceFallbackFont()
		fr.fonts[fname] = f
		return f
	}
	if fr.missing[fname] {
		return nil
	}
	fpath := findSystemFont(family, style, weight)
	if fpath == "" {
		fr.missing[fname] = true
		return nil
	}
	f, err := LoadOpenTypeFont(fpath)
	if err != nil {
		tracer().Errorf("cannot load system font %s: %v", fpath, err)
		fr.missing[fname] = true
		return nil
	}
	tracer().Infof("%s is a system font at %s", family, fpath)
	fr.fonts[fname] = f
	return f
}

func findSystemFont(family string, style xfont.Style, weight xfont.Weight) string {
	for _, fpath := range findfont.List() {
		if Matches(fpath, family, style, weight) {
			return fpath
		}
	}
	if style == xfont.StyleNormal && weight == xfont.WeightNormal {
		if fpath, err := findfont.Find(family); err == nil {
			return fpath
		}
	}
	return ""
}

// LogFontList lists all registered fonts to the tracer.
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	tracer().Debugf("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Debugf("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Debugf("typecase [%s] = %v", k, v.scalableFontParent.Fontname)
	}
	tracer().Debugf("------------------------")
}

// SplitFamilies splits a CSS font-family list into single family names,
// removing quotes.
func SplitFamilies(family string) []string {
	var fams []string
	for _, f := range strings.Split(family, ",") {
		f = strings.Trim(strings.TrimSpace(f), `"'`)
		if f != "" {
			fams = append(fams, f)
		}
	}
	if len(fams) == 0 {
		fams = append(fams, "sans-serif")
	}
	return fams
}

// NormalizeFontname creates a registry key from a font name, a style and
// a weight.
func NormalizeFontname(fname string, style xfont.Style, weight xfont.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	fname = strings.ToLower(fname)
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		fname += "-italic"
	}
	switch weight {
	case xfont.WeightLight, xfont.WeightExtraLight:
		fname += "-light"
	case xfont.WeightBold, xfont.WeightExtraBold, xfont.WeightSemiBold, xfont.WeightBlack:
		fname += "-bold"
	}
	return fname
}

func appendSize(fname string, size dimen.Dimen) string {
	return fmt.Sprintf("%s-%.2f", fname, float64(size))
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's file name.
func GuessStyleAndWeight(fontfilename string) (xfont.Style, xfont.Weight) {
	fontfilename = path.Base(fontfilename)
	ext := path.Ext(fontfilename)
	fontfilename = strings.ToLower(fontfilename[:len(fontfilename)-len(ext)])
	s := strings.Split(fontfilename, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontfilename, "italic") || strings.Contains(fontfilename, "oblique") {
		style = xfont.StyleItalic
	}
	if strings.Contains(fontfilename, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontfilename, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// Matches returns true if a font's filename contains pattern and indicators
// for a given style and weight.
func Matches(fontfilename, pattern string, style xfont.Style, weight xfont.Weight) bool {
	basename := path.Base(fontfilename)
	basename = basename[:len(basename)-len(path.Ext(basename))]
	basename = strings.ToLower(basename)
	if !strings.Contains(strings.ReplaceAll(basename, " ", ""),
		strings.ReplaceAll(strings.ToLower(pattern), " ", "")) {
		return false
	}
	s, w := GuessStyleAndWeight(basename)
	return s == style && w == boldOrNormal(weight)
}

func boldOrNormal(w xfont.Weight) xfont.Weight {
	switch {
	case w >= xfont.WeightSemiBold:
		return xfont.WeightBold
	case w <= xfont.WeightLight:
		return xfont.WeightLight
	}
	return xfont.WeightNormal
}
