package resources

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/cssbox/core"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

type resourceType int

// resource types
const (
	unknownResourceType resourceType = iota
	imageResourceType
)

// NotFound returns an application error for a missing resource.
func NotFound(res string, rtype resourceType) error {
	e := fmt.Errorf("resource missing: %v", res)
	switch rtype {
	case imageResourceType:
		return core.WrapError(e, core.EIMAGE, "image not found: %s", res)
	}
	return core.WrapError(e, core.EMISSING, "resource not found: %s", res)
}

// --- Images ---------------------------------------------------------------

type imgPlusErr struct {
	img image.Image
	err error
}

// ImagePromise is a handle for an image being loaded.
type ImagePromise interface {
	// Image blocks until the image is loaded or ctx is done.
	Image(ctx context.Context) (image.Image, error)
}

type imageLoader struct {
	ch <-chan imgPlusErr
}

func (loader imageLoader) Image(ctx context.Context) (image.Image, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-loader.ch:
		return r.img, r.err
	}
}

// ResolveImage starts loading an image referenced by src. Relative file
// names are resolved against base, a directory. Sources with scheme http
// or https are downloaded to the cache directory first, sources with
// scheme file are local files.
//
// Images may be in PNG, JPEG, GIF, BMP or WebP format. Errors carry error
// code core.EIMAGE.
func ResolveImage(src string, base string) ImagePromise {
	ch := make(chan imgPlusErr, 1) // loader must not block if nobody awaits
	go func(ch chan<- imgPlusErr) {
		defer close(ch)
		result := imgPlusErr{}
		fpath, err := locateImage(src, base)
		if err != nil {
			result.err = err
			ch <- result
			return
		}
		result.img, result.err = decodeImage(fpath)
		if result.err != nil {
			result.err = core.WrapError(result.err, core.EIMAGE, "cannot decode image %s", src)
		}
		ch <- result
	}(ch)
	return imageLoader{ch: ch}
}

// locateImage returns the path of a local file holding the image for src.
func locateImage(src string, base string) (string, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return "", NotFound("<empty>", imageResourceType)
	}
	u, err := url.Parse(src)
	if err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return cacheRemote(u)
	}
	fpath := src
	if err == nil && u.Scheme == "file" {
		fpath = u.Path
	}
	if !filepath.IsAbs(fpath) {
		fpath = filepath.Join(base, filepath.FromSlash(fpath))
	}
	if _, err := os.Stat(fpath); err != nil {
		tracer().Infof("image %s not found: %v", src, err)
		return "", NotFound(src, imageResourceType)
	}
	return fpath, nil
}

// cacheRemote downloads a remote image unless it is present in the cache
// already.
func cacheRemote(u *url.URL) (string, error) {
	dir, err := CacheDirPath("images")
	if err != nil {
		return "", core.WrapError(err, core.EIMAGE, "no cache directory for %s", u)
	}
	fpath := filepath.Join(dir, cachedName(u.Host+u.Path))
	if _, err := os.Stat(fpath); err == nil {
		tracer().Debugf("found %s in cache", u)
		return fpath, nil
	}
	tracer().Infof("downloading %s", u)
	if err := DownloadCachedFile(fpath, u.String()); err != nil {
		os.Remove(fpath)
		return "", core.WrapError(err, core.ECONNECTION, "cannot download image %s", u)
	}
	return fpath, nil
}

func decodeImage(fpath string) (image.Image, error) {
	file, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, format, err := image.Decode(file)
	if err == nil {
		tracer().Debugf("decoded %s image %s", format, fpath)
	}
	return img, err
}
