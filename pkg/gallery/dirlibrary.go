package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".gif":  true,
	".heic": true,
}

// DirLibrary is a Library backed by a directory of image files, such as the
// platform's Pictures or DCIM folder. File modification time stands in for
// creation time.
type DirLibrary struct {
	Dir string
}

// NewDirLibrary creates a DirLibrary rooted at dir.
func NewDirLibrary(dir string) *DirLibrary {
	return &DirLibrary{Dir: dir}
}

// RequestPermission grants access when the directory can be opened and listed.
// A missing or unreadable directory is Denied.
func (l *DirLibrary) RequestPermission(ctx context.Context) (Permission, error) {
	if err := ctx.Err(); err != nil {
		return Denied, err
	}
	f, err := os.Open(l.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return Denied, nil
		}
		return Denied, fmt.Errorf("open library %s: %w", l.Dir, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Denied, fmt.Errorf("stat library %s: %w", l.Dir, err)
	}
	if !info.IsDir() {
		return Denied, nil
	}
	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, fs.ErrPermission) {
			return Denied, nil
		}
		return Denied, fmt.Errorf("list library %s: %w", l.Dir, err)
	}
	return Granted, nil
}

// RecentPhotos returns up to limit image files, newest first.
func (l *DirLibrary) RecentPhotos(ctx context.Context, limit int) ([]Asset, error) {
	if limit <= 0 {
		return nil, nil
	}
	abs, err := filepath.Abs(l.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve library dir: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read library %s: %w", abs, err)
	}

	var assets []Asset
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if e.IsDir() || !imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		path := filepath.Join(abs, e.Name())
		assets = append(assets, Asset{
			Filename:     e.Name(),
			URI:          FileURI(path),
			CreationTime: info.ModTime(),
		})
	}

	sort.SliceStable(assets, func(i, j int) bool {
		ti, tj := assets[i].CreationTime, assets[j].CreationTime
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return assets[i].Filename < assets[j].Filename
	})
	if len(assets) > limit {
		assets = assets[:limit]
	}
	return assets, nil
}

// FileURI returns the file:// URI for an absolute path.
func FileURI(path string) string {
	p := filepath.ToSlash(path)
	// Drive paths such as C:/x need the leading slash, or C: is read as the host.
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// PathFromURI returns the local path a file:// URI points at.
func PathFromURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse uri %q: %w", uri, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported uri scheme %q", u.Scheme)
	}
	p := u.Path
	if len(p) > 1 && p[0] == '/' && filepath.VolumeName(filepath.FromSlash(p[1:])) != "" {
		p = p[1:]
	}
	return filepath.FromSlash(p), nil
}
