package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/goccy/go-yaml"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
)

var (
	// ErrAssetUnavailable means a photo could not be read or decoded.
	ErrAssetUnavailable = errors.New("asset unavailable")
	// ErrFetchFailure means the list of photos could not be obtained.
	ErrFetchFailure = errors.New("fetch failure")
)

// How many photos are read and decoded at the same time.
const photoLoaders = 8

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func fetch(ctx context.Context, address string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, address, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", address, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// LoadPhotoList returns the file names listed in the JSON array at list,
// which is either a path in fsys or an http(s) URL. The names are returned
// in the order of the list.
func LoadPhotoList(ctx context.Context, fsys FS, list string) ([]string, error) {
	var data []byte
	var err error
	if isURL(list) {
		data, err = fetch(ctx, list)
	} else {
		data, err = fsys.ReadFile(list)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}

	// JSON is YAML, so there's no need for a second parser.
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailure, list, err)
	}
	return names, nil
}

// photoSource returns where the named photo lives. Relative names resolve
// against PhotosDir, or against the directory of the list when the list is
// remote and PhotosDir is not.
func photoSource(cfg Config, name string) string {
	if isURL(name) {
		return name
	}
	if isURL(cfg.PhotosDir) {
		return strings.TrimSuffix(cfg.PhotosDir, "/") + "/" + name
	}
	if isURL(cfg.PhotoList) {
		u, err := url.Parse(cfg.PhotoList)
		if err == nil {
			u.Path = path.Join(path.Dir(u.Path), name)
			return u.String()
		}
	}
	return path.Join(cfg.PhotosDir, name)
}

func LoadPhoto(ctx context.Context, fsys FS, source string) (image.Image, error) {
	var r io.Reader
	if isURL(source) {
		data, err := fetch(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAssetUnavailable, err)
		}
		r = bytes.NewReader(data)
	} else {
		f, err := fsys.Open(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAssetUnavailable, err)
		}
		defer CloseFile(f)
		r = f
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetUnavailable, source, err)
	}
	return img, nil
}

// LoadPhotos loads the photo pool. It never fails: photos that can't be
// loaded are logged and left out, and a missing list gives an empty pool.
// If there is no list but the photos folder exists, every file in the
// folder is used.
func LoadPhotos(ctx context.Context, fsys FS, cfg Config) []image.Image {
	var names []string
	if !isURL(cfg.PhotoList) && !FileExists(fsys, cfg.PhotoList) &&
		!isURL(cfg.PhotosDir) && FileExists(fsys, cfg.PhotosDir) {
		names = GetFiles(fsys, cfg.PhotosDir, "*")
	} else {
		var err error
		names, err = LoadPhotoList(ctx, fsys, cfg.PhotoList)
		if err != nil {
			log.Printf("[photos] continuing without photos: %v", err)
			return nil
		}
	}

	photos := make([]image.Image, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(photoLoaders)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := LoadPhoto(ctx, fsys, photoSource(cfg, name))
			if err != nil {
				log.Printf("[photos] skipping %s: %v", name, err)
				return nil
			}
			photos[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("[photos] loading interrupted: %v", err)
	}

	photos = slices.DeleteFunc(photos, func(img image.Image) bool { return img == nil })
	log.Printf("[photos] loaded %d of %d photos", len(photos), len(names))
	return photos
}
