// Package ioarchive gets the NCBI dump archive, reads its members and packs
// the output directory into a zip file.
package ioarchive

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
)

// IsURL reports if the dump source has to be downloaded.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") ||
		strings.HasPrefix(source, "https://")
}

// Fetch returns a local path to the dump archive. A URL source is
// downloaded into cacheDir, any other source is treated as a local file.
func Fetch(
	ctx context.Context,
	source, cacheDir string,
	progress bool,
) (string, error) {
	if !IsURL(source) {
		if _, err := os.Stat(source); err != nil {
			return "", FetchError(source, err)
		}
		slog.Info("Using local dump archive", "path", source)
		return source, nil
	}
	return download(ctx, source, cacheDir, progress)
}

func download(
	ctx context.Context,
	source, cacheDir string,
	progress bool,
) (string, error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", FetchError(source, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		name = "dump.zip"
	}
	dst := filepath.Join(cacheDir, name)

	gn.Info("Downloading <em>%s</em>", source)
	slog.Info("Downloading dump archive", "url", source, "path", dst)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return "", FetchError(source, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", FetchError(source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("status %d", resp.StatusCode)
		return "", FetchError(source, err)
	}

	tmp := dst + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return "", FetchError(source, err)
	}

	var body io.Reader = resp.Body
	if progress {
		bar := pb.Full.Start64(max(resp.ContentLength, 0))
		bar.Set(pb.Bytes, true)
		bar.Set("prefix", name+": ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
		body = bar.NewProxyReader(body)
	}

	n, err := io.Copy(f, body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return "", FetchError(source, err)
	}
	if err = os.Rename(tmp, dst); err != nil {
		return "", FetchError(source, err)
	}

	slog.Info("Dump archive downloaded",
		"path", dst, "size", humanize.Bytes(uint64(n)))
	return dst, nil
}
