package ioarchive

import (
	"archive/zip"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Pack writes every regular file of dir into the zip archive zipPath.
// Files whose base name equals or starts with one of exclude are left out,
// and so is the archive itself. The archive is written to a temporary
// file first, on error nothing is left at zipPath.
func Pack(dir, zipPath string, exclude ...string) error {
	tmp := zipPath + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return PackError(zipPath, err)
	}

	zw := zip.NewWriter(out)
	absZip, _ := filepath.Abs(zipPath)
	absTmp, _ := filepath.Abs(tmp)
	var count int

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if abs, _ := filepath.Abs(p); abs == absZip || abs == absTmp {
			return nil
		}
		if isExcluded(d.Name(), exclude) {
			slog.Debug("Not packing file", "file", p)
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		count++
		return addFile(zw, p, filepath.ToSlash(rel))
	})

	if cerr := zw.Close(); err == nil {
		err = cerr
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmp, zipPath)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return PackError(zipPath, err)
	}

	slog.Info("Output archive created", "path", zipPath, "files", count)
	return nil
}

func isExcluded(name string, exclude []string) bool {
	for _, e := range exclude {
		if e != "" && strings.HasPrefix(name, e) {
			return true
		}
	}
	return false
}

func addFile(zw *zip.Writer, src, name string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	w, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, f)
	return err
}
