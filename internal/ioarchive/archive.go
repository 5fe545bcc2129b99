package ioarchive

import (
	"archive/zip"
	"io"
	"path"
)

// Member is one file of the dump archive.
type Member struct {
	// Name is the base name of the file.
	Name string
	// Size is the uncompressed size in bytes.
	Size int64

	f *zip.File
}

// Open returns a reader of the uncompressed member content.
func (m Member) Open() (io.ReadCloser, error) {
	rc, err := m.f.Open()
	if err != nil {
		return nil, MemberError(m.Name, err)
	}
	return rc, nil
}

// Archive is an opened dump archive.
type Archive struct {
	path string
	zr   *zip.ReadCloser
}

// Open opens the zip archive at path.
func Open(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	return &Archive{path: path, zr: zr}, nil
}

// Members returns the files of the archive in archive order. Directories
// are left out.
func (a *Archive) Members() []Member {
	res := make([]Member, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		res = append(res, Member{
			Name: path.Base(f.Name),
			Size: int64(f.UncompressedSize64),
			f:    f,
		})
	}
	return res
}

// Close closes the archive file.
func (a *Archive) Close() error {
	return a.zr.Close()
}
