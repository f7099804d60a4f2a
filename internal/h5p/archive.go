package h5p

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	MetadataFile = "h5p.json"
	ContentFile  = "content/content.json"
)

// ArchiveOptions carries fields written to h5p.json that are not part of
// the conversion result itself.
type ArchiveOptions struct {
	Author string
}

type archiveMetadata struct {
	Metadata
	CoreAPI any    `json:"coreApi"`
	Author  string `json:"author,omitempty"`
}

// MarshalBlocks renders the two JSON documents of a package.
func MarshalBlocks(p Package, o ArchiveOptions) (meta, content []byte, err error) {
	if p.Content == nil {
		return nil, nil, errors.New("h5p: package has no content block")
	}
	meta, err = json.MarshalIndent(archiveMetadata{Metadata: p.Metadata, CoreAPI: CoreAPI, Author: o.Author}, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("h5p.json: %w", err)
	}
	content, err = json.MarshalIndent(p.Content, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("content.json: %w", err)
	}
	return meta, content, nil
}

// Build writes a .h5p archive.
func Build(p Package, o ArchiveOptions) ([]byte, error) {
	meta, content, err := MarshalBlocks(p, o)
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, f := range []struct {
		name string
		body []byte
	}{
		{MetadataFile, meta},
		{ContentFile, content},
	} {
		w, err := zw.Create(f.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(f.body); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Open reads the two JSON documents back out of a .h5p archive.
func Open(r io.ReaderAt, size int64) (meta, content []byte, err error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range zr.File {
		switch f.Name {
		case MetadataFile:
			meta, err = readEntry(f)
		case ContentFile:
			content, err = readEntry(f)
		}
		if err != nil {
			return nil, nil, err
		}
	}
	if meta == nil || content == nil {
		return nil, nil, errors.New("h5p: archive is missing h5p.json or content/content.json")
	}
	return meta, content, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
