package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip and .7z) yield their first file. Any other extension is
// returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	// try to assert the compression type from the file extension
	var decoder io.ReadCloser
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".gz":
		decoder, err = gzip.NewReader(bytes.NewReader(data))
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("%s: empty archive", filename)
		}

		// read the first file in the zip file
		decoder, err = zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("%s: empty archive", filename)
		}

		// read the first file in the archive
		decoder, err = r.File[0].Open()
		if err != nil {
			return nil, err
		}
	default:
		// return the data as is
		return data, nil
	}
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	// read the decompressed data into a byte slice
	return io.ReadAll(decoder)
}
