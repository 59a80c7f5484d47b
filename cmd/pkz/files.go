package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chronos-tachyon/pkz"
)

// suffix is appended to compressed file names.
const suffix = ".pkz"

// compressFile compresses the file at path into path+suffix.  Nothing is
// written unless compression succeeds.
func compressFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	log.Debugf("read %d bytes from %s", len(data), path)

	out, err := pkz.Compress(data)
	if err != nil {
		return "", fmt.Errorf("compressing %s: %w", path, err)
	}

	outPath := path + suffix
	if err := os.WriteFile(outPath, out, 0666); err != nil {
		return "", err
	}
	return outPath, nil
}

// decompressFile decompresses the file at path, which must end in suffix,
// into path with the suffix removed.  Nothing is written unless
// decompression succeeds.
func decompressFile(path string) (string, error) {
	if !strings.HasSuffix(path, suffix) {
		return "", fmt.Errorf("%s: file name does not end in %q", path, suffix)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	log.Debugf("read %d bytes from %s", len(data), path)

	out, err := pkz.Decompress(data)
	if err != nil {
		return "", fmt.Errorf("decompressing %s: %w", path, err)
	}

	outPath := strings.TrimSuffix(path, suffix)
	if err := os.WriteFile(outPath, out, 0666); err != nil {
		return "", err
	}
	return outPath, nil
}
