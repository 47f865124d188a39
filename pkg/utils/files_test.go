package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var rom = []byte{0x00, 0xC3, 0x50, 0x01, 0xCE, 0xED, 0x66, 0x66}

func writeGzip(t *testing.T, path string) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(rom); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeZip(t *testing.T, path string, files ...string) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for _, name := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(rom); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "cpu_instrs.gb")
	if err := os.WriteFile(plain, rom, 0644); err != nil {
		t.Fatal(err)
	}
	gz := filepath.Join(dir, "cpu_instrs.gb.gz")
	writeGzip(t, gz)
	zipped := filepath.Join(dir, "cpu_instrs.ZIP")
	writeZip(t, zipped, "cpu_instrs.gb", "readme.txt")

	for _, name := range []string{plain, gz, zipped} {
		t.Run(filepath.Base(name), func(t *testing.T) {
			data, err := LoadFile(name)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(data, rom) {
				t.Errorf("expected % X, got % X", rom, data)
			}
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(dir, "missing.gb")); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
	t.Run("empty zip", func(t *testing.T) {
		name := filepath.Join(dir, "empty.zip")
		writeZip(t, name)
		if _, err := LoadFile(name); !errors.Is(err, ErrEmptyArchive) {
			t.Errorf("expected ErrEmptyArchive, got %v", err)
		}
	})
	for _, ext := range []string{".gz", ".zip", ".7z"} {
		t.Run("corrupt "+ext, func(t *testing.T) {
			name := filepath.Join(dir, "corrupt"+ext)
			if err := os.WriteFile(name, rom, 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFile(name); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}
