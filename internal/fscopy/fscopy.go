// Package fscopy provides the recursive copy helpers shared by bundle
// staging and install.
package fscopy

import (
	"io"
	"os"
	"path/filepath"
)

// Dir recursively copies src into dst, creating dst. Git metadata is
// skipped.
func Dir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.Name() == ".git" {
			continue
		}

		if entry.IsDir() {
			if err := Dir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := File(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// File copies a single file, preserving its mode.
func File(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
