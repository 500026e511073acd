// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FSWriter is implementation of Writer interface for writing blobs to the file system
type FSWriter struct {
	Root string
	// Ext is appended to names that do not carry it yet
	Ext string
}

func (f *FSWriter) Write(name, path string, blob []byte) error {
	if name == "" {
		return fmt.Errorf("writing to %s failed: empty file name", path)
	}
	p := filepath.Join(f.Root, path)
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return fmt.Errorf("creating directory %s failed: %w", p, err)
	}
	if len(f.Ext) > 0 && !strings.HasSuffix(name, "."+f.Ext) {
		name = fmt.Sprintf("%s.%s", name, f.Ext)
	}
	filePath := filepath.Join(p, name)
	if err := os.WriteFile(filePath, blob, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", filePath, err)
	}
	return nil
}
