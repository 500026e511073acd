// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates a Writer recording files under root
	// instead of writing them
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() bool
}

type dryRunWriter struct {
	Writer io.Writer
	mux    sync.Mutex
	files  []*file
	t1     time.Time
}

type file struct {
	path string
	size int
}

type writer struct {
	root  string
	owner *dryRunWriter
	ext   string
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// reporting to w
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		files:  []*file{},
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root:  root,
		owner: d,
		ext:   "html",
	}
}

func (w *writer) Write(name, p string, blob []byte) error {
	if !strings.HasSuffix(name, "."+w.ext) {
		name = fmt.Sprintf("%s.%s", name, w.ext)
	}
	f := &file{
		path: path.Join(w.root, p, name),
		size: len(blob),
	}
	w.owner.mux.Lock()
	defer w.owner.mux.Unlock()
	w.owner.files = append(w.owner.files, f)
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() bool {
	var b bytes.Buffer

	d.mux.Lock()
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)
	count := len(d.files)
	d.mux.Unlock()

	elapsedTime := time.Since(d.t1)
	b.WriteString(fmt.Sprintf("\nConverted %d files in %f seconds\n", count, elapsedTime.Seconds()))

	if _, err := d.Writer.Write(b.Bytes()); err != nil {
		fmt.Println(err.Error())
		return false
	}
	return true
}

// format writes files as an indented tree, leaves are followed by
// their size
func format(files []*file, b *bytes.Buffer) {
	seen := map[string]struct{}{}
	for _, f := range files {
		dd := strings.Split(strings.TrimPrefix(f.path, "/"), "/")
		for i, s := range dd {
			p := strings.Join(dd[:i+1], "/")
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			b.Write(bytes.Repeat([]byte("  "), i))
			if i == len(dd)-1 {
				b.WriteString(fmt.Sprintf("%s (%d bytes)\n", s, f.size))
				continue
			}
			b.WriteString(fmt.Sprintf("%s\n", s))
		}
	}
}
