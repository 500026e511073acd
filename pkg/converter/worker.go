// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package converter

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gardener/slackmarkdown/pkg/jobs"
	"github.com/gardener/slackmarkdown/pkg/mrkdwn"
	"github.com/gardener/slackmarkdown/pkg/writers"
	"github.com/microcosm-cc/bluemonday"
	"k8s.io/klog/v2"
)

// Task is a single document conversion
type Task struct {
	// Source is the path of the markup document
	Source string
	// Path is the output directory relative to the writer root
	Path string
	// Name is the output file name without extension
	Name string
}

func (t *Task) String() string {
	return t.Source
}

// Worker converts documents read by Reader and writes the
// resulting HTML with Writer
type Worker struct {
	Reader    Reader
	Writer    writers.Writer
	Converter *mrkdwn.Converter
	// Policy sanitizes the converted HTML, nil disables sanitization
	Policy *bluemonday.Policy
}

// Convert converts text into HTML, sanitizing the result when the
// worker has a policy
func (w *Worker) Convert(text string) string {
	html := w.Converter.ToHTML(text)
	if w.Policy != nil {
		html = w.Policy.Sanitize(html)
	}
	return html
}

// Work converts the document of task
func (w *Worker) Work(ctx context.Context, task *Task) error {
	blob, err := w.Reader.Read(ctx, task.Source)
	if err != nil {
		return err
	}
	html := w.Convert(string(blob))
	klog.V(6).Infof("converted %s: %d -> %d bytes\n", task.Source, len(blob), len(html))
	if err := w.Writer.Write(task.Name, task.Path, []byte(html)); err != nil {
		return fmt.Errorf("writing %s failed: %w", task.Source, err)
	}
	return nil
}

// Run converts tasks in parallel with the given number of workers.
// Unless failFast is set, all tasks are attempted and their errors
// are returned combined.
func Run(ctx context.Context, w *Worker, tasks []*Task, workers int, failFast bool) error {
	queue, err := jobs.NewJobQueue[*Task]("Conversion", workers, w.Work, failFast, &sync.WaitGroup{})
	if err != nil {
		return err
	}
	err = queue.Process(ctx, tasks)
	klog.Infof("converted %d of %d documents\n", queue.GetProcessedTasksCount()-errorCount(queue), len(tasks))
	return err
}

func errorCount(q jobs.QueueController) int {
	if l := q.GetErrorList(); l != nil {
		return len(l.Errors)
	}
	return 0
}

// NewTasks creates the tasks for sources. A file becomes a task
// written to the destination root. A directory is walked for files
// with one of the extensions exts, keeping their relative directory.
// Sources converting to the same output file are an error.
func NewTasks(sources []string, exts []string) ([]*Task, error) {
	var tasks []*Task
	for _, source := range sources {
		info, err := os.Stat(source)
		if err != nil {
			return nil, fmt.Errorf("invalid source %s: %w", source, err)
		}
		if !info.IsDir() {
			tasks = append(tasks, newTask(source, ""))
			continue
		}
		err = filepath.WalkDir(source, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !hasExt(p, exts) {
				return nil
			}
			rel, err := filepath.Rel(source, filepath.Dir(p))
			if err != nil {
				return err
			}
			if rel == "." {
				rel = ""
			}
			tasks = append(tasks, newTask(p, rel))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s failed: %w", source, err)
		}
	}
	if err := checkOutputs(tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// checkOutputs fails when two tasks would write the same file
func checkOutputs(tasks []*Task) error {
	outputs := make(map[string]string, len(tasks))
	for _, t := range tasks {
		out := filepath.Join(t.Path, t.Name)
		if source, ok := outputs[out]; ok {
			return fmt.Errorf("%s and %s both convert to %s", source, t.Source, out)
		}
		outputs[out] = t.Source
	}
	return nil
}

func newTask(source, path string) *Task {
	name := filepath.Base(source)
	return &Task{
		Source: source,
		Path:   path,
		Name:   strings.TrimSuffix(name, filepath.Ext(name)),
	}
}

func hasExt(p string, exts []string) bool {
	for _, ext := range exts {
		if strings.EqualFold(filepath.Ext(p), ext) {
			return true
		}
	}
	return false
}
