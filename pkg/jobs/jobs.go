// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

const (
	maxWorkerSize = 100
	minWorkerSize = 1
	bufferSize    = 200
)

// QueueController can Start/Stop the queue and see its status
type QueueController interface {
	// Start initializes worker's goroutines. The provided context ctx is used by worker goroutines
	Start(ctx context.Context)
	// Stop stops the worker's goroutines, it could be triggered internally on context cancellation or failFast situation
	Stop()
	// GetErrorList returns the errors, occurred during task processing
	GetErrorList() *multierror.Error
	// GetProcessedTasksCount returns the processed tasks count
	GetProcessedTasksCount() int
	// GetWaitingTasksCount returns waiting tasks count
	GetWaitingTasksCount() int
}

// WorkerFunc processes a single task of type T
type WorkerFunc[T any] func(ctx context.Context, task T) error

// JobQueue feeds tasks of type T to a fixed set of workers
type JobQueue[T any] struct {
	// id is job identifier used in log messages
	id       string
	size     int
	workFunc WorkerFunc[T]
	// failFast stops the queue upon the first error
	failFast bool
	// wg tracks the tasks to wait for
	wg      *sync.WaitGroup
	tasks   chan T
	errList *multierror.Error
	// initialize and stop once
	initOnce, stopOnce sync.Once
	mux                sync.Mutex
	stopped            bool
	processed          atomic.Uint32
}

var _ QueueController = &JobQueue[struct{}]{}

// NewJobQueue creates an empty task queue processed by size workers
func NewJobQueue[T any](id string, size int, workFunc WorkerFunc[T], failFast bool, wg *sync.WaitGroup) (*JobQueue[T], error) {
	if size < minWorkerSize || size > maxWorkerSize {
		return nil, fmt.Errorf("job queue %s init fails: invalid workers size '%d', valid size interval is [%d,%d]", id, size, minWorkerSize, maxWorkerSize)
	}
	if workFunc == nil {
		return nil, fmt.Errorf("job queue %s init fails: worker func is nil", id)
	}
	if wg == nil {
		return nil, fmt.Errorf("job queue %s init fails: wait group is nil", id)
	}
	return &JobQueue[T]{
		id:       id,
		size:     size,
		workFunc: workFunc,
		failFast: failFast,
		wg:       wg,
		tasks:    make(chan T, bufferSize),
	}, nil
}

// Start initializes worker's goroutines
// the provided context ctx is used by worker goroutines
func (jq *JobQueue[T]) Start(ctx context.Context) {
	jq.initOnce.Do(func() {
		klog.V(6).Infof("starting %s queue with %d workers\n", jq.id, jq.size)
		for i := 0; i < jq.size; i++ {
			go jq.work(ctx)
		}
	})
}

// Stop stops the worker's goroutines, it could be triggered
// internally on context cancellation or failFast situation
func (jq *JobQueue[T]) Stop() {
	jq.stopOnce.Do(func() {
		jq.mux.Lock()
		defer jq.mux.Unlock()
		klog.V(6).Infof("stopping %s queue\n", jq.id)
		jq.stopped = true
		close(jq.tasks)
	})
}

// AddTask adds a task to the tasks queue and increases the wait group counter.
// It returns false if the task is skipped because the queue is stopped.
func (jq *JobQueue[T]) AddTask(task T) (added bool) {
	defer func() {
		if recover() != nil {
			jq.wg.Done()
			klog.V(6).Infof("recover adding task %v in closed %s queue\n", task, jq.id)
			added = false
		}
	}()
	if jq.shouldProcess() {
		jq.wg.Add(1)
		jq.tasks <- task
		return true
	}
	klog.V(6).Infof("skipping task %v in %s queue\n", task, jq.id)
	return false
}

// Process starts the queue, runs all tasks and stops the queue once
// they are done. The errors of the run are returned combined.
func (jq *JobQueue[T]) Process(ctx context.Context, tasks []T) error {
	jq.Start(ctx)
	for _, t := range tasks {
		if !jq.AddTask(t) {
			break
		}
	}
	jq.wg.Wait()
	jq.Stop()
	return jq.GetErrorList().ErrorOrNil()
}

// GetErrorList returns the errors, occurred during task processing
func (jq *JobQueue[T]) GetErrorList() *multierror.Error {
	jq.mux.Lock()
	defer jq.mux.Unlock()
	return jq.errList
}

// GetProcessedTasksCount returns the processed tasks count
func (jq *JobQueue[T]) GetProcessedTasksCount() int {
	return int(jq.processed.Load())
}

// GetWaitingTasksCount returns waiting tasks count
func (jq *JobQueue[T]) GetWaitingTasksCount() int {
	return len(jq.tasks)
}

// work processes tasks from the queue until it is closed, a done
// context stops the queue
func (jq *JobQueue[T]) work(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			klog.V(6).Infof("context is done for %s queue\n", jq.id)
			jq.Stop()
			// drain what is left
			for t := range jq.tasks {
				jq.runWorkFunc(ctx, t)
			}
			return
		case t, ok := <-jq.tasks:
			if !ok {
				klog.V(6).Infof("job queue %s is stopped\n", jq.id)
				return
			}
			jq.runWorkFunc(ctx, t)
		}
	}
}

// runWorkFunc runs the work func recording its error or panic,
// then marks the task done
func (jq *JobQueue[T]) runWorkFunc(ctx context.Context, t T) {
	defer jq.wg.Done()
	defer jq.processed.Add(1)
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("panic in %s for task %v recovered: %v", jq.id, t, r)
			klog.Warning(err.Error(), "\n", string(debug.Stack()))
			jq.appendError(err)
		}
	}()
	if jq.shouldProcess() {
		if err := jq.workFunc(ctx, t); err != nil {
			jq.appendError(err)
		}
	}
}

func (jq *JobQueue[T]) appendError(err error) {
	jq.mux.Lock()
	defer jq.mux.Unlock()

	jq.errList = multierror.Append(jq.errList, err)
	if jq.failFast {
		go jq.Stop()
	}
}

// shouldProcess is false once the queue is stopped or, in fail fast
// mode, an error has occurred
func (jq *JobQueue[T]) shouldProcess() bool {
	jq.mux.Lock()
	defer jq.mux.Unlock()

	return !jq.stopped && !(jq.failFast && jq.errList != nil)
}
