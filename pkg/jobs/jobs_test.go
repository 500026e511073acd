// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs_test

import (
	"context"
	"errors"
	"sync"

	"github.com/gardener/slackmarkdown/pkg/jobs"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Jobs", func() {
	var (
		size     int
		failFast bool
		worker   jobs.WorkerFunc[string]
		wg       *sync.WaitGroup
		ctx      context.Context
		queue    *jobs.JobQueue[string]
		err      error
	)
	BeforeEach(func() {
		size = 2
		failFast = false
		worker = func(ctx context.Context, task string) error {
			if task == "" {
				return errors.New("task is empty")
			}
			return nil
		}
		wg = &sync.WaitGroup{}
		ctx = context.Background()
	})
	JustBeforeEach(func() {
		queue, err = jobs.NewJobQueue("TestQueue", size, worker, failFast, wg)
	})
	When("creating new JobQueue", func() {
		It("creates a job queue", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(queue).NotTo(BeNil())
		})
		Context("workers size is invalid", func() {
			BeforeEach(func() {
				size = 101
			})
			It("should error", func() {
				Expect(queue).To(BeNil())
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("101"))
			})
		})
		Context("worker func not set", func() {
			BeforeEach(func() {
				worker = nil
			})
			It("should error", func() {
				Expect(queue).To(BeNil())
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("worker func is nil"))
			})
		})
		Context("wait group not set", func() {
			BeforeEach(func() {
				wg = nil
			})
			It("should error", func() {
				Expect(queue).To(BeNil())
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("wait group is nil"))
			})
		})
	})
	When("adding tasks to not started JobQueue", func() {
		JustBeforeEach(func() {
			Expect(queue.AddTask("a.mrkdwn")).To(BeTrue())
			Expect(queue.AddTask("")).To(BeTrue())
			Expect(queue.AddTask("b.mrkdwn")).To(BeTrue())
		})
		It("buffers the tasks for execution", func() {
			Expect(queue.GetWaitingTasksCount()).To(Equal(3))
			Expect(queue.GetProcessedTasksCount()).To(Equal(0))
		})
	})
	When("adding tasks to started JobQueue", func() {
		JustBeforeEach(func() {
			queue.Start(ctx)
			Expect(queue.AddTask("a.mrkdwn")).To(BeTrue())
			Expect(queue.AddTask("")).To(BeTrue())
			Expect(queue.AddTask("b.mrkdwn")).To(BeTrue())
			wg.Wait()
		})
		It("process the tasks for execution", func() {
			Expect(queue.GetProcessedTasksCount()).To(Equal(3))
			Expect(queue.GetWaitingTasksCount()).To(Equal(0))
		})
		It("reports errors during task processing", func() {
			Expect(queue.GetErrorList()).NotTo(BeNil())
			Expect(queue.GetErrorList().Unwrap()).To(Equal(errors.New("task is empty")))
		})
	})
	When("processing a batch", func() {
		It("returns the combined errors", func() {
			err := queue.Process(ctx, []string{"", "a.mrkdwn", ""})
			Expect(err).To(HaveOccurred())
			Expect(queue.GetProcessedTasksCount()).To(Equal(3))
			Expect(queue.GetErrorList().Errors).To(HaveLen(2))
		})
		It("returns nil when all tasks succeed", func() {
			Expect(queue.Process(ctx, []string{"a.mrkdwn", "b.mrkdwn"})).To(Succeed())
			Expect(queue.AddTask("c.mrkdwn")).To(BeFalse())
		})
	})
	When("adding tasks to stopped JobQueue", func() {
		JustBeforeEach(func() {
			queue.Start(context.Background())
			queue.Stop()
		})
		It("skips the tasks", func() {
			Expect(queue.AddTask("a.mrkdwn")).To(BeFalse())
			Expect(queue.AddTask("")).To(BeFalse())
		})
	})
	When("fail fast strategy is set", func() {
		BeforeEach(func() {
			failFast = true
		})
		JustBeforeEach(func() {
			Expect(queue.AddTask("")).To(BeTrue())
			queue.Start(ctx)
			wg.Wait()
		})
		It("skips the tasks after first error", func() {
			Expect(queue.GetProcessedTasksCount()).To(Equal(1))
			Expect(queue.AddTask("a.mrkdwn")).To(BeFalse())
			Expect(queue.GetErrorList().Unwrap()).To(Equal(errors.New("task is empty")))
		})
	})
	When("workers context is canceled", func() {
		var done context.CancelFunc
		BeforeEach(func() {
			ctx, done = context.WithCancel(context.Background())
		})
		JustBeforeEach(func() {
			queue.Start(ctx)
			done()
		})
		It("skips the tasks after context cancellation", func() {
			Eventually(func() bool {
				return queue.AddTask("a.mrkdwn")
			}).Should(BeFalse())
			Expect(queue.AddTask("b.mrkdwn")).To(BeFalse())
		})
	})
	When("worker func panics", func() {
		BeforeEach(func() {
			worker = func(ctx context.Context, task string) error {
				if task == "" {
					panic("task is empty")
				}
				return nil
			}
		})
		JustBeforeEach(func() {
			queue.Start(ctx)
			Expect(queue.AddTask("a.mrkdwn")).To(BeTrue())
			Expect(queue.AddTask("")).To(BeTrue())
			wg.Wait()
		})
		It("recovers the panic and reports an error", func() {
			Expect(queue.GetProcessedTasksCount()).To(Equal(2))
			Expect(queue.GetErrorList()).NotTo(BeNil())
			Expect(queue.GetErrorList().Error()).To(ContainSubstring("task is empty"))
		})
	})
})
