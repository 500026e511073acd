// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package converter_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/gardener/slackmarkdown/pkg/converter"
	"github.com/gardener/slackmarkdown/pkg/converter/converterfakes"
	"github.com/gardener/slackmarkdown/pkg/mrkdwn"
	"github.com/gardener/slackmarkdown/pkg/writers/writersfakes"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"k8s.io/utils/pointer"
)

var _ = Describe("Worker", func() {
	var (
		ctx    context.Context
		reader *converterfakes.FakeReader
		writer *writersfakes.FakeWriter
		worker *converter.Worker
		task   *converter.Task
		err    error
	)
	BeforeEach(func() {
		ctx = context.Background()
		reader = &converterfakes.FakeReader{}
		reader.ReadReturns([]byte("*hi* <@U1|bob>"), nil)
		writer = &writersfakes.FakeWriter{}
		worker = &converter.Worker{
			Reader:    reader,
			Writer:    writer,
			Converter: mrkdwn.New(nil),
		}
		task = &converter.Task{Source: "in/general.mrkdwn", Path: "channels", Name: "general"}
	})
	JustBeforeEach(func() {
		err = worker.Work(ctx, task)
	})
	It("converts and writes the document", func() {
		Expect(err).NotTo(HaveOccurred())
		Expect(reader.ReadCallCount()).To(Equal(1))
		_, source := reader.ReadArgsForCall(0)
		Expect(source).To(Equal("in/general.mrkdwn"))
		Expect(writer.WriteCallCount()).To(Equal(1))
		name, path, blob := writer.WriteArgsForCall(0)
		Expect(name).To(Equal("general"))
		Expect(path).To(Equal("channels"))
		Expect(string(blob)).To(Equal(`<strong>hi</strong> <span class="s-mention s-user">@bob</span>`))
	})
	When("reading fails", func() {
		BeforeEach(func() {
			reader.ReadReturns(nil, errors.New("no such file"))
		})
		It("returns the error", func() {
			Expect(err).To(MatchError("no such file"))
			Expect(writer.WriteCallCount()).To(Equal(0))
		})
	})
	When("writing fails", func() {
		BeforeEach(func() {
			writer.WriteReturns(errors.New("disk full"))
		})
		It("wraps the error", func() {
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("writing in/general.mrkdwn failed"))
			Expect(errors.Unwrap(err)).To(MatchError("disk full"))
		})
	})
	When("sanitizing unescaped output", func() {
		BeforeEach(func() {
			reader.ReadReturns([]byte("<script>alert(1)</script>*hi* <@U1>"), nil)
			worker.Converter = mrkdwn.New(&mrkdwn.Options{EscapeHTML: pointer.BoolPtr(false)})
			worker.Policy = converter.NewPolicy()
		})
		It("removes unsafe markup and keeps mention classes", func() {
			Expect(err).NotTo(HaveOccurred())
			_, _, blob := writer.WriteArgsForCall(0)
			Expect(string(blob)).NotTo(ContainSubstring("<script"))
			Expect(string(blob)).To(ContainSubstring("<strong>hi</strong>"))
			Expect(string(blob)).To(ContainSubstring(`<span class="s-mention s-user">@U1</span>`))
		})
	})
})

var _ = Describe("Run", func() {
	var (
		reader *converterfakes.FakeReader
		writer *writersfakes.FakeWriter
		worker *converter.Worker
		tasks  []*converter.Task
	)
	BeforeEach(func() {
		reader = &converterfakes.FakeReader{}
		reader.ReadStub = func(ctx context.Context, source string) ([]byte, error) {
			if source == "broken" {
				return nil, errors.New("cannot read broken")
			}
			return []byte("_" + source + "_"), nil
		}
		writer = &writersfakes.FakeWriter{}
		worker = &converter.Worker{Reader: reader, Writer: writer, Converter: mrkdwn.New(nil)}
		tasks = []*converter.Task{
			{Source: "a", Name: "a"},
			{Source: "broken", Name: "broken"},
			{Source: "b", Name: "b"},
		}
	})
	It("converts all documents and collects the errors", func() {
		err := converter.Run(context.Background(), worker, tasks, 2, false)
		Expect(err).To(HaveOccurred())
		var merr *multierror.Error
		Expect(errors.As(err, &merr)).To(BeTrue())
		Expect(merr.Errors).To(HaveLen(1))
		Expect(merr.Errors[0]).To(MatchError("cannot read broken"))
		Expect(reader.ReadCallCount()).To(Equal(3))
		Expect(writer.WriteCallCount()).To(Equal(2))
	})
	It("rejects an invalid number of workers", func() {
		Expect(converter.Run(context.Background(), worker, tasks, 0, false)).NotTo(Succeed())
		Expect(reader.ReadCallCount()).To(Equal(0))
	})
})

var _ = Describe("NewTasks", func() {
	var dir string
	BeforeEach(func() {
		dir = filepath.Join(os.TempDir(), "test"+uuid.New().String())
		Expect(os.MkdirAll(filepath.Join(dir, "archive", "random"), os.ModePerm)).To(Succeed())
		for _, f := range []string{"archive/general.mrkdwn", "archive/random/2020.MRKDWN", "archive/random/logo.png", "single.txt"} {
			Expect(os.WriteFile(filepath.Join(dir, f), []byte("x"), 0644)).To(Succeed())
		}
	})
	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})
	It("walks directories and keeps files", func() {
		tasks, err := converter.NewTasks([]string{filepath.Join(dir, "archive"), filepath.Join(dir, "single.txt")}, []string{".mrkdwn"})
		Expect(err).NotTo(HaveOccurred())
		Expect(tasks).To(Equal([]*converter.Task{
			{Source: filepath.Join(dir, "archive", "general.mrkdwn"), Path: "", Name: "general"},
			{Source: filepath.Join(dir, "archive", "random", "2020.MRKDWN"), Path: "random", Name: "2020"},
			{Source: filepath.Join(dir, "single.txt"), Path: "", Name: "single"},
		}))
	})
	It("fails when sources in a directory convert to the same file", func() {
		Expect(os.WriteFile(filepath.Join(dir, "archive", "general.txt"), []byte("x"), 0644)).To(Succeed())
		_, err := converter.NewTasks([]string{filepath.Join(dir, "archive")}, []string{".mrkdwn", ".txt"})
		Expect(err).To(MatchError(ContainSubstring("both convert to general")))
	})
	It("fails when file sources convert to the same file", func() {
		Expect(os.WriteFile(filepath.Join(dir, "archive", "random", "single.txt"), []byte("x"), 0644)).To(Succeed())
		_, err := converter.NewTasks([]string{filepath.Join(dir, "single.txt"), filepath.Join(dir, "archive", "random", "single.txt")}, nil)
		Expect(err).To(MatchError(ContainSubstring("both convert to single")))
	})
	It("fails on missing sources", func() {
		_, err := converter.NewTasks([]string{filepath.Join(dir, "missing")}, []string{".mrkdwn"})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("FileReader", func() {
	It("fails on missing files", func() {
		_, err := converter.FileReader{}.Read(context.Background(), filepath.Join(os.TempDir(), uuid.New().String()))
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})
})
