// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package converter

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"
	"fmt"
	"os"
)

// Reader reads the bytes data from a given source
//
//counterfeiter:generate . Reader
type Reader interface {
	Read(ctx context.Context, source string) ([]byte, error)
}

// FileReader reads sources from the local file system
type FileReader struct{}

// Read reads the file at source
func (FileReader) Read(ctx context.Context, source string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading %s failed: %w", source, err)
	}
	return blob, nil
}
