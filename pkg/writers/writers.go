// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Writer writes converted documents with name to a given path
//
//counterfeiter:generate . Writer
type Writer interface {
	Write(name, path string, blob []byte) error
}
