// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iox provides boilerplate wrapper functions for the Go standard
// io functions to Read, Open, Write, and Save, with implementations for
// commonly used encoding formats: TOML and YAML.
package iox

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is an interface for standard decoder types.
type Decoder interface {
	// Decode decodes from io.Reader specified at creation
	Decode(v any) error
}

// DecoderFunc is a function that creates a new Decoder for given reader.
type DecoderFunc func(r io.Reader) Decoder

// Encoder is an interface for standard encoder types.
type Encoder interface {
	// Encode encodes to io.Writer specified at creation
	Encode(v any) error
}

// EncoderFunc is a function that creates a new Encoder for given writer.
type EncoderFunc func(w io.Writer) Encoder

// NewTOMLDecoder returns a new TOML [Decoder] that rejects unknown fields.
func NewTOMLDecoder(r io.Reader) Decoder {
	return toml.NewDecoder(r).DisallowUnknownFields()
}

// NewTOMLEncoder returns a new TOML [Encoder].
func NewTOMLEncoder(w io.Writer) Encoder {
	return toml.NewEncoder(w)
}

// NewYAMLDecoder returns a new YAML [Decoder] that rejects unknown fields.
func NewYAMLDecoder(r io.Reader) Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return d
}

// NewYAMLEncoder returns a new YAML [Encoder].
func NewYAMLEncoder(w io.Writer) Encoder {
	return yaml.NewEncoder(w)
}

// Format returns the decoder and encoder functions for the given
// filename, based on its extension: .toml, or .yaml / .yml.
func Format(filename string) (DecoderFunc, EncoderFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return NewTOMLDecoder, NewTOMLEncoder, nil
	case ".yaml", ".yml":
		return NewYAMLDecoder, NewYAMLEncoder, nil
	}
	return nil, nil, fmt.Errorf("iox: unsupported file format %q", filename)
}

// Read reads the given object from the given reader,
// using the given [DecoderFunc].
func Read(v any, reader io.Reader, f DecoderFunc) error {
	d := f(reader)
	return d.Decode(v)
}

// Write writes the given object using the given [EncoderFunc].
// Encoders that buffer output, such as YAML, are closed to flush it.
func Write(v any, writer io.Writer, f EncoderFunc) error {
	e := f(writer)
	if err := e.Encode(v); err != nil {
		return err
	}
	if c, ok := e.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Open reads the given object from the given filename,
// using the format implied by its extension.
func Open(v any, filename string) error {
	df, _, err := Format(filename)
	if err != nil {
		return err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Read(v, bufio.NewReader(fp), df)
}

// Save writes the given object to the given filename,
// using the format implied by its extension.
func Save(v any, filename string) error {
	_, ef, err := Format(filename)
	if err != nil {
		return err
	}
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fp.Close()
	bw := bufio.NewWriter(fp)
	err = Write(v, bw, ef)
	if err != nil {
		return err
	}
	return bw.Flush()
}
