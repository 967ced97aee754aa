// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/tfidf/internal/config"
	"github.com/katalvlaran/tfidf/tokenize"
)

const maxLineBytes = 16 << 20

var (
	errShortRecord = errors.New("csv record has too few columns")
	errInputMode   = errors.New("--html and --csv-column are mutually exclusive")
)

// readCorpus collects documents from every path in order ("-" or no paths
// reads stdin).
func readCorpus(paths []string, stdin io.Reader, in config.InputConfig) ([]string, error) {
	if in.HTML && in.CSVColumn > 0 {
		return nil, errInputMode
	}
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var docs []string
	for _, p := range paths {
		got, err := readSource(p, stdin, in)
		if err != nil {
			return nil, err
		}
		docs = append(docs, got...)
	}
	if docs == nil {
		docs = []string{}
	}

	return docs, nil
}

func readSource(path string, stdin io.Reader, in config.InputConfig) ([]string, error) {
	r := stdin
	name := "stdin"
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r, name = f, path
	}

	var (
		docs []string
		err  error
	)
	switch {
	case in.HTML:
		var text string
		if text, err = tokenize.HTMLText(r); err == nil {
			docs = []string{text}
		}
	case in.CSVColumn > 0:
		docs, err = readCSVColumn(r, in.CSVColumn, in.CSVHeader)
	default:
		docs, err = readLines(r)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return docs, nil
}

// readLines treats every line as one document; blank lines are empty documents.
func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var docs []string
	for sc.Scan() {
		docs = append(docs, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lines: %w", err)
	}

	return docs, nil
}

// readCSVColumn returns the 1-based column of every record.
func readCSVColumn(r io.Reader, column int, header bool) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var docs []string
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		if header && line == 1 {
			continue
		}
		if column > len(rec) {
			return nil, fmt.Errorf("record %d has %d columns, want column %d: %w", line, len(rec), column, errShortRecord)
		}
		docs = append(docs, rec[column-1])
	}

	return docs, nil
}
