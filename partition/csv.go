// SPDX-License-Identifier: MIT
// Package: redistrict/partition
//
// csv.go - the assignment table exchanged with mapping and reporting tools:
//
//	unit,district
//	120010001,0
//	120010002,3

package partition

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/redistrict/precinct"
)

// ErrCSV is returned for malformed assignment tables.
var ErrCSV = errors.New("partition: malformed assignment table")

var csvHeader = []string{"unit", "district"}

// WriteCSV writes the assignment in unit input order.
func WriteCSV(w io.Writer, g *precinct.Graph, a Assignment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, d := range a {
		if err := cw.Write([]string{g.ID(i), strconv.Itoa(d)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads an assignment table for g with k districts. Every unit of g
// must appear exactly once; rows naming units outside g are rejected.
func ReadCSV(r io.Reader, g *precinct.Graph, k int) (Assignment, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrCSV, err)
	}
	if head[0] != csvHeader[0] || head[1] != csvHeader[1] {
		return nil, fmt.Errorf("%w: header %v, want %v", ErrCSV, head, csvHeader)
	}

	a := make(Assignment, g.Len())
	for i := range a {
		a[i] = Unassigned
	}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCSV, line, err)
		}
		u, ok := g.Index(rec[0])
		if !ok {
			return nil, fmt.Errorf("%w: line %d: unknown unit %q", ErrCSV, line, rec[0])
		}
		d, err := strconv.Atoi(rec[1])
		if err != nil || d < 0 || d >= k {
			return nil, fmt.Errorf("%w: line %d: district %q", ErrCSV, line, rec[1])
		}
		if a[u] != Unassigned {
			return nil, fmt.Errorf("%w: line %d: unit %q listed twice", ErrCSV, line, rec[0])
		}
		a[u] = d
	}
	for u, d := range a {
		if d == Unassigned {
			return nil, fmt.Errorf("%w: unit %q", ErrIncomplete, g.ID(u))
		}
	}
	return a, nil
}
