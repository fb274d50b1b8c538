// SPDX-License-Identifier: MIT

package grid

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Load opens path and reads a rows×cols grid from it; see Read.
// Failure to open or read the file yields a *SourceError wrapping the OS
// error.
func Load(path string, rows, cols int, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Path: path, Err: err}
	}
	defer f.Close()
	g, err := Read(f, rows, cols, opts...)
	if err != nil {
		return nil, errors.WithMessagef(err, "loading %s", path)
	}
	return g, nil
}

// Read parses comma-separated rows from r into a padded grid.
//
// Lines are checked as they arrive: a token that is not an integer fails
// with ErrValueOutOfRange, a line whose token count differs from cols fails
// with a *ShapeError naming the 1-based row. Once the input is exhausted the
// row count is compared against rows. A blank line is a row of zero tokens.
// Rows have no length limit. I/O failures yield a *SourceError.
func Read(r io.Reader, rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrBadShape, "rows=%d cols=%d", rows, cols)
	}
	br := bufio.NewReader(r)

	data := make([][]int, 0, rows)
	rowNum := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.WithMessagef(&SourceError{Err: err}, "reading row %d", rowNum+1)
		}
		if line == "" && err == io.EOF {
			break
		}
		rowNum++
		row, perr := parseRow(rowNum, line)
		if perr != nil {
			return nil, perr
		}
		if len(row) != cols {
			return nil, &ShapeError{Row: rowNum, Got: len(row), Want: cols}
		}
		data = append(data, row)
		if err == io.EOF {
			break
		}
	}
	return FromRows(rows, cols, data, opts...)
}

// parseRow converts one line into integers.
func parseRow(rowNum int, line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return []int{}, nil
	}
	fields := strings.Split(line, ",")
	row := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, errors.Wrapf(ErrValueOutOfRange, "row %d column %d: %q is not an integer", rowNum, i+1, field)
		}
		row[i] = v
	}
	return row, nil
}
