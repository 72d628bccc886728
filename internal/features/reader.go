// Package features reads 2019 embedding files.
//
// An embedding file is plain text: one frame per line, each line the same
// number of whitespace-separated finite decimal values, at least one line.
package features

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Sink receives recoverable per-file format problems in non-strict mode.
type Sink interface {
	Append(msg string)
}

// maxLineSize bounds a single embedding frame line (1MiB).
const maxLineSize = 1 << 20

// ReadAll checks the format of every manifest entry found in directory.
// Entries are resolved by basename; entries absent from the directory are
// skipped, missing files are the existence checker's concern. In strict mode
// the first malformed file aborts with an error; otherwise each problem is
// recorded in errs and reading continues.
func ReadAll(entries []string, directory string, strict bool, errs Sink) error {
	for _, entry := range entries {
		path := filepath.Join(directory, filepath.Base(entry))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		if err := readOne(path); err != nil {
			if strict {
				return err
			}
			errs.Append(err.Error())
		}
	}
	return nil
}

func readOne(path string) error {
	f, err := os.Open(path) // #nosec G304 -- path is inside the submission under test
	if err != nil {
		return fmt.Errorf("cannot read embedding file %s: %v", path, err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	dimension := 0
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			return fmt.Errorf(
				"bad format for embedding file %s: line %d is empty", path, lineno)
		}
		if dimension == 0 {
			dimension = len(fields)
		} else if len(fields) != dimension {
			return fmt.Errorf(
				"bad format for embedding file %s: line %d has %d values, expected %d",
				path, lineno, len(fields), dimension)
		}
		for _, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
				return fmt.Errorf(
					"bad format for embedding file %s: line %d has non-numeric value %q",
					path, lineno, field)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("cannot read embedding file %s: %v", path, err)
	}
	if lineno == 0 {
		return fmt.Errorf("bad format for embedding file %s: file is empty", path)
	}
	return nil
}
