package internal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNonPositiveBurst = errors.New("a burst number must be bigger than 0")
	ErrEvenBurstCount   = errors.New("there must be an odd number of bursts for each process")
	ErrNoProcesses      = errors.New("no processes found in the input")
)

// ReadBurstLines parses one process per line: whitespace-separated positive
// integers alternating CPU/IO/CPU/..., odd count. Blank lines are skipped.
func ReadBurstLines(r io.Reader) ([][]int, error) {
	scanner := bufio.NewScanner(r)
	var lines [][]int
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		bursts := make([]int, 0, len(fields))
		for _, field := range fields {
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q is not a number", lineNo, field)
			}
			bursts = append(bursts, n)
		}
		if err := ValidateBurstLine(bursts); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		lines = append(lines, bursts)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading bursts: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrNoProcesses
	}
	return lines, nil
}

// ValidateBurstLine checks the burst-sequence contract the core assumes:
// non-empty, odd length, every value positive.
func ValidateBurstLine(bursts []int) error {
	for _, b := range bursts {
		if b <= 0 {
			return ErrNonPositiveBurst
		}
	}
	if len(bursts) == 0 || len(bursts)%2 == 0 {
		return ErrEvenBurstCount
	}
	return nil
}
