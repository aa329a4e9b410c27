package lib

import (
	"bufio"
	"io"
	"os"
	"strings"
)

type BatchResult struct {
	Line       int
	Expression string
	Value      float64
	Err        error
}

// ReadBatchFromFile evaluates every non-blank line of a file.
func ReadBatchFromFile(filePath string) ([]BatchResult, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return EvaluateLines(file)
}

// EvaluateLines evaluates each non-blank line of r independently. A bad
// expression is reported in its own result; only read failures are
// returned as the error.
func EvaluateLines(r io.Reader) ([]BatchResult, error) {
	results := []BatchResult{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		expr := strings.TrimSpace(scanner.Text())
		if expr == "" {
			continue
		}
		value, err := Evaluate(expr)
		results = append(results, BatchResult{
			Line:       lineNo,
			Expression: expr,
			Value:      value,
			Err:        err,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r BatchResult) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return FormatResult(r.Value)
}
