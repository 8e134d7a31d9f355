// Package corpusio splits a JSON-Lines byte stream into records and
// extracts named top-level string fields from one record. It is a
// record splitter and field extractor, not a JSON schema engine or a
// type inferencer: spec.md §1 explicitly scopes those out, and this
// package stays deliberately minimal so a caller can feed raw field
// bytes straight into text/uchar.Make. Grounded on spec.md §6.3.
package corpusio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tawesoft/corpus/v2/text/uchar"
)

// NewRecordScanner returns a *bufio.Scanner over r whose Split function
// yields one JSON-Lines record per call to Scan, stripping the
// terminating newline. A trailing partial line at EOF (no terminating
// newline) is still returned as a final record.
func NewRecordScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	s.Split(splitRecords)
	return s
}

func splitRecords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, dropCR(data[:i]), nil
	}
	if atEOF {
		return len(data), dropCR(data), nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[:len(data)-1]
	}
	return data
}

// TextFields extracts the named top-level string fields from one
// JSON-Lines record, in the order paths were given, using
// encoding/json's token-mode Decoder (no reflection, no struct tags, no
// intermediate map allocation). A missing field yields a zero-value
// uchar.Text at its position and no error; malformed JSON is an error.
func TextFields(record []byte, paths ...string) ([]uchar.Text, error) {
	want := make(map[string]int, len(paths))
	for i, p := range paths {
		want[p] = i
	}

	out := make([]uchar.Text, len(paths))
	found := make([]bool, len(paths))

	dec := json.NewDecoder(bytes.NewReader(record))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("corpusio: %w", err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, fmt.Errorf("corpusio: record is not a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("corpusio: %w", err)
		}
		key, _ := keyTok.(string)

		idx, wanted := want[key]
		if !wanted {
			if err := skipValue(dec); err != nil {
				return nil, fmt.Errorf("corpusio: %w", err)
			}
			continue
		}

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("corpusio: %w", err)
		}
		s, isString := valTok.(string)
		if !isString {
			continue
		}

		txt, err := uchar.Make([]byte(s), false)
		if err != nil {
			return nil, fmt.Errorf("corpusio: field %q: %w", key, err)
		}
		out[idx] = txt
		found[idx] = true
	}

	return out, nil
}

// skipValue consumes one complete JSON value (object, array, or scalar)
// from dec's token stream, for fields the caller didn't ask for.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil // scalar: already consumed
	}
	if delim == '{' || delim == '[' {
		depth := 1
		for depth > 0 {
			tok, err := dec.Token()
			if err != nil {
				return err
			}
			if d, ok := tok.(json.Delim); ok {
				switch d {
				case '{', '[':
					depth++
				case '}', ']':
					depth--
				}
			}
		}
	}
	return nil
}
