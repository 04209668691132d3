package playbook

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/amp-labs/reorderable/logger"
	"github.com/saintfish/chardet"
	"github.com/spf13/afero"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// MaxItemSize bounds the length of one line, line ending included, in bytes.
const MaxItemSize = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadItems reads one item per line from path. Files that aren't valid UTF-8
// are decoded from their detected charset. Items are NFC-normalized, and
// blank lines are skipped.
func LoadItems(fs afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading items: %w", err)
	}

	text, err := io.ReadAll(utf8Reader(data))
	if err != nil {
		return nil, logger.AnnotateError(fmt.Errorf("decoding items: %w", err), "path", path)
	}

	items, err := ParseItems(text)
	if err != nil {
		return nil, logger.AnnotateError(err, "path", path)
	}

	return items, nil
}

// ParseItems splits UTF-8 text into NFC-normalized items, one per non-blank line.
// A line that doesn't fit in MaxItemSize fails with bufio.ErrTooLong.
func ParseItems(text []byte) ([]string, error) {
	var items []string

	scanner := bufio.NewScanner(bytes.NewReader(text))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxItemSize)

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		items = append(items, norm.NFC.String(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, logger.AnnotateError(fmt.Errorf("splitting items: %w", err), "items", len(items))
	}

	return items, nil
}

// utf8Reader returns a reader yielding data as UTF-8. Valid UTF-8 passes
// through (minus a BOM); otherwise chardet picks the charset, and if that
// fails too the bytes are passed through as they are.
func utf8Reader(data []byte) io.Reader {
	data = bytes.TrimPrefix(data, utf8BOM)

	if utf8.Valid(data) {
		return bytes.NewReader(data)
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return bytes.NewReader(data)
	}

	decoded, err := charset.NewReaderLabel(best.Charset, bytes.NewReader(data))
	if err != nil {
		return bytes.NewReader(data)
	}

	return decoded
}
