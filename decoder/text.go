package decoder

import (
	"bufio"
	"context"
	"flight-parser/domain"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

const maxLineSize = 16 * domain.MB

// TextDecoder reads comma separated text logs line by line.
// It needs no keychains.
type TextDecoder struct {
	log *slog.Logger
}

func NewTextDecoder(log *slog.Logger) *TextDecoder {
	return &TextDecoder{log: log}
}

func (d *TextDecoder) RequiresKeychains() bool {
	return false
}

func (d *TextDecoder) FetchKeychains(context.Context, string, string) (domain.Keychains, error) {
	return nil, nil
}

// Parse turns every non-blank line into a TextLine. Runs of whitespace are
// collapsed, invalid UTF-8 is dropped and empty comma separated values are skipped.
func (d *TextDecoder) Parse(ctx context.Context, path string, _ domain.Keychains) (domain.FlightLog, error) {
	file, err := os.Open(path)
	if err != nil {
		return domain.FlightLog{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	lines := make([]domain.TextLine, 0)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*domain.KB), maxLineSize)
	scanner.Split(scanLines)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return domain.FlightLog{}, err
		}
		line := cleanLine(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, domain.TextLine{
			Line:   len(lines) + 1,
			Raw:    line,
			Values: splitValues(line),
		})
	}
	if err := scanner.Err(); err != nil {
		return domain.FlightLog{}, fmt.Errorf("read %s: %w", path, err)
	}

	d.log.Debug("Text log decoded", "file", filepath.Base(path), "lines", len(lines))
	return domain.FlightLog{File: filepath.Base(path), Lines: lines}, nil
}

func cleanLine(line string) string {
	return strings.Join(strings.Fields(strings.ToValidUTF8(line, "")), " ")
}

func splitValues(line string) []string {
	values := make([]string, 0)
	for _, part := range strings.Split(line, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}

// scanLines splits on every line boundary a text log may use: \n, \r\n, a lone
// \r, \v, \f, the file/group/record separators, NEL, LS and PS.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	for i := 0; i < len(data); {
		if !atEOF && !utf8.FullRune(data[i:]) {
			return 0, nil, nil
		}
		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case '\r':
			switch {
			case i+1 < len(data) && data[i+1] == '\n':
				return i + 2, data[:i], nil
			case i+1 < len(data) || atEOF:
				return i + 1, data[:i], nil
			default:
				// A following \n may still arrive.
				return 0, nil, nil
			}
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			return i + size, data[:i], nil
		}
		i += size
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
