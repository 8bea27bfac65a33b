package storage

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// maxLineBytes bounds a single JSONL line. Records carry at most a few KB
// of prompt text, so a megabyte means the line is not a usable record; it
// is skipped like any other malformed line.
const maxLineBytes = 1 << 20

// WriteRecords writes records to path as JSONL, one record per line. Every
// record is validated before anything is written, so an invalid record
// cannot leave a partial file behind.
func WriteRecords(path string, records []core.KnowledgeRecord) error {
	for i := range records {
		if err := core.ValidateKnowledgeRecord(&records[i]); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			f.Close()
			return err
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// ReadRecords reads a JSONL knowledge base from path.
//
// Reading is lenient: a missing file logs a warning and yields an empty
// knowledge base, and malformed or oversized lines are skipped so one bad
// record cannot take down the rest of the file. Any other I/O error
// surfaces.
func ReadRecords(path string) ([]core.KnowledgeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("knowledge base file missing, starting empty", "path", path)
			return []core.KnowledgeRecord{}, nil
		}
		return nil, err
	}
	defer f.Close()

	records := make([]core.KnowledgeRecord, 0)

	reader := bufio.NewReaderSize(f, 64*1024)
	line := 0
	for {
		data, tooLong, readErr := readLine(reader)
		done := errors.Is(readErr, io.EOF)
		if readErr != nil && !done {
			return nil, readErr
		}
		if done && len(data) == 0 && !tooLong {
			break
		}
		line++

		if tooLong {
			slog.Debug("skipping oversized record line", "path", path, "line", line)
		} else if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 {
			var record core.KnowledgeRecord
			if err := json.Unmarshal(trimmed, &record); err != nil {
				slog.Debug("skipping malformed record line", "path", path, "line", line, "err", err)
			} else {
				records = append(records, record)
			}
		}

		if done {
			break
		}
	}

	return records, nil
}

// readLine reads one line, newline included. A line longer than
// maxLineBytes is consumed to its end but reported as tooLong with no data,
// so the reader stays in sync and the next line parses normally. The error
// is io.EOF when the final line has no trailing newline.
func readLine(r *bufio.Reader) (data []byte, tooLong bool, err error) {
	for {
		frag, err := r.ReadSlice('\n')
		data = append(data, frag...)
		if err == nil || errors.Is(err, io.EOF) {
			return data, false, err
		}
		if !errors.Is(err, bufio.ErrBufferFull) {
			return nil, false, err
		}
		if len(data) > maxLineBytes {
			return nil, true, discardLine(r)
		}
	}
}

// discardLine consumes the rest of the current line.
func discardLine(r *bufio.Reader) error {
	for {
		_, err := r.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return err
	}
}
