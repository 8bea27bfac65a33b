package storage

import (
	"bufio"
	"os"

	"github.com/mus-format/mus-go/varint"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// Snapshot header: magic bytes, then a format version byte.
const (
	snapshotMagic   = "DLKB"
	snapshotVersion = byte(1)
)

// WriteSnapshot writes records to path as a binary snapshot: the header
// followed by one length-prefixed MUS-encoded record per entry. Every
// record is validated before anything is written.
func WriteSnapshot(path string, records []core.KnowledgeRecord) error {
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
	if _, err := w.WriteString(snapshotMagic); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteByte(snapshotVersion); err != nil {
		f.Close()
		return err
	}

	for i := range records {
		data := MarshalKnowledgeRecord(&records[i])

		prefix := make([]byte, varint.Uint64.Size(uint64(len(data))))
		varint.Uint64.Marshal(uint64(len(data)), prefix)

		if _, err := w.Write(prefix); err != nil {
			f.Close()
			return err
		}
		if _, err := w.Write(data); err != nil {
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

// ReadSnapshot loads records from the snapshot at path. Unlike JSONL
// reading, a missing snapshot is an error: snapshot paths are always given
// explicitly, never probed.
func ReadSnapshot(path string) ([]core.KnowledgeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	header := len(snapshotMagic) + 1
	if len(data) < header || string(data[:len(snapshotMagic)]) != snapshotMagic {
		return nil, ErrUnknownSnapshot
	}
	if data[len(snapshotMagic)] != snapshotVersion {
		return nil, ErrUnsupportedVersion
	}

	records := make([]core.KnowledgeRecord, 0)
	for off := header; off < len(data); {
		size, n, err := varint.Uint64.Unmarshal(data[off:])
		if err != nil {
			return nil, err
		}
		off += n

		if size > uint64(len(data)-off) {
			return nil, ErrTruncatedData
		}
		end := off + int(size)

		record, _, err := core.KnowledgeRecordMUS.Unmarshal(data[off:end])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
		off = end
	}

	return records, nil
}
