package storage

import (
	"strings"

	"github.com/ENKI-420/dnalang-training-data/core"
)

// SnapshotExt is the file extension that selects the binary snapshot codec.
const SnapshotExt = ".snap"

// ReadKnowledgeBase loads records from path, using the snapshot reader for
// SnapshotExt files and the JSONL reader otherwise.
func ReadKnowledgeBase(path string) ([]core.KnowledgeRecord, error) {
	if strings.HasSuffix(path, SnapshotExt) {
		return ReadSnapshot(path)
	}
	return ReadRecords(path)
}
