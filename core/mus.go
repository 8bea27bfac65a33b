package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the snapshot wire format. Fields are encoded in
// declaration order; changing KnowledgeRecord's layout is a wire change.
var (
	// IDMUS serializes an ID as a varint-encoded uint64.
	IDMUS = idMUS{}

	// KnowledgeRecordMUS serializes a KnowledgeRecord.
	KnowledgeRecordMUS = knowledgeRecordMUS{}

	metadataMUS = ord.NewMapSer[string, string](ord.String, ord.String)
)

type idMUS struct{}

func (s idMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s idMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	num, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(num)
	return
}

func (s idMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s idMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

type knowledgeRecordMUS struct{}

func (s knowledgeRecordMUS) Marshal(v KnowledgeRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Kind, bs[n:])
	n += ord.String.Marshal(v.System, bs[n:])
	n += ord.String.Marshal(v.Instruction, bs[n:])
	n += ord.String.Marshal(v.Response, bs[n:])
	n += metadataMUS.Marshal(v.Metadata, bs[n:])
	return
}

func (s knowledgeRecordMUS) Unmarshal(bs []byte) (v KnowledgeRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Kind, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.System, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Instruction, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Response, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Metadata, n1, err = metadataMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s knowledgeRecordMUS) Size(v KnowledgeRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Kind)
	size += ord.String.Size(v.System)
	size += ord.String.Size(v.Instruction)
	size += ord.String.Size(v.Response)
	size += metadataMUS.Size(v.Metadata)
	return
}

func (s knowledgeRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	for i := 0; i < 4; i++ {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	n1, err = metadataMUS.Skip(bs[n:])
	n += n1
	return
}
