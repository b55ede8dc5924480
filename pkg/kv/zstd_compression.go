package kv

import (
	"fmt"

	"lintang/bearmaps/pkg/datastructure"

	"github.com/DataDog/zstd"
	"github.com/kelindar/binary"
)

// graphChunk value satu key snapshot. chunk node cuma isi Nodes, chunk edge cuma isi Edges.
type graphChunk struct {
	Nodes []datastructure.StreetNode
	Edges []datastructure.StreetEdge
}

// snapshotMeta jumlah chunk yang disimpan, ditulis paling terakhir.
type snapshotMeta struct {
	NodeChunks int
	EdgeChunks int
}

func Encode(v interface{}) ([]byte, error) {
	return binary.Marshal(v)
}

func Decode(bb []byte, v interface{}) error {
	return binary.Unmarshal(bb, v)
}

func Compress(bb []byte) ([]byte, error) {
	var bbCompressed []byte
	bbCompressed, err := zstd.Compress(bbCompressed, bb)
	if err != nil {
		return []byte{}, err
	}
	return bbCompressed, nil
}

func Decompress(bbCompressed []byte) ([]byte, error) {
	var bb []byte
	bb, err := zstd.Decompress(bb, bbCompressed)
	if err != nil {
		return []byte{}, err
	}

	return bb, nil
}

func compressChunk(c graphChunk) ([]byte, error) {
	bb, err := Encode(c)
	if err != nil {
		return nil, fmt.Errorf("encode chunk: %w", err)
	}
	return Compress(bb)
}

func decompressChunk(bbCompressed []byte) (graphChunk, error) {
	var c graphChunk
	bb, err := Decompress(bbCompressed)
	if err != nil {
		return c, fmt.Errorf("decompress chunk: %w", err)
	}
	if err := Decode(bb, &c); err != nil {
		return c, fmt.Errorf("decode chunk: %w", err)
	}
	return c, nil
}
