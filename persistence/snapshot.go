package persistence

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"time"

	"github.com/hupe1980/clustergo/blobstore"
	"github.com/hupe1980/clustergo/cluster"
	"github.com/hupe1980/clustergo/codec"
	"github.com/hupe1980/clustergo/resource"
)

const (
	// snapshotMagic identifies snapshot files (ASCII: "CGSS").
	snapshotMagic = 0x43475353
	// snapshotVersion is the current snapshot format version.
	snapshotVersion = 1
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported snapshot version")
	ErrUnknownCodec   = errors.New("unknown snapshot codec")
)

// ChecksumMismatchError is returned when snapshot integrity
// verification fails.
type ChecksumMismatchError struct {
	Expected uint32
	Actual   uint32
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch: expected 0x%08x, got 0x%08x", e.Expected, e.Actual)
}

// Snapshot is a persisted clustering outcome together with the
// parameters that produced it.
type Snapshot struct {
	Algorithm string          `json:"algorithm"`
	Metric    string          `json:"metric"`
	Tolerance float64         `json:"tolerance"`
	Size      int             `json:"size"` // number of clustered data points
	CreatedAt time.Time       `json:"createdAt"`
	Result    *cluster.Result `json:"result"`
}

// Options configures snapshot persistence.
type Options struct {
	// Codec encodes the snapshot payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the payload compression algorithm.
	Compression Compression

	// Controller, if set, throttles snapshot IO.
	Controller *resource.Controller
}

// Save encodes, compresses, and writes a snapshot to the store.
// The header records the codec name and compression algorithm, so a
// snapshot can always be loaded regardless of the current defaults.
func Save(ctx context.Context, store blobstore.Store, name string, snap *Snapshot, optFns ...func(o *Options)) error {
	opts := Options{
		Codec: codec.Default,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Codec == nil {
		opts.Codec = codec.Default
	}

	payload, err := opts.Codec.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	block, err := compress(payload, opts.Compression)
	if err != nil {
		return fmt.Errorf("compress snapshot: %w", err)
	}

	codecName := opts.Codec.Name()
	if len(codecName) > 255 {
		return errors.New("codec name too long")
	}

	var buf bytes.Buffer
	writeUint32 := func(v uint32) {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		buf.Write(b[:])
	}

	writeUint32(snapshotMagic)
	writeUint32(snapshotVersion)
	buf.WriteByte(byte(opts.Compression))
	buf.WriteByte(byte(len(codecName)))
	buf.WriteString(codecName)
	writeUint32(crc32.ChecksumIEEE(block))
	writeUint32(uint32(len(block)))
	buf.Write(block)

	if err := opts.Controller.WaitIO(ctx, buf.Len()); err != nil {
		return err
	}

	return store.Put(ctx, name, buf.Bytes())
}

// Load reads and decodes a snapshot from the store, verifying its
// checksum.
func Load(ctx context.Context, store blobstore.Store, name string, optFns ...func(o *Options)) (*Snapshot, error) {
	opts := Options{}

	for _, fn := range optFns {
		fn(&opts)
	}

	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	if err := opts.Controller.WaitIO(ctx, int(blob.Size())); err != nil {
		return nil, err
	}

	data := make([]byte, blob.Size())
	if _, err := io.ReadFull(io.NewSectionReader(blob, 0, blob.Size()), data); err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	return decode(data)
}

func decode(data []byte) (*Snapshot, error) {
	r := bytes.NewReader(data)
	readUint32 := func() (uint32, error) {
		var b [4]byte
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint32(b[:]), nil
	}

	magic, err := readUint32()
	if err != nil {
		return nil, err
	}
	if magic != snapshotMagic {
		return nil, ErrInvalidMagic
	}

	version, err := readUint32()
	if err != nil {
		return nil, err
	}
	if version != snapshotVersion {
		return nil, ErrInvalidVersion
	}

	compByte, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	nameLen, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	nameBytes := make([]byte, nameLen)
	if _, err := io.ReadFull(r, nameBytes); err != nil {
		return nil, err
	}

	checksum, err := readUint32()
	if err != nil {
		return nil, err
	}

	blockLen, err := readUint32()
	if err != nil {
		return nil, err
	}

	block := make([]byte, blockLen)
	if _, err := io.ReadFull(r, block); err != nil {
		return nil, err
	}

	if actual := crc32.ChecksumIEEE(block); actual != checksum {
		return nil, &ChecksumMismatchError{Expected: checksum, Actual: actual}
	}

	payload, err := decompress(block, Compression(compByte))
	if err != nil {
		return nil, fmt.Errorf("decompress snapshot: %w", err)
	}

	c, ok := codec.ByName(string(nameBytes))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, nameBytes)
	}

	var snap Snapshot
	if err := c.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &snap, nil
}
