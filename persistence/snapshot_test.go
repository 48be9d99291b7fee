package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/clustergo/blobstore"
	"github.com/hupe1980/clustergo/cluster"
	"github.com/hupe1980/clustergo/codec"
	"github.com/hupe1980/clustergo/resource"
)

func testSnapshot() *Snapshot {
	return &Snapshot{
		Algorithm: "kmedoids",
		Metric:    "squared-euclidean",
		Tolerance: 0.01,
		Size:      4,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Result: &cluster.Result{
			Medoids:    []int{0, 2},
			Clusters:   []cluster.Cluster{{0, 1}, {2, 3}},
			Labels:     []int{0, 0, 1, 1},
			Iterations: 2,
		},
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	compressions := map[string]Compression{
		"None": CompressionNone,
		"LZ4":  CompressionLZ4,
		"ZSTD": CompressionZSTD,
	}

	for name, comp := range compressions {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := blobstore.NewMemoryStore()

			err := Save(ctx, store, "snapshots/run1", testSnapshot(), func(o *Options) {
				o.Compression = comp
			})
			require.NoError(t, err)

			got, err := Load(ctx, store, "snapshots/run1")
			require.NoError(t, err)

			assert.Equal(t, testSnapshot(), got)
		})
	}
}

func TestSnapshot_CodecRecordedInHeader(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	// Save with the stdlib JSON codec; load without specifying one.
	err := Save(ctx, store, "snap", testSnapshot(), func(o *Options) {
		o.Codec = codec.JSON{}
	})
	require.NoError(t, err)

	got, err := Load(ctx, store, "snap")
	require.NoError(t, err)
	assert.Equal(t, testSnapshot(), got)
}

func TestSnapshot_ChecksumMismatch(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, Save(ctx, store, "snap", testSnapshot()))

	blob, err := store.Open(ctx, "snap")
	require.NoError(t, err)
	data := make([]byte, blob.Size())
	_, err = blob.ReadAt(data, 0)
	require.NoError(t, err)
	require.NoError(t, blob.Close())

	// Flip a payload byte
	data[len(data)-1] ^= 0xFF
	require.NoError(t, store.Put(ctx, "snap", data))

	_, err = Load(ctx, store, "snap")
	var mismatch *ChecksumMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestSnapshot_InvalidMagic(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	require.NoError(t, store.Put(ctx, "snap", []byte("not a snapshot file")))

	_, err := Load(ctx, store, "snap")
	assert.ErrorIs(t, err, ErrInvalidMagic)
}

func TestSnapshot_MissingBlob(t *testing.T) {
	_, err := Load(context.Background(), blobstore.NewMemoryStore(), "nope")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestSnapshot_Throttled(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})

	err := Save(ctx, store, "snap", testSnapshot(), func(o *Options) {
		o.Controller = rc
		o.Compression = CompressionZSTD
	})
	require.NoError(t, err)

	got, err := Load(ctx, store, "snap", func(o *Options) {
		o.Controller = rc
	})
	require.NoError(t, err)
	assert.Equal(t, testSnapshot(), got)
}
