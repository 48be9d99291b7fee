package codec

import (
	"math/rand"
	"testing"
)

type benchSnapshot struct {
	Algorithm string  `json:"algorithm"`
	Metric    string  `json:"metric"`
	Tolerance float64 `json:"tolerance"`
	Medoids   []int   `json:"medoids"`
	Labels    []int   `json:"labels"`
	Clusters  [][]int `json:"clusters"`
}

func benchSnapshotPayload(n, k int) benchSnapshot {
	rng := rand.New(rand.NewSource(42))

	labels := make([]int, n)
	clusters := make([][]int, k)
	for i := range labels {
		c := rng.Intn(k)
		labels[i] = c
		clusters[c] = append(clusters[c], i)
	}

	medoids := make([]int, k)
	for c := range medoids {
		medoids[c] = clusters[c][0]
	}

	return benchSnapshot{
		Algorithm: "kmedoids",
		Metric:    "squared-euclidean",
		Tolerance: 0.01,
		Medoids:   medoids,
		Labels:    labels,
		Clusters:  clusters,
	}
}

func benchmarkCodecMarshal(b *testing.B, c Codec, v any) {
	b.Helper()
	b.ReportAllocs()

	warm, err := c.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(warm)))

	var sink []byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := c.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		sink = out
	}
	_ = sink
}

func benchmarkCodecUnmarshal[T any](b *testing.B, c Codec, data []byte, dst *T) {
	b.Helper()
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))

	var v T
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := c.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
	if dst != nil {
		*dst = v
	}
}

func BenchmarkCodec_Marshal_Snapshot(b *testing.B) {
	snap := benchSnapshotPayload(10000, 16)

	b.Run("stdlib", func(b *testing.B) { benchmarkCodecMarshal(b, JSON{}, snap) })
	b.Run("go-json", func(b *testing.B) { benchmarkCodecMarshal(b, GoJSON{}, snap) })
}

func BenchmarkCodec_Unmarshal_Snapshot(b *testing.B) {
	jsonData := MustMarshal(JSON{}, benchSnapshotPayload(10000, 16))

	b.Run("stdlib", func(b *testing.B) {
		var sink benchSnapshot
		benchmarkCodecUnmarshal(b, JSON{}, jsonData, &sink)
		_ = sink
	})
	b.Run("go-json", func(b *testing.B) {
		var sink benchSnapshot
		benchmarkCodecUnmarshal(b, GoJSON{}, jsonData, &sink)
		_ = sink
	})
}
