package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResult() *Result {
	return &Result{
		Medoids:  []int{0, 2},
		Clusters: []Cluster{{0, 1}, {2, 3}},
		Labels:   []int{0, 0, 1, 1},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validResult().Validate(4))
}

func TestValidate_Violations(t *testing.T) {
	t.Run("overlap", func(t *testing.T) {
		r := validResult()
		r.Clusters[1] = Cluster{1, 2, 3}
		assert.Error(t, r.Validate(4))
	})

	t.Run("omission", func(t *testing.T) {
		r := validResult()
		r.Clusters[1] = Cluster{2}
		r.Labels[3] = 1
		assert.Error(t, r.Validate(4))
	})

	t.Run("empty cluster", func(t *testing.T) {
		r := validResult()
		r.Clusters[0] = Cluster{}
		assert.Error(t, r.Validate(4))
	})

	t.Run("label disagreement", func(t *testing.T) {
		r := validResult()
		r.Labels[1] = 1
		assert.Error(t, r.Validate(4))
	})

	t.Run("medoid outside its cluster", func(t *testing.T) {
		r := validResult()
		r.Medoids[0] = 3
		assert.Error(t, r.Validate(4))
	})

	t.Run("out-of-range index", func(t *testing.T) {
		r := validResult()
		assert.Error(t, r.Validate(3))
	})

	t.Run("medoid count mismatch", func(t *testing.T) {
		r := validResult()
		r.Medoids = []int{0}
		assert.Error(t, r.Validate(4))
	})
}

func TestBitmap(t *testing.T) {
	r := validResult()

	b := r.Bitmap(1)
	assert.EqualValues(t, 2, b.GetCardinality())
	assert.True(t, b.Contains(2))
	assert.True(t, b.Contains(3))
	assert.False(t, b.Contains(0))

	// Disjoint partitions do not intersect
	assert.False(t, r.Bitmap(0).Intersects(r.Bitmap(1)))
}

func TestK(t *testing.T) {
	assert.Equal(t, 2, validResult().K())
}
