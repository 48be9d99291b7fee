package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Medoids []int `json:"medoids"`
	Labels  []int `json:"labels"`
}

func TestRoundTrip(t *testing.T) {
	in := payload{Medoids: []int{0, 2}, Labels: []int{0, 0, 1, 1}}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		data, err := c.Marshal(in)
		require.NoError(t, err)

		var out payload
		require.NoError(t, c.Unmarshal(data, &out))
		assert.Equal(t, in, out, "codec %s", c.Name())
	}
}

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestMustMarshal_NilCodecUsesDefault(t *testing.T) {
	data := MustMarshal(nil, payload{Medoids: []int{1}})
	assert.NotEmpty(t, data)
}
