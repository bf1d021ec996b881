package variant_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tableauio/variant"
	"github.com/tableauio/variant/options"
	"github.com/tableauio/variant/value"
)

func TestParseSerializeRoundTrip(t *testing.T) {
	const text = `{"name":"melon","count":3,"ratio":0.5,"tags":["a","b"],"extra":{"ok":true}}`
	v, ok := variant.Parse([]byte(text))
	require.True(t, ok)
	out, err := variant.Serialize(&v, false)
	require.NoError(t, err)
	assert.Equal(t, text, out)

	back, ok := variant.Parse([]byte(out))
	require.True(t, ok)
	assert.True(t, value.Equal(&v, &back))
}

func TestParseFailure(t *testing.T) {
	v, ok := variant.Parse([]byte(`{"broken":`))
	assert.False(t, ok)
	assert.False(t, v.IsValid())
}

func TestFormatJSONDiffersFromSerializeOnDates(t *testing.T) {
	d := value.NewDate(time.Unix(0, 0))
	serialized, err := variant.Serialize(&d, false)
	require.NoError(t, err)
	assert.Equal(t, "0", serialized)

	formatted, err := variant.FormatJSON(&d, options.LocationName("UTC"))
	require.NoError(t, err)
	assert.Equal(t, `"1970-01-01 00:00:00"`, formatted)
}

func TestFormatText(t *testing.T) {
	v, ok := variant.Parse([]byte(`{"list":[1,"x"],"flag":true}`))
	require.True(t, ok)
	out, err := variant.FormatText(&v)
	require.NoError(t, err)
	assert.Equal(t, "list: [ 1, x ]\nflag: true\n", out)
}

func TestMaxDepthOption(t *testing.T) {
	_, ok := variant.Parse([]byte(`[[[[[1]]]]]`), options.MaxDepth(3))
	assert.False(t, ok)
	_, ok = variant.Parse([]byte(`[[1]]`), options.MaxDepth(3))
	assert.True(t, ok)
}
