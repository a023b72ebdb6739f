package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	m, err := FromString("150.00")
	require.NoError(t, err)
	assert.Equal(t, "150.00", m.String())

	m, err = FromString("150")
	require.NoError(t, err)
	assert.Equal(t, "150.00", m.String())

	_, err = FromString("abc")
	assert.Error(t, err)
}

func TestEquals(t *testing.T) {
	a, _ := FromString("150")
	b, _ := FromString("150.00")
	c, _ := FromString("150.004")
	d, _ := FromString("150.01")

	assert.True(t, a.Equals(b))
	// Comparison happens at two decimal places.
	assert.True(t, a.Equals(c))
	assert.False(t, a.Equals(d))
}

func TestIsPositive(t *testing.T) {
	assert.False(t, Zero.IsPositive())
	assert.False(t, FromFloat(-1).IsPositive())
	assert.True(t, FromFloat(0.01).IsPositive())
}

func TestJSON(t *testing.T) {
	m, _ := FromString("150.5")
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `"150.50"`, string(data))

	var fromNumber Money
	require.NoError(t, json.Unmarshal([]byte(`150.5`), &fromNumber))
	assert.True(t, m.Equals(fromNumber))

	var fromString Money
	require.NoError(t, json.Unmarshal([]byte(`"150.50"`), &fromString))
	assert.True(t, m.Equals(fromString))

	var invalid Money
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &invalid))
}

func TestSQLRoundTrip(t *testing.T) {
	m, _ := FromString("150.5")

	value, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "150.50", value)

	var scanned Money
	require.NoError(t, scanned.Scan("150.50"))
	assert.True(t, m.Equals(scanned))

	require.NoError(t, scanned.Scan(150.5))
	assert.True(t, m.Equals(scanned))
}
