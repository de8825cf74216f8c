package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKgFixedPointNoDrift(t *testing.T) {
	// 0.1 kg dijumlah 1000x harus tepat 100.00 — integer, bukan float
	var total Kg
	step := KgFromFloat(0.1)
	for i := 0; i < 1000; i++ {
		total += step
	}
	assert.Equal(t, Kg(10000), total)
	assert.Equal(t, "100.00", total.String())
}

func TestKgString(t *testing.T) {
	assert.Equal(t, "0.00", Kg(0).String())
	assert.Equal(t, "2.50", Kg(250).String())
	assert.Equal(t, "12.05", Kg(1205).String())
}

func TestKgJSON(t *testing.T) {
	b, err := json.Marshal(Kg(350))
	require.NoError(t, err)
	assert.Equal(t, "3.50", string(b))

	cases := map[string]Kg{
		`2.5`:   250,
		`"2.5"`: 250,
		`0`:     0,
		`""`:    0,
		`null`:  0,
		`"abc"`: 0, // input lunak: tak valid ⇒ 0
		`-3`:    0, // minus diperlakukan seperti kosong
	}
	for raw, want := range cases {
		var k Kg
		require.NoError(t, json.Unmarshal([]byte(raw), &k), "input %s", raw)
		assert.Equal(t, want, k, "input %s", raw)
	}
}

func TestKgScanValue(t *testing.T) {
	var k Kg
	require.NoError(t, k.Scan([]byte("12.34")))
	assert.Equal(t, Kg(1234), k)

	require.NoError(t, k.Scan("5.00"))
	assert.Equal(t, Kg(500), k)

	require.NoError(t, k.Scan(int64(7)))
	assert.Equal(t, Kg(700), k)

	require.NoError(t, k.Scan(nil))
	assert.Equal(t, Kg(0), k)

	v, err := Kg(1234).Value()
	require.NoError(t, err)
	assert.Equal(t, "12.34", v)
}
