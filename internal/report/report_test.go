package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/katalvlaran/ivivc/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	R2    float64  `json:"r2"`
	Names []string `json:"names"`
}

func TestEncodeDecode(t *testing.T) {
	in := payload{R2: 0.97, Names: []string{"F1", "F2"}}
	rep, err := report.New("level-a", 42, in, "B: only 2 formulations")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rep.RunID)

	for _, compress := range []bool{false, true} {
		var buf bytes.Buffer
		require.NoError(t, report.Encode(&buf, rep, compress))
		if !compress {
			assert.Contains(t, buf.String(), `"kind": "level-a"`)
		}

		got, err := report.Decode(&buf, compress)
		require.NoError(t, err)
		assert.Equal(t, rep.RunID, got.RunID)
		assert.Equal(t, rep.Warnings, got.Warnings)

		var out payload
		require.NoError(t, got.Unmarshal(&out))
		assert.Equal(t, in, out)
	}
}

func TestNew_DistinctRunIDs(t *testing.T) {
	a, err := report.New("x", 1, nil)
	require.NoError(t, err)
	b, err := report.New("x", 1, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestDecode_Errors(t *testing.T) {
	_, err := report.Decode(strings.NewReader(`{"version": 9, "payload": {}}`), false)
	assert.ErrorIs(t, err, report.ErrVersion)

	_, err = report.Decode(strings.NewReader("not snappy"), true)
	assert.Error(t, err)
}
