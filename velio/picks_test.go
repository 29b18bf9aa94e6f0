package velio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seisgo/velfield/vel/pick"
)

func TestReadPicksWhitespace(t *testing.T) {
	in := "trace twt velocity\n0 100 1500\n0 1000 1800\n5 100 1600\n"

	picks, err := ReadPicks(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, picks, 3)

	assert.Equal(t, 0, picks[0].Trace)
	assert.Equal(t, 100.0, picks[0].Time)
	assert.Equal(t, 1500.0, picks[0].Velocity)
	assert.Equal(t, 5, picks[2].Trace)
}

func TestReadPicksTabDelimited(t *testing.T) {
	in := "CDP\tTWT\tVEL\n12\t250.5\t1725.0\n13\t400\t1800\n"

	picks, err := ReadPicks(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, 12, picks[0].Trace)
	assert.Equal(t, 250.5, picks[0].Time)
}

func TestReadPicksWithoutHeader(t *testing.T) {
	in := "0 100 1500\n1 200 1550\n"

	picks, err := ReadPicks(strings.NewReader(in))
	require.NoError(t, err)
	assert.Len(t, picks, 2)
}

func TestReadPicksFloatTraceColumn(t *testing.T) {
	in := "10.0 100 1500\n11.0 200 1550\n"

	picks, err := ReadPicks(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 10, picks[0].Trace)
	assert.Equal(t, 11, picks[1].Trace)
}

func TestReadPicksRejectsLaterGarbage(t *testing.T) {
	// Only one header line is tolerated; a bad row mid-file fails.
	in := "trace twt vel\n0 100 1500\nnot a row at all\n"

	_, err := ReadPicks(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadPicksRejectsWrongColumnCount(t *testing.T) {
	in := "0 100\n"
	_, err := ReadPicks(strings.NewReader(in))
	require.Error(t, err)
}

func TestReadPicksEmpty(t *testing.T) {
	_, err := ReadPicks(strings.NewReader(""))
	require.Error(t, err)

	_, err = ReadPicks(strings.NewReader("just a header line\n"))
	require.Error(t, err)
}

func TestWriteReadPicksRoundTrip(t *testing.T) {
	picks := []pick.Pick{
		{Trace: 0, Time: 100.5, Velocity: 1500},
		{Trace: 7, Time: 980, Velocity: 1912.25},
	}

	var buf bytes.Buffer
	require.NoError(t, WritePicks(&buf, picks, ""))

	back, err := ReadPicks(&buf)
	require.NoError(t, err)
	require.Len(t, back, len(picks))
	for i := range picks {
		assert.Equal(t, picks[i].Trace, back[i].Trace)
		assert.Equal(t, picks[i].Time, back[i].Time)
		assert.Equal(t, picks[i].Velocity, back[i].Velocity)
	}
}

func TestReadGeometry(t *testing.T) {
	in := "trace x y\n0 1000.0 2000.0\n1 1025.0 2000.0\n3 1075.0 2000.0\n"

	gm, err := ReadGeometry(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 0, gm.TraceStart)
	assert.Equal(t, 4, gm.NumTraces())
	assert.Equal(t, 1025.0, gm.Coord(1).X)
	// Unlisted trace 2 keeps the zero coordinate.
	assert.Equal(t, 0.0, gm.Coord(2).X)
	assert.Equal(t, 1075.0, gm.Coord(3).X)
}

func TestReadGeometryErrors(t *testing.T) {
	_, err := ReadGeometry(strings.NewReader(""))
	require.Error(t, err)

	_, err = ReadGeometry(strings.NewReader("header\n0 bad 2000\n"))
	require.Error(t, err)
}
