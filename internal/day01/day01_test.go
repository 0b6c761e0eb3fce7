package day01

import (
	_ "embed"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/example.txt
var example string

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestParseRotation(t *testing.T) {
	r, err := ParseRotation("L50")
	require.NoError(t, err)
	assert.Equal(t, Rotation{Left, 50}, r)

	r, err = ParseRotation("r7")
	require.NoError(t, err)
	assert.Equal(t, Rotation{Right, 7}, r)
	assert.Equal(t, "R7", r.String())

	_, err = ParseRotation("X5")
	assert.ErrorIs(t, err, ErrDirection)
	_, err = ParseRotation("")
	assert.ErrorIs(t, err, ErrDirection)
	_, err = ParseRotation("L")
	assert.ErrorIs(t, err, ErrDistance)
	_, err = ParseRotation("R-4")
	assert.ErrorIs(t, err, ErrDistance)
}

func TestParseRotations(t *testing.T) {
	rotations, err := ParseRotations("L50\nR50\nL10\nL5\nR55\nR5\nL15\nL4\n\n")
	require.NoError(t, err)
	assert.Equal(t, []Rotation{
		{Left, 50}, {Right, 50}, {Left, 10}, {Left, 5},
		{Right, 55}, {Right, 5}, {Left, 15}, {Left, 4},
	}, rotations)

	_, err = ParseRotations("L5\nQ3")
	assert.ErrorIs(t, err, ErrDirection)
	assert.ErrorContains(t, err, "line 2")
}

func TestZeroes(t *testing.T) {
	tests := []struct {
		from, to int
		want     int
	}{
		{50, 150, 1},
		{50, -18, 1},
		{0, -5, 0},
		{-5, 0, 1},
		{0, 100, 1},
		{50, 1050, 10},
		{100, 0, 1},
		{-150, -250, 1},
		{-100, -300, 2},
		{10, 20, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, zeroes(test.from, test.to), "%d -> %d", test.from, test.to)
	}
}

func TestTurnLargeRotation(t *testing.T) {
	d := NewDial()
	d.Turn(Rotation{Right, 1000})
	assert.Equal(t, 10, d.Passes)
	assert.Equal(t, 0, d.Stops)
}

func TestPartOne(t *testing.T) {
	result, err := PartOne(example)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), result)
}

func TestPartTwo(t *testing.T) {
	result, err := PartTwo(example)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), result)
}
