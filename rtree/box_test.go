package rtree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Box
		expected string
	}{
		{"Zero", Box{}, "[0,0,0,0]"},
		{"Integers", Box{-1, 2, -3, 4}, "[-1,2,-3,4]"},
		{"Exact", Box{-100.5, -200.25, 1234.125, 5678.0625}, "[-100.5,-200.25,1234.125,5678.0625]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.String())
		})
	}
}

func TestBox_Expand(t *testing.T) {
	testCases := []struct {
		name           string
		b, o, expected Box
	}{
		{"Zero", Box{}, Box{}, Box{}},
		{"EmptyByUnit", emptyBox, Box{-1, -1, 1, 1}, Box{-1, -1, 1, 1}},
		{"GrowMinX", Box{-1, -1, 1, 1}, Box{-2, -0.5, 0, 0.5}, Box{-2, -1, 1, 1}},
		{"GrowMinY", Box{-1, -1, 1, 1}, Box{-0.5, -2, 0, 0.5}, Box{-1, -2, 1, 1}},
		{"GrowMaxX", Box{-1, -1, 1, 1}, Box{-0.5, -0.5, 2, 0.5}, Box{-1, -1, 2, 1}},
		{"GrowMaxY", Box{-1, -1, 1, 1}, Box{-0.5, -0.5, 0.5, 2}, Box{-1, -1, 1, 2}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			b := testCase.b
			b.Expand(testCase.o)
			assert.Equal(t, testCase.expected, b)
		})
	}
}

func TestBox_intersects(t *testing.T) {
	testCases := []struct {
		name     string
		b, o     Box
		expected bool
	}{
		{"Zero", Box{}, Box{}, true},
		{"FullyContained", Box{-2, -2, 2, 2}, Box{-1, -1, 1, 1}, true},
		{"OverlapLeft", Box{-2, -2, 2, 2}, Box{-3, -1, -2, 1}, true},
		{"IsLeftOf", Box{-2, -2, 0, 0}, Box{-100, -2, -50, 0}, false},
		{"IsAbove", Box{-2, -2, 2, 2}, Box{1, 50, 2, 100}, false},
		{"Touching", Box{0, 0, 1, 1}, Box{1, 1, 2, 2}, true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.b.intersects(testCase.o))
		})
	}
}

func TestBox_distSquared(t *testing.T) {
	testCases := []struct {
		name     string
		b        Box
		x, y     float64
		expected float64
	}{
		{"Inside", Box{0, 0, 10, 10}, 5, 5, 0},
		{"OnEdge", Box{0, 0, 10, 10}, 0, 5, 0},
		{"Left", Box{0, 0, 10, 10}, -3, 5, 9},
		{"Corner", Box{0, 0, 10, 10}, -3, -4, 25},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.b.distSquared(testCase.x, testCase.y))
		})
	}
}

func TestBox_isFinite(t *testing.T) {
	assert.True(t, Box{0, 0, 1, 1}.isFinite())
	assert.False(t, Box{math.NaN(), 0, 1, 1}.isFinite())
}
