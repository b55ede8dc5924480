package util_test

import (
	"testing"

	"lintang/bearmaps/pkg/util"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 1.23, util.RoundFloat(1.2345, 2))
	assert.Equal(t, 2.0, util.RoundFloat(1.5, 0))
	assert.Equal(t, -0.667, util.RoundFloat(-2.0/3.0, 3))
}

func TestReverseG(t *testing.T) {
	arr := []int64{1, 2, 3, 4}
	util.ReverseG(arr)
	assert.Equal(t, []int64{4, 3, 2, 1}, arr)

	odd := []string{"a", "b", "c"}
	util.ReverseG(odd)
	assert.Equal(t, []string{"c", "b", "a"}, odd)

	var empty []int
	util.ReverseG(empty)
	assert.Empty(t, empty)
}

func TestNewProgressBar(t *testing.T) {
	bar := util.NewProgressBar(10, "[cyan][1/1][reset] test")
	assert.NoError(t, bar.Add(10))
	assert.True(t, bar.IsFinished())
}
