package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, 2, GCD(4, 6))
	assert.Equal(t, 6, GCD(12, 18))
	assert.Equal(t, 5, GCD(5, 0))
	assert.Equal(t, 7, GCD(0, 7))
	assert.Equal(t, 1, GCD(9, 28))
}

func TestLCM(t *testing.T) {
	assert.Equal(t, 12, LCM(4, 6))
	assert.Equal(t, 60, LCM(4, 6, 10))
	assert.Equal(t, 5, LCM(5))
	assert.Equal(t, 0, LCM())
}

func TestCeilDiv(t *testing.T) {
	assert.Equal(t, 2, CeilDiv(6, 4))
	assert.Equal(t, 1, CeilDiv(4, 4))
	assert.Equal(t, 0, CeilDiv(0, 4))
	assert.Equal(t, 3, CeilDiv(7, 3))
}
