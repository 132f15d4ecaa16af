package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueOr(t *testing.T) {
	h := 2.5
	assert.Equal(t, 2.5, ValueOr(3.0, nil, &h))
	assert.Equal(t, 3.0, ValueOr[float64](3.0))
}

func TestFirstNonNil(t *testing.T) {
	subject := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	plan := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, &subject, FirstNonNil(&subject, &plan))
	assert.Equal(t, &plan, FirstNonNil(nil, &plan))
	assert.Nil(t, FirstNonNil[time.Time](nil, nil))
}
