package helpers_test

import (
	"testing"
	"time"

	"github.com/isometry/predict-app/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	assert.Nil(t, helpers.Ptr[any](nil))

	s := helpers.Ptr("8080")
	if assert.NotNil(t, s) {
		assert.Equal(t, "8080", *s)
	}

	d := helpers.Ptr(5 * time.Second)
	if assert.NotNil(t, d) {
		assert.Equal(t, 5*time.Second, *d)
	}

	i := helpers.Ptr(int64(1 << 20))
	if assert.NotNil(t, i) {
		assert.Equal(t, int64(1<<20), *i)
	}
}
