package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailValue(t *testing.T) {
	v, err := Detail{"count": 3}.Value()
	assert.Nil(t, err)
	assert.Equal(t, `{"count":3}`, v)

	v, err = Detail(nil).Value()
	assert.Nil(t, err)
	assert.Equal(t, "{}", v)
}

func TestDetailScan(t *testing.T) {
	d := Detail{}
	assert.Nil(t, d.Scan(`{"filename":"a.pdf"}`))
	assert.Equal(t, Detail{"filename": "a.pdf"}, d)

	d = Detail{}
	assert.Nil(t, d.Scan([]byte(`{"version":1}`)))
	assert.Equal(t, Detail{"version": float64(1)}, d)

	assert.NotNil(t, d.Scan(12345))
}
