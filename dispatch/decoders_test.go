package dispatch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecoders(t *testing.T) {
	tests := []struct {
		name    string
		decode  Decoder
		in      any
		want    any
		wantErr bool
	}{
		{"int from int", Int64, 7, int64(7), false},
		{"int from uint8", Int64, uint8(7), int64(7), false},
		{"int from integral float", Int64, 2.0, int64(2), false},
		{"int from fraction", Int64, 2.5, nil, true},
		{"int from huge uint", Int64, uint64(math.MaxUint64), nil, true},
		{"int from string", Int64, "7", nil, true},
		{"int from positive infinity", Int64, math.Inf(1), nil, true},
		{"int from negative infinity", Int64, math.Inf(-1), nil, true},
		{"int from NaN", Int64, math.NaN(), nil, true},
		{"int from float above range", Int64, 1e19, nil, true},
		{"int from two to the 63", Int64, math.Exp2(63), nil, true},
		{"int from float at minimum", Int64, -math.Exp2(63), int64(math.MinInt64), false},
		{"int from float32", Int64, float32(3), int64(3), false},
		{"int from uint", Int64, uint(9), int64(9), false},
		{"int from uintptr", Int64, uintptr(9), int64(9), false},
		{"float from int", Float64, 3, float64(3), false},
		{"float from float32", Float64, float32(0.5), float64(0.5), false},
		{"float from bool", Float64, true, nil, true},
		{"bool", Bool, true, true, false},
		{"bool from int", Bool, 1, nil, true},
		{"string", String, "hi", "hi", false},
		{"string from nil", String, nil, nil, true},
		{"any", Any, struct{}{}, struct{}{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.decode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTypeMismatch)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
