package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     OffsetRequest
		wantErr bool
	}{
		{"defaults", OffsetRequest{Offset: 0, Size: 10}, false},
		{"empty page", OffsetRequest{Offset: 30, Size: 0}, false},
		{"last window", OffsetRequest{Offset: 9_990, Size: 10}, false},
		{"past window", OffsetRequest{Offset: 9_995, Size: 10}, true},
		{"size past window", OffsetRequest{Offset: 0, Size: 10_001}, true},
		{"offset overflows sum", OffsetRequest{Offset: math.MaxInt, Size: 1}, true},
		{"size overflows sum", OffsetRequest{Offset: 1, Size: math.MaxInt}, true},
		{"negative size", OffsetRequest{Size: -1}, true},
		{"negative offset", OffsetRequest{Offset: -5, Size: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
