package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultFromCount(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		capacity     int
		wantCount    int
		insufficient bool
		wantErr      bool
	}{
		{"zero count", 0, 4096, 0, false, false},
		{"partial fill", 100, 4096, 100, false, false},
		{"full fill", 4096, 4096, 4096, false, false},
		{"sentinel", 4097, 4096, 0, true, false},
		{"beyond sentinel", 4098, 4096, 0, false, true},
		{"negative", -1, 4096, 0, false, true},
		{"zero capacity sentinel", 1, 0, 0, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := resultFromCount(tt.count, tt.capacity)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrPrimitiveContract)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.insufficient, res.insufficient)
			if !tt.insufficient {
				require.Equal(t, tt.wantCount, res.count)
			}
		})
	}
}
