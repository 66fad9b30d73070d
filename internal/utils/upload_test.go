package utils

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataURL(t *testing.T) {
	payload := []byte{0x89, 0x50, 0x4e, 0x47}
	encoded := base64.StdEncoding.EncodeToString(payload)

	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{
			name:  "data URL with header",
			input: "data:image/png;base64," + encoded,
			want:  payload,
		},
		{
			name:  "bare base64",
			input: encoded,
			want:  payload,
		},
		{
			name:    "data URL without comma",
			input:   "data:image/png;base64" + encoded,
			wantErr: true,
		},
		{
			name:    "invalid base64",
			input:   "data:image/png;base64,!!not-base64!!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDataURL(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
