package marketplace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_normalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
		err   bool
	}{
		{name: "canonical", phone: "+15551234567", want: "+15551234567"},
		{name: "no plus", phone: "15551234567", want: "+15551234567"},
		{name: "separators", phone: " +1 (555) 123-45-67 ", want: "+15551234567"},
		{name: "too short", phone: "+12345", err: true},
		{name: "letters", phone: "+1555abc4567", err: true},
		{name: "double plus", phone: "++15551234567", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizePhone(tt.phone)
			if tt.err {
				assert.ErrorIs(t, err, ErrPhoneNotValid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
