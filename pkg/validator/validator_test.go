package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Count int    `validate:"min=1,max=3"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      any
		wantErr string
	}{
		{name: "valid", in: sample{Name: "a", Count: 2}},
		{name: "missing name", in: sample{Count: 2}, wantErr: "Field: sample.Name, Tag: required"},
		{name: "count too big", in: sample{Name: "a", Count: 9}, wantErr: "Tag: max, Param: 3"},
		{name: "not a struct", in: 5, wantErr: "validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
