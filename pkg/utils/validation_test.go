package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type genomeRequest struct {
	OwnerID string   `validate:"required"`
	Name    string   `validate:"max=120"`
	Bias    *float64 `validate:"omitempty,gte=-1,lte=1"`
	Gender  string   `validate:"omitempty,oneof=masculine feminine neutral"`
	Tags    []string `validate:"max=20,dive,min=1,max=40"`
}

func TestValidateStructPasses(t *testing.T) {
	bias := 0.5
	req := genomeRequest{OwnerID: "alice", Name: "Ada", Bias: &bias, Gender: "neutral", Tags: []string{"pilot"}}
	assert.NoError(t, ValidateStruct(req))
}

func TestValidateStructMessages(t *testing.T) {
	hot := 2.0
	cold := -2.0

	tests := []struct {
		name string
		req  genomeRequest
		want string
	}{
		{"missing owner", genomeRequest{}, "ownerid is required"},
		{"bias above range", genomeRequest{OwnerID: "alice", Bias: &hot}, "bias must be at most 1"},
		{"bias below range", genomeRequest{OwnerID: "alice", Bias: &cold}, "bias must be at least -1"},
		{"unknown gender", genomeRequest{OwnerID: "alice", Gender: "plural"}, "gender must be one of: masculine feminine neutral"},
		{"empty tag", genomeRequest{OwnerID: "alice", Tags: []string{""}}, "must have length at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateStructJoinsMultipleFailures(t *testing.T) {
	bias := 2.0
	err := ValidateStruct(genomeRequest{Bias: &bias})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ownerid is required")
	assert.Contains(t, err.Error(), "bias must be at most 1")
}
