package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		correct  int
		attempts int
		want     float64
	}{
		{name: "no attempts", correct: 0, attempts: 0, want: 0},
		{name: "all correct", correct: 4, attempts: 4, want: 100},
		{name: "none correct", correct: 0, attempts: 7, want: 0},
		{name: "one third", correct: 1, attempts: 3, want: 33.3},
		{name: "two thirds", correct: 2, attempts: 3, want: 66.7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Accuracy(tt.correct, tt.attempts)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}
