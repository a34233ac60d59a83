package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadBurstLines(t *testing.T) {
	ass := assert.New(t)

	tests := []struct {
		name    string
		input   string
		want    [][]int
		wantErr error
	}{
		{
			name:  "one process per line",
			input: "3 2 4\n5\n",
			want:  [][]int{{3, 2, 4}, {5}},
		},
		{
			name:  "blank lines skipped",
			input: "\n3 2 4\n\n\n5\n",
			want:  [][]int{{3, 2, 4}, {5}},
		},
		{
			name:  "extra whitespace tolerated",
			input: "  3\t2  4 ",
			want:  [][]int{{3, 2, 4}},
		},
		{
			name:    "zero burst rejected",
			input:   "3 0 4\n",
			wantErr: ErrNonPositiveBurst,
		},
		{
			name:    "negative burst rejected",
			input:   "3 -2 4\n",
			wantErr: ErrNonPositiveBurst,
		},
		{
			name:    "even burst count rejected",
			input:   "3 2\n",
			wantErr: ErrEvenBurstCount,
		},
		{
			name:    "empty input rejected",
			input:   "\n\n",
			wantErr: ErrNoProcesses,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadBurstLines(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				ass.ErrorIs(err, tt.wantErr)
				return
			}
			ass.NoError(err)
			ass.Equal(tt.want, got)
		})
	}
}

func TestReadBurstLines_NonNumericToken(t *testing.T) {
	ass := assert.New(t)

	_, err := ReadBurstLines(strings.NewReader("3 two 4\n"))
	ass.ErrorContains(err, `"two" is not a number`)
}

func TestValidateBurstLine(t *testing.T) {
	ass := assert.New(t)

	ass.NoError(ValidateBurstLine([]int{5}))
	ass.NoError(ValidateBurstLine([]int{3, 2, 4}))
	ass.ErrorIs(ValidateBurstLine(nil), ErrEvenBurstCount)
	ass.ErrorIs(ValidateBurstLine([]int{3, 2}), ErrEvenBurstCount)
	ass.ErrorIs(ValidateBurstLine([]int{3, 0, 4}), ErrNonPositiveBurst)
}
