package collector

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/jimmyyyly/CPU-Scheduler-Simulation/internal"
)

func TestCollector_Publish(t *testing.T) {
	ass := assert.New(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewCollector("http://localhost:9200/reports", logger)

	httpmock.Activate(t)
	defer httpmock.DeactivateAndReset()

	report := Report{
		Strategy:  "rr",
		Quantum:   2,
		TotalTime: 8,
		Stats: []internal.ProcessStats{
			{PID: 0, Turnaround: 6, Wait: 2},
			{PID: 1, Turnaround: 8, Wait: 4},
		},
	}

	tests := []struct {
		name    string
		expects func()
		wantErr bool
	}{
		{
			name: "report accepted",
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					c.URL,
					httpmock.NewStringResponder(201, `{"message":"report stored"}`),
				)
			},
			wantErr: false,
		},
		{
			name: "collector rejects report",
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					c.URL,
					httpmock.NewStringResponder(500, `{"message":"storage unavailable"}`),
				)
			},
			wantErr: true,
		},
		{
			name: "collector unreachable",
			expects: func() {
				httpmock.RegisterResponder(
					"POST",
					c.URL,
					httpmock.NewErrorResponder(fmt.Errorf("connection refused")),
				)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpmock.Reset()
			tt.expects()

			err := c.Publish(report)
			if tt.wantErr {
				ass.Error(err)
			} else {
				ass.NoError(err)
			}
		})
	}
}
