package collector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jimmyyyly/CPU-Scheduler-Simulation/internal"
	"github.com/jimmyyyly/CPU-Scheduler-Simulation/utils/log"
)

// Report is the payload published to an external results collector once a
// simulation run finishes.
type Report struct {
	Strategy  string                  `json:"strategy"`
	Quantum   int                     `json:"quantum"`
	TotalTime int                     `json:"total_time"`
	Stats     []internal.ProcessStats `json:"stats"`
}

type Collector struct {
	URL string
	Log *slog.Logger
}

func NewCollector(url string, logger *slog.Logger) *Collector {
	return &Collector{
		URL: url,
		Log: logger,
	}
}

// Publish POSTs the report as JSON. Any non-2xx status is an error.
func (c *Collector) Publish(report Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("error serializing report: %w", err)
	}

	resp, err := http.Post(c.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		c.Log.Error("failed to publish report",
			log.ErrAttr(err),
			log.StringAttr("url", c.URL),
		)
		return fmt.Errorf("error publishing report: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.Log.Error("collector rejected report",
			log.StringAttr("url", c.URL),
			log.IntAttr("status_code", resp.StatusCode),
		)
		return fmt.Errorf("collector responded with status %d", resp.StatusCode)
	}

	c.Log.Debug("report published",
		log.StringAttr("url", c.URL),
		log.IntAttr("status_code", resp.StatusCode),
	)
	return nil
}
