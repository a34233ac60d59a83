package api

import "github.com/jimmyyyly/CPU-Scheduler-Simulation/internal"

type Config struct {
	IP              string `json:"ip"`
	Port            int    `json:"port"`
	LogLevel        string `json:"log_level"`
	DefaultStrategy string `json:"default_strategy"`
	DefaultQuantum  int    `json:"default_quantum"`
	CollectorURL    string `json:"collector_url"`
}

type SimulationRequest struct {
	Processes [][]int `json:"processes"`
	Strategy  string  `json:"strategy,omitempty"`
	Quantum   int     `json:"quantum,omitempty"`
}

type SimulationResponse struct {
	Strategy   string                    `json:"strategy"`
	Quantum    int                       `json:"quantum"`
	TotalTime  int                       `json:"total_time"`
	Executions []internal.BurstExecution `json:"executions"`
	Stats      []internal.ProcessStats   `json:"stats"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
