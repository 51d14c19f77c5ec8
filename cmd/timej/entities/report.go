package entities

type ExecutionReport struct {
	Id              string   `json:"id"`
	Command         []string `json:"command"`
	Status          string   `json:"status"`
	ExitCode        int      `json:"exit_code"`
	Signal          string   `json:"signal,omitempty"`
	WallTimeUs      uint64   `json:"wall_time_us"`
	CpuUserTimeUs   uint64   `json:"cpu_user_time_us"`
	CpuKernelTimeUs uint64   `json:"cpu_kernel_time_us"`
	MaxRssBytes     uint64   `json:"max_rss_bytes"`
}
