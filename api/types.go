package api

import "github.com/pramath6095/heuristic-ai-cfs/internal/sched"

type ProcessSpec struct {
	PID         int `json:"pid"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
	Niceness    int `json:"niceness"`
}

type ScheduleRequest struct {
	Processes []ProcessSpec `json:"processes"`
}

type GanttSlice struct {
	PID   int `json:"pid"`
	Start int `json:"start"`
	End   int `json:"end"`
}

type ProcessResponse struct {
	PID            int `json:"pid"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnaroundTime int `json:"turn_around_time"`
	ResponseTime   int `json:"response_time"`
	FinishTime     int `json:"finish_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	CPUUtilization        float64           `json:"cpu_utilization"`
	CPUThroughput         float64           `json:"cpu_throughput"`
	Gantt                 []GanttSlice      `json:"gantt"`
	Details               []ProcessResponse `json:"details"`
}

func toProcesses(req ScheduleRequest) []sched.Process {
	procs := make([]sched.Process, 0, len(req.Processes))
	for _, s := range req.Processes {
		procs = append(procs, sched.NewProcess(s.PID, s.ArrivalTime, s.BurstTime, s.Priority, s.Niceness))
	}
	return procs
}

func toResponse(result sched.SchedulerResult) ScheduleResponse {
	resp := ScheduleResponse{
		Algorithm:             result.Name,
		TotalTime:             result.TotalTime,
		AverageWaitingTime:    result.AvgWaitingTime,
		AverageTurnAroundTime: result.AvgTurnaroundTime,
		AverageResponseTime:   result.AvgResponseTime,
		CPUUtilization:        result.CPUUtilization,
		CPUThroughput:         result.Throughput,
		Gantt:                 make([]GanttSlice, 0, len(result.Gantt)),
		Details:               make([]ProcessResponse, 0, len(result.Processes)),
	}
	for _, g := range result.Gantt {
		resp.Gantt = append(resp.Gantt, GanttSlice{PID: g.PID, Start: g.Start, End: g.End})
	}
	for i := range result.Processes {
		p := &result.Processes[i]
		resp.Details = append(resp.Details, ProcessResponse{
			PID:            p.PID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			WaitingTime:    p.WaitingTime,
			TurnaroundTime: p.TurnaroundTime,
			ResponseTime:   p.ResponseTime,
			FinishTime:     p.FinishTime,
		})
	}
	return resp
}
