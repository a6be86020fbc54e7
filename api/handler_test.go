package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pramath6095/heuristic-ai-cfs/config"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	cfg := &config.SchedulerConfig{Port: 0, RoundRobinQuantum: 4, CFSQuantum: 4}
	NewSchedulerHandler(cfg).Register(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

const twoProcessBody = `{"processes":[
	{"pid":0,"arrival_time":0,"burst_time":8,"priority":1,"niceness":0},
	{"pid":1,"arrival_time":1,"burst_time":4,"priority":2,"niceness":0}
]}`

func TestScheduleFCFS(t *testing.T) {
	app := newTestApp()
	resp := postJSON(t, app, "/api/v1/fcfs", twoProcessBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "FCFS (First Come First Serve)", body.Algorithm)
	assert.Equal(t, 12, body.TotalTime)
	require.Len(t, body.Details, 2)
	assert.Equal(t, 7, body.Details[1].WaitingTime)
	require.Len(t, body.Gantt, 2)
	assert.Equal(t, GanttSlice{PID: 0, Start: 0, End: 8}, body.Gantt[0])
}

func TestScheduleAll(t *testing.T) {
	app := newTestApp()
	resp := postJSON(t, app, "/api/v1/all", twoProcessBody)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 6)
	for _, r := range body {
		assert.Equal(t, 12, r.TotalTime, r.Algorithm)
	}
}

func TestScheduleRejectsMalformedBody(t *testing.T) {
	app := newTestApp()
	resp := postJSON(t, app, "/api/v1/rr", `{"processes":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestScheduleRejectsInvalidSpec(t *testing.T) {
	app := newTestApp()
	resp := postJSON(t, app, "/api/v1/cfs", `{"processes":[
		{"pid":1,"arrival_time":0,"burst_time":5},
		{"pid":1,"arrival_time":1,"burst_time":3}
	]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
