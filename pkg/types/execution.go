package types

// ExecutionRequest is the payload submitted to the remote execution
// API, directly or through the local proxy endpoint.
type ExecutionRequest struct {
	Script       string `json:"script"`
	Stdin        string `json:"stdin"`
	Language     string `json:"language"`
	VersionIndex int    `json:"versionIndex"`
}

// ExecutionResult is the upstream response for a single run. It is
// overwritten by the next run; nothing is persisted.
type ExecutionResult struct {
	Output     string `json:"output"`
	StatusCode int    `json:"statusCode"`
	Memory     string `json:"memory"`
	CPUTime    string `json:"cpuTime"`
	Error      string `json:"error,omitempty"`
}

// Succeeded reports whether the upstream accepted and ran the program.
func (r ExecutionResult) Succeeded() bool {
	return r.StatusCode == 200 && r.Error == ""
}
