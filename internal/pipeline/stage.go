package pipeline

import "fmt"

// Stage is how far a single invocation got.
type Stage int

const (
	StageIdle Stage = iota
	StageDateResolved
	StageRequestBuilt
	StageRequested
	StageResponseOk
	StageTransportFailed
	StageExtracted
	StageMatched
	StagePersisted
)

var stageNames = map[Stage]string{
	StageIdle:            "idle",
	StageDateResolved:    "date_resolved",
	StageRequestBuilt:    "request_built",
	StageRequested:       "requested",
	StageResponseOk:      "response_ok",
	StageTransportFailed: "transport_failed",
	StageExtracted:       "extracted",
	StageMatched:         "matched",
	StagePersisted:       "persisted",
}

func (s Stage) String() string {
	name, ok := stageNames[s]
	if !ok {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return name
}

// StageError is returned by the service, Stage is the last stage that was
// reached before Err stopped the invocation.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
