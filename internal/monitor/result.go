package monitor

import (
	"fmt"
	"net/http"
	"time"
)

// Status represents the health status of a service
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Failure distinguishes why a service was classified offline
type Failure int

const (
	FailureNone Failure = iota
	FailureTransport
	FailureHTTP
)

func (f Failure) String() string {
	switch f {
	case FailureTransport:
		return "transport"
	case FailureHTTP:
		return "http"
	default:
		return "none"
	}
}

// ReasonConnectionRefused is the offline reason for any transport failure.
const ReasonConnectionRefused = "connection refused"

// Outcome is the classification of a single health check. Detail holds the
// online detail or, for offline services, the failure reason.
type Outcome struct {
	Status     Status
	Detail     string
	Failure    Failure
	StatusCode int
	Latency    time.Duration
	Err        error
}

// Online returns an online outcome with the given detail
func Online(detail string) Outcome {
	return Outcome{Status: StatusOnline, Detail: detail}
}

// TransportFailure returns the offline outcome for a request that never completed
func TransportFailure(err error) Outcome {
	return Outcome{
		Status:  StatusOffline,
		Detail:  ReasonConnectionRefused,
		Failure: FailureTransport,
		Err:     err,
	}
}

// HTTPFailure returns the offline outcome for a completed request with a non-2xx status
func HTTPFailure(code int) Outcome {
	reason := fmt.Sprintf("unhealthy: %d", code)
	if text := http.StatusText(code); text != "" {
		reason = fmt.Sprintf("%s %s", reason, text)
	}
	return Outcome{
		Status:     StatusOffline,
		Detail:     reason,
		Failure:    FailureHTTP,
		StatusCode: code,
	}
}

// IsOnline reports whether the outcome counts as online
func (o Outcome) IsOnline() bool {
	return o.Status == StatusOnline
}

// Result represents the result of a health check
type Result struct {
	Service   Service
	Outcome   Outcome
	CheckedAt time.Time
}
