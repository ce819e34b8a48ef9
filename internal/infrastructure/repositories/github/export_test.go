package github

import (
	"time"
)

// NewFastSourceRepository builds a repository with a short inter-attempt
// delay so retry tests stay quick.
func NewFastSourceRepository(wait time.Duration) *HTTPSourceRepository {
	return &HTTPSourceRepository{
		probe:    newClient(probeAttempts, wait, probeTimeout),
		download: newClient(downloadAttempts, wait, downloadTimeout),
	}
}
