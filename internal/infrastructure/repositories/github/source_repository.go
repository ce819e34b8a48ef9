package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/brewpin/internal/domain/repositories"
)

const (
	// Existence probes are cheap and bounded: 2 attempts, short delay.
	probeAttempts  = 2
	probeWait      = 500 * time.Millisecond
	probeTimeout   = 10 * time.Second
	probeBodyLimit = 1024

	// Downloads retry a little harder: 3 attempts, fixed delay.
	downloadAttempts = 3
	downloadWait     = 2 * time.Second
	downloadTimeout  = 60 * time.Second
)

// HTTPSourceRepository implements repositories.SourceRepository against raw
// file URLs using bounded-retry HTTP clients.
type HTTPSourceRepository struct {
	probe    *retryablehttp.Client
	download *retryablehttp.Client
}

// NewHTTPSourceRepository creates a source repository with separate retry
// policies for probing and downloading.
func NewHTTPSourceRepository() repositories.SourceRepository {
	return &HTTPSourceRepository{
		probe:    newClient(probeAttempts, probeWait, probeTimeout),
		download: newClient(downloadAttempts, downloadWait, downloadTimeout),
	}
}

// newClient builds a retryablehttp client with a fixed inter-attempt delay
// and a hard per-request timeout.
func newClient(attempts int, wait, timeout time.Duration) *retryablehttp.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = attempts - 1
	client.RetryWaitMin = wait
	client.RetryWaitMax = wait
	client.HTTPClient.Timeout = timeout
	client.Logger = nil
	return client
}

// Exists probes the URL with a HEAD request, falling back to a bounded GET
// probe when HEAD is unsupported or inconclusive.
func (it *HTTPSourceRepository) Exists(ctx context.Context, url string) (bool, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build HEAD request for %s: %w", url, err)
	}

	resp, doErr := it.probe.Do(req)
	if doErr == nil {
		defer resp.Body.Close()
		switch {
		case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
			return true, nil
		case resp.StatusCode == http.StatusNotFound:
			return false, nil
		case resp.StatusCode == http.StatusMethodNotAllowed ||
			resp.StatusCode == http.StatusNotImplemented:
			logger.Debugf("HEAD unsupported for %s (%d), probing with GET", url, resp.StatusCode)
		default:
			logger.Debugf("Inconclusive HEAD status %d for %s, probing with GET", resp.StatusCode, url)
		}
	} else {
		logger.Debugf("HEAD probe for %s failed (%v), probing with GET", url, doErr)
	}

	return it.probeWithGet(ctx, url)
}

// probeWithGet issues a GET and reads at most probeBodyLimit bytes; only the
// status matters.
func (it *HTTPSourceRepository) probeWithGet(ctx context.Context, url string) (bool, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build GET probe for %s: %w", url, err)
	}

	resp, doErr := it.probe.Do(req)
	if doErr != nil {
		return false, fmt.Errorf("GET probe for %s failed: %w", url, doErr)
	}
	defer resp.Body.Close()
	_, _ = io.CopyN(io.Discard, resp.Body, probeBodyLimit)

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices, nil
}

// Download fetches the URL into dest, returning the number of bytes written.
func (it *HTTPSourceRepository) Download(ctx context.Context, url, dest string) (int64, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, doErr := it.download.Do(req)
	if doErr != nil {
		return 0, fmt.Errorf("download of %s failed: %w", url, doErr)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("download of %s failed: unexpected status %s", url, resp.Status)
	}

	out, openErr := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if openErr != nil {
		return 0, fmt.Errorf("failed to open %s for writing: %w", dest, openErr)
	}

	written, copyErr := io.Copy(out, resp.Body)
	if copyErr != nil {
		out.Close()
		return written, fmt.Errorf("failed to write %s: %w", dest, copyErr)
	}
	if closeErr := out.Close(); closeErr != nil {
		return written, fmt.Errorf("failed to close %s: %w", dest, closeErr)
	}
	return written, nil
}
