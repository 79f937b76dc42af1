package fetcher

import "fmt"

// DownloadFailedError reports a fetch that completed at the transport
// level but returned a non-success status. It aborts the whole run;
// connection-level failures propagate as wrapped transport errors
// instead.
type DownloadFailedError struct {
	URL  string
	Code int
}

func (e *DownloadFailedError) Error() string {
	return fmt.Sprintf("downloading %s failed with status %d", e.URL, e.Code)
}
