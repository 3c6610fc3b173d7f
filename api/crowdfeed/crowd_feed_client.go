package crowdfeed

import (
	"fmt"

	"crowd-dashboard/api"
)

// CrowdFeedClient fetches the occupancy CSV snapshot over HTTP.
type CrowdFeedClient struct {
	httpClient *api.HTTPClient
	csvPath    string
}

// NewCrowdFeedClient creates a new instance of CrowdFeedClient.
func NewCrowdFeedClient(httpClient *api.HTTPClient, csvPath string) *CrowdFeedClient {
	return &CrowdFeedClient{
		httpClient: httpClient,
		csvPath:    csvPath,
	}
}

// FetchSnapshotCSV downloads the raw CSV text of the current snapshot.
func (c *CrowdFeedClient) FetchSnapshotCSV() (string, error) {
	body, err := c.httpClient.FetchText(c.csvPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch crowd snapshot from %s: %w", c.csvPath, err)
	}
	return body, nil
}
