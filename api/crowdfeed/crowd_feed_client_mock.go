package crowdfeed

import (
	"fmt"

	"crowd-dashboard/util"
)

const CROWD_SNAPSHOT_CSV_PATH = "./resources/crowd_snapshot.csv"

// CrowdFeedClientMock embeds mocked logic for the crowd feed client
type CrowdFeedClientMock struct {
	fixturePath string
}

// NewCrowdFeedClientMock creates a new instance of CrowdFeedClientMock
func NewCrowdFeedClientMock() *CrowdFeedClientMock {
	return &CrowdFeedClientMock{fixturePath: CROWD_SNAPSHOT_CSV_PATH}
}

// NewCrowdFeedClientMockWithFixture creates a mock backed by a specific fixture file.
func NewCrowdFeedClientMockWithFixture(fixturePath string) *CrowdFeedClientMock {
	return &CrowdFeedClientMock{fixturePath: fixturePath}
}

// FetchSnapshotCSV returns the CSV fixture bundled under resources.
func (c *CrowdFeedClientMock) FetchSnapshotCSV() (string, error) {
	text, err := util.ReadSnapshotCSVFromFile(c.fixturePath)
	if err != nil {
		fmt.Println("Could not read crowd snapshot csv fixture")
		return "", err
	}

	return text, nil
}
