package crowdfeed

// CrowdFeed abstracts the source of the raw occupancy CSV snapshot.
type CrowdFeed interface {
	FetchSnapshotCSV() (string, error)
}
