package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"crowd-dashboard/db"
	"crowd-dashboard/models"
)

const CROWD_SNAPSHOT_KEY_V1 = "crowd_snapshot_v1"

// Snapshot is the cached result of one successful load: the parsed
// records plus the time they were fetched.
type Snapshot struct {
	FetchedAt    time.Time            `json:"fetched_at"`
	Observations []models.Observation `json:"observations"`
}

// SnapshotDAO stores parsed observation snapshots in the cache backend.
type SnapshotDAO struct {
	client db.CacheClient
}

// NewSnapshotDAO initializes a SnapshotDAO with the cache client.
func NewSnapshotDAO(client db.CacheClient) *SnapshotDAO {
	return &SnapshotDAO{client: client}
}

// SaveSnapshot stores the parsed records under the snapshot key. The
// entry expires on its own after ttl as a backstop; freshness is still
// decided from FetchedAt by the loader.
func (dao *SnapshotDAO) SaveSnapshot(observations []models.Observation, fetchedAt time.Time, ttl time.Duration) error {
	snap := Snapshot{
		FetchedAt:    fetchedAt,
		Observations: observations,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal crowd snapshot: %w", err)
	}
	if err := dao.client.Set(CROWD_SNAPSHOT_KEY_V1, string(data), ttl); err != nil {
		return fmt.Errorf("failed to set crowd snapshot in cache: %w", err)
	}
	return nil
}

// GetSnapshot retrieves the cached snapshot. A cache miss returns
// (nil, nil).
func (dao *SnapshotDAO) GetSnapshot() (*Snapshot, error) {
	str, err := dao.client.Get(CROWD_SNAPSHOT_KEY_V1)
	if err != nil {
		// Missing key is a plain cache miss, not a failure.
		return nil, nil
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(str), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal crowd snapshot JSON: %w", err)
	}
	return &snap, nil
}

// Clear drops the cached snapshot.
func (dao *SnapshotDAO) Clear() error {
	if err := dao.client.Del(CROWD_SNAPSHOT_KEY_V1); err != nil {
		return fmt.Errorf("failed to delete crowd snapshot key: %w", err)
	}
	return nil
}
