package services

import (
	"log"
	"time"
)

// SnapshotRefresherService periodically re-fetches the crowd snapshot
// to keep the cache warm. On-demand reload remains the primary path;
// this job only saves the first visitor after an expiry from paying
// the fetch.
type SnapshotRefresherService struct {
	loader *ObservationLoader
}

// NewSnapshotRefresherService constructs a refresher with its loader.
func NewSnapshotRefresherService(loader *ObservationLoader) *SnapshotRefresherService {
	return &SnapshotRefresherService{loader: loader}
}

// StartPeriodicJob launches the background loop at the given interval.
func (sr *SnapshotRefresherService) StartPeriodicJob(interval time.Duration) {
	go sr.startPeriodicJob(interval)
}

func (sr *SnapshotRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[SnapshotRefresherService] Running periodic snapshot refresh.")
		if err := sr.RefreshSnapshot(); err != nil {
			log.Printf("[SnapshotRefresherService] RefreshSnapshot returned error: %v", err)
		} else {
			log.Println("[SnapshotRefresherService] RefreshSnapshot completed successfully.")
		}
	}
}

// RefreshSnapshot forces one fresh fetch of the snapshot.
func (sr *SnapshotRefresherService) RefreshSnapshot() error {
	records, err := sr.loader.Load(true)
	if err != nil {
		return err
	}
	log.Printf("[SnapshotRefresherService] Refreshed snapshot with %d records", len(records))
	return nil
}
