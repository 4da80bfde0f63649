package storage

import "time"

// The "cloud" here is only the local clock: sync and deploy stamp
// human-readable timestamps so the dashboard can show "last synced" and
// "published", without contacting any remote system. Neither can fail
// outward; a real backend would turn these into request/response calls with
// per-collection failure detail.

// SyncAll stamps the last-sync document and returns the same display string.
func SyncAll() string {
	now := time.Now().Format("15:04")
	stamp := "En línea: " + now
	SetLastSync(stamp)
	return now
}

// Deploy returns a publish timestamp and broadcasts the deploy signal so
// other processes can react (e.g. refresh cached content).
func Deploy() string {
	now := time.Now().Format("02/01/2006 15:04")
	Notify(GlobalDeploy)
	return now
}
