// Package backup implements cloud backup of the full state snapshot over a
// pluggable transport. The core only needs "store this blob" and "give me
// the latest blob"; authentication and storage details stay behind the
// Transport interface.
package backup

import (
	"context"
	"time"
)

// BackupFileName is the well-known name of the backup object.
const BackupFileName = "habitta-backup.json"

// Profile identifies the signed-in account at the backup provider.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FileInfo describes a stored backup object.
type FileInfo struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ModifiedTime time.Time `json:"modifiedTime"`
}

// Transport is a backup provider. Implementations must treat the payload as
// an opaque blob. Calls are single-shot: no retries, and the caller ensures
// no concurrent duplicate calls.
type Transport interface {
	// SignIn establishes a session and returns the account profile.
	SignIn(ctx context.Context) (Profile, error)
	// SignOut tears the session down.
	SignOut(ctx context.Context) error
	// SignedInUser returns the current profile, or nil when signed out.
	SignedInUser(ctx context.Context) (*Profile, error)
	// Upload stores the blob as the latest backup.
	Upload(ctx context.Context, data []byte) (FileInfo, error)
	// Latest fetches the newest backup, or a nil FileInfo when none exists.
	Latest(ctx context.Context) (*FileInfo, []byte, error)
}
