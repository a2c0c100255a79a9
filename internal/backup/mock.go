package backup

import (
	"context"
	"time"

	"github.com/habitta-app/habitta/internal/errors"
	"github.com/habitta-app/habitta/internal/storage"
)

// Store keys backing the mock transport.
const (
	keyMockBlob     = "backupMock.blob"
	keyMockSignedIn = "backupMock.signedIn"
	keyMockModified = "backupMock.modifiedTime"
)

// Mock is a backup transport simulated on top of the local store. It stands
// in for a real cloud provider during development and tests.
type Mock struct {
	store *storage.Store
}

// NewMock creates a mock transport over the given store.
func NewMock(store *storage.Store) *Mock {
	return &Mock{store: store}
}

var mockProfile = Profile{Name: "Demo User", Email: "user@example.com"}

// SignIn marks the mock session active.
func (m *Mock) SignIn(ctx context.Context) (Profile, error) {
	if err := m.store.Set(keyMockSignedIn, true); err != nil {
		return Profile{}, err
	}
	return mockProfile, nil
}

// SignOut marks the mock session inactive.
func (m *Mock) SignOut(ctx context.Context) error {
	return m.store.Delete(keyMockSignedIn)
}

// SignedInUser returns the mock profile while the session flag is set.
func (m *Mock) SignedInUser(ctx context.Context) (*Profile, error) {
	signedIn := false
	m.store.Get(keyMockSignedIn, &signedIn)
	if !signedIn {
		return nil, nil
	}
	profile := mockProfile
	return &profile, nil
}

// Upload stores the blob in the local store.
func (m *Mock) Upload(ctx context.Context, data []byte) (FileInfo, error) {
	if err := m.requireSignIn(); err != nil {
		return FileInfo{}, err
	}
	if err := m.store.SetBytes(keyMockBlob, data); err != nil {
		return FileInfo{}, err
	}
	modified := time.Now()
	if err := m.store.Set(keyMockModified, modified); err != nil {
		return FileInfo{}, err
	}
	return FileInfo{ID: "mock-file-id", Name: BackupFileName, ModifiedTime: modified}, nil
}

// Latest returns the stored blob, or nil metadata when none exists.
func (m *Mock) Latest(ctx context.Context) (*FileInfo, []byte, error) {
	if err := m.requireSignIn(); err != nil {
		return nil, nil, err
	}
	data, err := m.store.GetBytes(keyMockBlob)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var modified time.Time
	m.store.Get(keyMockModified, &modified)
	return &FileInfo{ID: "mock-file-id", Name: BackupFileName, ModifiedTime: modified}, data, nil
}

func (m *Mock) requireSignIn() error {
	signedIn := false
	m.store.Get(keyMockSignedIn, &signedIn)
	if !signedIn {
		return errors.ErrNotSignedIn
	}
	return nil
}
