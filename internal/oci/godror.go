package oci

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/godror/godror"

	"github.com/apstndb/ociprops/internal/properties"
)

// DetectClientVersion asks the Oracle client library loaded by godror for its version.
// A connection to dsn is required because the library is initialized on connect.
func DetectClientVersion(ctx context.Context, dsn string) (properties.Version, error) {
	db, err := sql.Open("godror", dsn)
	if err != nil {
		return properties.Version{}, fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	vi, err := godror.ClientVersion(ctx, db)
	if err != nil {
		return properties.Version{}, fmt.Errorf("error detecting Oracle client version: %w", err)
	}
	return versionFromGodror(vi), nil
}

func versionFromGodror(vi godror.VersionInfo) properties.Version {
	return properties.Version{
		Major:       vi.Version,
		Minor:       vi.Release,
		Update:      vi.Update,
		PortRelease: vi.PortRelease,
		PortUpdate:  vi.PortUpdate,
	}
}
