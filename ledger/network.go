package ledger

import (
	"fmt"

	"github.com/anyproto/any-trail/ledger/ledgererr"
)

// ClockObjectID is the system clock shared object.
var ClockObjectID = MustObjectID("0x6")

const clockInitialSharedVersion = 1

// Network describes the deployment the client talks to.
type Network struct {
	Name      string `yaml:"name"`
	PackageID string `yaml:"packageId"`
	// ClockID overrides the system clock object, mostly for local networks
	ClockID string `yaml:"clockId"`
	// ClockVersion overrides the clock's initial shared version
	ClockVersion uint64 `yaml:"clockVersion"`
}

func (n Network) Package() (ObjectID, error) {
	if n.PackageID == "" {
		return ObjectID{}, fmt.Errorf("%w: package id is not set for network %q", ledgererr.ErrInvalidConfig, n.Name)
	}
	id, err := ParseObjectID(n.PackageID)
	if err != nil {
		return ObjectID{}, fmt.Errorf("%w: network %q: %w", ledgererr.ErrInvalidConfig, n.Name, err)
	}
	return id, nil
}

// Clock returns the immutable shared argument of the clock object.
func (n Network) Clock() (Argument, error) {
	id := ClockObjectID
	if n.ClockID != "" {
		var err error
		if id, err = ParseObjectID(n.ClockID); err != nil {
			return Argument{}, fmt.Errorf("%w: network %q clock: %w", ledgererr.ErrInvalidConfig, n.Name, err)
		}
	}
	version := uint64(clockInitialSharedVersion)
	if n.ClockVersion != 0 {
		version = n.ClockVersion
	}
	return SharedArgument(id, version, false), nil
}
