package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/statespace/go-core/internal/space"
)

// #region space-record

// SpaceRecord is a versioned snapshot of a cyclic-enum state space.
type SpaceRecord struct {
	VersionID string
	ParentID  string
	SpaceName string
	Elements  []string
	Labels    []string
	Scalars   []int // current indices, parallel to Elements
	CreatedAt time.Time
}

// Snapshot captures the current contents of sp under the given space name.
// Version fields are left empty; NewVersion or CreateInitialSpace fill them.
func Snapshot(name string, sp *space.CyclicEnumSpace) SpaceRecord {
	return SpaceRecord{
		SpaceName: name,
		Elements:  sp.Elements(),
		Labels:    sp.Enum().Labels(),
		Scalars:   sp.Scalars(),
	}
}

// NewVersion snapshots sp as a child version of parent, with a fresh version
// ID and timestamp, ready for CommitSpace.
func NewVersion(parent SpaceRecord, sp *space.CyclicEnumSpace) SpaceRecord {
	rec := Snapshot(parent.SpaceName, sp)
	rec.VersionID = uuid.New().String()
	rec.ParentID = parent.VersionID
	rec.CreatedAt = time.Now().UTC()
	return rec
}

// ToSpace rebuilds the state space held by this record. Scalars are restored
// as-is, so Check on the result reports persisted corruption.
func (r SpaceRecord) ToSpace() (*space.CyclicEnumSpace, error) {
	return space.RestoreCyclicEnum(r.Elements, r.Labels, r.Scalars)
}

// #endregion space-record
