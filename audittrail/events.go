package audittrail

import "github.com/anyproto/any-trail/ledger"

type AuditTrailCreated struct {
	TrailID   ledger.ObjectID
	Creator   ledger.Address
	Timestamp uint64
}

type RecordAdded struct {
	TrailID   ledger.ObjectID
	Sequence  uint64
	AddedBy   ledger.Address
	Timestamp uint64
}

type RecordCorrected struct {
	TrailID     ledger.ObjectID
	Sequence    uint64
	Replaces    []uint64
	CorrectedBy ledger.Address
	Timestamp   uint64
}

type RecordDeleted struct {
	TrailID   ledger.ObjectID
	Sequence  uint64
	DeletedBy ledger.Address
	Timestamp uint64
}

type RoleCreated struct {
	TrailID     ledger.ObjectID
	Role        string
	Permissions []Permission
}

type RoleUpdated struct {
	TrailID     ledger.ObjectID
	Role        string
	Permissions []Permission
}

type RoleDeleted struct {
	TrailID ledger.ObjectID
	Role    string
}

type CapabilityIssued struct {
	TrailID      ledger.ObjectID
	CapabilityID ledger.ObjectID
	Role         string
	IssuedTo     *ledger.Address `bcs:"optional"`
	ValidFrom    *uint64         `bcs:"optional"`
	ValidUntil   *uint64         `bcs:"optional"`
}

type CapabilityRevoked struct {
	TrailID      ledger.ObjectID
	CapabilityID ledger.ObjectID
}

type CapabilityDestroyed struct {
	TrailID      ledger.ObjectID
	CapabilityID ledger.ObjectID
}

type MetadataUpdated struct {
	TrailID  ledger.ObjectID
	Metadata *string `bcs:"optional"`
}

type LockingConfigUpdated struct {
	TrailID ledger.ObjectID
	Config  LockingConfig
}
