package audittrail

import (
	"fmt"
	"unicode/utf8"

	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/linkedtable"
)

// Data is the record payload, either raw bytes or text. The variant is
// carried explicitly in the encoding.
type Data struct {
	Bytes *[]byte
	Text  *string
}

func (Data) IsBcsEnum() {}

func BytesData(b []byte) Data {
	return Data{Bytes: &b}
}

func TextData(s string) Data {
	return Data{Text: &s}
}

func (d Data) IsText() bool {
	return d.Text != nil
}

// Raw returns the payload bytes of either variant
func (d Data) Raw() []byte {
	switch {
	case d.Text != nil:
		return []byte(*d.Text)
	case d.Bytes != nil:
		return *d.Bytes
	}
	return nil
}

func (d Data) validate() error {
	if (d.Bytes == nil) == (d.Text == nil) {
		return fmt.Errorf("record data must be either bytes or text")
	}
	if d.Text != nil && !utf8.ValidString(*d.Text) {
		return fmt.Errorf("record text is not valid utf-8")
	}
	return nil
}

func (d Data) String() string {
	if d.Text != nil {
		return fmt.Sprintf("text(%d)", len(*d.Text))
	}
	if d.Bytes != nil {
		return fmt.Sprintf("bytes(%d)", len(*d.Bytes))
	}
	return "empty"
}

type RecordCorrection struct {
	Replaces     []uint64
	IsReplacedBy *uint64 `bcs:"optional"`
}

type Record struct {
	Data       Data
	Metadata   *string `bcs:"optional"`
	Sequence   uint64
	AddedBy    ledger.Address
	AddedAt    uint64
	Correction RecordCorrection
}

type Permission uint8

const (
	PermissionAddRecord Permission = iota
	PermissionCorrectRecord
	PermissionDeleteRecord
	PermissionUpdateMetadata
	PermissionUpdateLocking
	PermissionAddRole
	PermissionUpdateRole
	PermissionDeleteRole
	PermissionAddCapability
	PermissionRevokeCapability
	PermissionMigrate
)

var permissionNames = []string{
	"AddRecord",
	"CorrectRecord",
	"DeleteRecord",
	"UpdateMetadata",
	"UpdateLocking",
	"AddRole",
	"UpdateRole",
	"DeleteRole",
	"AddCapability",
	"RevokeCapability",
	"Migrate",
}

func (p Permission) String() string {
	if int(p) < len(permissionNames) {
		return permissionNames[p]
	}
	return fmt.Sprintf("Permission(%d)", p)
}

// AdminPermissions grants everything.
func AdminPermissions() []Permission {
	res := make([]Permission, len(permissionNames))
	for i := range res {
		res[i] = Permission(i)
	}
	return res
}

// RecordPermissions allows writing records only.
func RecordPermissions() []Permission {
	return []Permission{PermissionAddRecord, PermissionCorrectRecord, PermissionDeleteRecord}
}

func HasPermission(perms []Permission, p Permission) bool {
	for _, have := range perms {
		if have == p {
			return true
		}
	}
	return false
}

type RoleEntry struct {
	Name        string
	Permissions []Permission
}

type RoleMap struct {
	Roles []RoleEntry
	// Revoked holds ids of revoked capabilities
	Revoked []ledger.ObjectID
}

func (m RoleMap) Role(name string) (perms []Permission, ok bool) {
	for _, r := range m.Roles {
		if r.Name == name {
			return r.Permissions, true
		}
	}
	return nil, false
}

func (m RoleMap) IsRevoked(id ledger.ObjectID) bool {
	for _, r := range m.Revoked {
		if r == id {
			return true
		}
	}
	return false
}

// LockingConfig protects recent records from deletion. A record is locked while
// it is younger than DeleteWindowSecs or among the last DeleteWindowCount records.
type LockingConfig struct {
	DeleteWindowSecs  *uint64 `bcs:"optional"`
	DeleteWindowCount *uint64 `bcs:"optional"`
}

type Metadata struct {
	Name        string
	Description *string `bcs:"optional"`
}

type Trail struct {
	ID                ledger.ObjectID
	Creator           ledger.Address
	CreatedAt         uint64
	SequenceNumber    uint64
	Records           linkedtable.Table
	Roles             RoleMap
	Locking           LockingConfig
	Metadata          *Metadata `bcs:"optional"`
	UpdatableMetadata *string   `bcs:"optional"`
	Version           uint64
}

// Capability grants the permissions of Role on the trail TrailID.
type Capability struct {
	ID         ledger.ObjectID
	TrailID    ledger.ObjectID
	Role       string
	IssuedTo   *ledger.Address `bcs:"optional"`
	ValidFrom  *uint64         `bcs:"optional"`
	ValidUntil *uint64         `bcs:"optional"`
}

func (c Capability) TargetKey() ledger.ObjectID {
	return c.TrailID
}

// ValidAt reports whether the validity window contains ts (ms).
func (c Capability) ValidAt(ts uint64) bool {
	if c.ValidFrom != nil && ts < *c.ValidFrom {
		return false
	}
	if c.ValidUntil != nil && ts > *c.ValidUntil {
		return false
	}
	return true
}
