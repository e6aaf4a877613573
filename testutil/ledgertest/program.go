package ledgertest

import (
	"errors"
	"fmt"

	"github.com/anyproto/any-trail/audittrail"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/linkedtable"
)

var (
	dataType  = ledger.StructTag(PackageID.Address(), audittrail.ModuleRecord, "Data")
	trailType = ledger.StructTag(PackageID.Address(), audittrail.ModuleTrail, "AuditTrail", dataType)
	capType   = ledger.StructTag(PackageID.Address(), audittrail.ModuleCapability, "Capability")
	seqType   = ledger.Primitive(ledger.TypeU64)
)

var errAbort = errors.New("MoveAbort")

func abortf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errAbort, fmt.Sprintf(format, args...))
}

type fieldOp struct {
	parent ledger.ObjectID
	name   string
	id     ledger.ObjectID
	remove bool
}

type txCtx struct {
	*Ledger
	sender ledger.Address
	call   *ledger.CallPayload
	res    *ledger.ExecutionResult

	staged   map[ledger.ObjectID]*ledger.Object
	fieldOps []fieldOp
	created  []ledger.ObjectID
	deleted  []ledger.ObjectRef
}

func (tx *txCtx) run() error {
	if tx.call.Package != PackageID {
		return abortf("unknown package %s", tx.call.Package)
	}
	if tx.call.Module != audittrail.ModuleTrail {
		return abortf("unknown module %s", tx.call.Module)
	}
	switch tx.call.Function {
	case audittrail.FuncCreate:
		return tx.create()
	case audittrail.FuncAddRecord:
		return tx.addRecord()
	case audittrail.FuncCorrectRecord:
		return tx.correctRecord()
	case audittrail.FuncDeleteRecord:
		return tx.deleteRecord()
	case audittrail.FuncCreateRole, audittrail.FuncUpdateRole, audittrail.FuncDeleteRole:
		return tx.role()
	case audittrail.FuncNewCapability:
		return tx.newCapability()
	case audittrail.FuncRevokeCapability:
		return tx.revokeCapability()
	case audittrail.FuncDestroyCapability:
		return tx.destroyCapability()
	case audittrail.FuncUpdateMetadata:
		return tx.updateMetadata()
	case audittrail.FuncUpdateLockingConfig:
		return tx.updateLocking()
	}
	return abortf("unknown function %s", tx.call.Function)
}

func (tx *txCtx) query() ([]byte, error) {
	if tx.call.Package != PackageID || tx.call.Module != audittrail.ModuleTrail {
		return nil, abortf("unknown target %s", tx.call.Target())
	}
	_, trail, err := tx.trail(false)
	if err != nil {
		return nil, err
	}
	switch tx.call.Function {
	case audittrail.FuncRecordCount:
		return callarg.Encode(trail.Records.Size)
	case audittrail.FuncGetRecord:
		var seq uint64
		if err = tx.pure(1, &seq); err != nil {
			return nil, err
		}
		_, field, err := tx.recordField(trail.Records.ID, seq)
		if err != nil {
			return nil, err
		}
		return callarg.Encode(field.Value.Value)
	case audittrail.FuncIsRecordLocked:
		var seq uint64
		if err = tx.pure(1, &seq); err != nil {
			return nil, err
		}
		if err = tx.clock(2); err != nil {
			return nil, err
		}
		locked, err := tx.isLocked(trail, seq)
		if err != nil {
			return nil, err
		}
		return callarg.Encode(locked)
	}
	return nil, abortf("unknown view function %s", tx.call.Function)
}

func (tx *txCtx) create() error {
	if len(tx.call.TypeArgs) != 1 || !tx.call.TypeArgs[0].Equal(dataType) {
		return abortf("create expects type argument %s", dataType)
	}
	var (
		initial     callarg.Option[audittrail.Data]
		initialNote callarg.Option[string]
		adminRole   string
		locking     audittrail.LockingConfig
		metadata    callarg.Option[audittrail.Metadata]
		updatable   callarg.Option[string]
	)
	for i, out := range []any{&initial, &initialNote, &adminRole, &locking, &metadata, &updatable} {
		if err := tx.pure(i, out); err != nil {
			return err
		}
	}
	if err := tx.clock(6); err != nil {
		return err
	}
	trail := &audittrail.Trail{
		ID:                tx.newID(),
		Creator:           tx.sender,
		CreatedAt:         tx.now,
		Records:           linkedtable.Table{ID: tx.newID()},
		Roles:             audittrail.RoleMap{Roles: []audittrail.RoleEntry{{Name: adminRole, Permissions: audittrail.AdminPermissions()}}},
		Locking:           locking,
		Metadata:          metadata.Value,
		UpdatableMetadata: updatable.Value,
		Version:           1,
	}
	if initial.Value != nil {
		if err := tx.appendRecord(trail, *initial.Value, initialNote.Value, nil); err != nil {
			return err
		}
	}
	if err := tx.put(&ledger.Object{Ref: ledger.ObjectRef{ID: trail.ID}, Owner: ledger.SharedOwner(tx.txs), Type: trailType}, trail, true); err != nil {
		return err
	}
	if _, err := tx.issue(trail.ID, adminRole, tx.sender, nil, nil, nil); err != nil {
		return err
	}
	return tx.emit("AuditTrailCreated", audittrail.AuditTrailCreated{TrailID: trail.ID, Creator: tx.sender, Timestamp: tx.now})
}

func (tx *txCtx) addRecord() error {
	obj, trail, err := tx.trail(true)
	if err != nil {
		return err
	}
	if _, err = tx.authorize(trail, audittrail.PermissionAddRecord); err != nil {
		return err
	}
	var (
		data audittrail.Data
		note callarg.Option[string]
	)
	if err = tx.pure(2, &data); err != nil {
		return err
	}
	if err = tx.pure(3, &note); err != nil {
		return err
	}
	if err = tx.clock(4); err != nil {
		return err
	}
	seq := trail.SequenceNumber
	if err = tx.appendRecord(trail, data, note.Value, nil); err != nil {
		return err
	}
	if err = tx.put(obj, trail, false); err != nil {
		return err
	}
	return tx.emit("RecordAdded", audittrail.RecordAdded{TrailID: trail.ID, Sequence: seq, AddedBy: tx.sender, Timestamp: tx.now})
}

func (tx *txCtx) correctRecord() error {
	obj, trail, err := tx.trail(true)
	if err != nil {
		return err
	}
	if _, err = tx.authorize(trail, audittrail.PermissionCorrectRecord); err != nil {
		return err
	}
	var (
		replaces []uint64
		data     audittrail.Data
		note     callarg.Option[string]
	)
	for i, out := range []any{&replaces, &data, &note} {
		if err = tx.pure(2+i, out); err != nil {
			return err
		}
	}
	if err = tx.clock(5); err != nil {
		return err
	}
	seq := trail.SequenceNumber
	for _, old := range replaces {
		fieldObj, field, err := tx.recordField(trail.Records.ID, old)
		if err != nil {
			return err
		}
		if field.Value.Value.Correction.IsReplacedBy != nil {
			return abortf("record %d is already replaced", old)
		}
		field.Value.Value.Correction.IsReplacedBy = &seq
		if err = tx.put(fieldObj, field, false); err != nil {
			return err
		}
	}
	if err = tx.appendRecord(trail, data, note.Value, replaces); err != nil {
		return err
	}
	if err = tx.put(obj, trail, false); err != nil {
		return err
	}
	return tx.emit("RecordCorrected", audittrail.RecordCorrected{TrailID: trail.ID, Sequence: seq, Replaces: replaces, CorrectedBy: tx.sender, Timestamp: tx.now})
}

func (tx *txCtx) deleteRecord() error {
	obj, trail, err := tx.trail(true)
	if err != nil {
		return err
	}
	if _, err = tx.authorize(trail, audittrail.PermissionDeleteRecord); err != nil {
		return err
	}
	var seq uint64
	if err = tx.pure(2, &seq); err != nil {
		return err
	}
	if err = tx.clock(3); err != nil {
		return err
	}
	locked, err := tx.isLocked(trail, seq)
	if err != nil {
		return err
	}
	if locked {
		return abortf("record %d is locked", seq)
	}
	if err = tx.unlinkRecord(trail, seq); err != nil {
		return err
	}
	if err = tx.put(obj, trail, false); err != nil {
		return err
	}
	return tx.emit("RecordDeleted", audittrail.RecordDeleted{TrailID: trail.ID, Sequence: seq, DeletedBy: tx.sender, Timestamp: tx.now})
}

func (tx *txCtx) role() error {
	obj, trail, err := tx.trail(true)
	if err != nil {
		return err
	}
	perm := map[string]audittrail.Permission{
		audittrail.FuncCreateRole: audittrail.PermissionAddRole,
		audittrail.FuncUpdateRole: audittrail.PermissionUpdateRole,
		audittrail.FuncDeleteRole: audittrail.PermissionDeleteRole,
	}[tx.call.Function]
	if _, err = tx.authorize(trail, perm); err != nil {
		return err
	}
	var (
		name  string
		perms []audittrail.Permission
		next  = 3
	)
	if err = tx.pure(2, &name); err != nil {
		return err
	}
	if tx.call.Function != audittrail.FuncDeleteRole {
		if err = tx.pure(3, &perms); err != nil {
			return err
		}
		next = 4
	}
	if err = tx.clock(next); err != nil {
		return err
	}
	_, exists := trail.Roles.Role(name)
	roles := trail.Roles.Roles[:0:0]
	switch tx.call.Function {
	case audittrail.FuncCreateRole:
		if exists {
			return abortf("role %q already exists", name)
		}
		roles = append(append(roles, trail.Roles.Roles...), audittrail.RoleEntry{Name: name, Permissions: perms})
	default:
		if !exists {
			return abortf("role %q not found", name)
		}
		for _, r := range trail.Roles.Roles {
			switch {
			case r.Name != name:
				roles = append(roles, r)
			case tx.call.Function == audittrail.FuncUpdateRole:
				roles = append(roles, audittrail.RoleEntry{Name: name, Permissions: perms})
			}
		}
	}
	trail.Roles.Roles = roles
	if err = tx.put(obj, trail, false); err != nil {
		return err
	}
	switch tx.call.Function {
	case audittrail.FuncCreateRole:
		return tx.emit("RoleCreated", audittrail.RoleCreated{TrailID: trail.ID, Role: name, Permissions: perms})
	case audittrail.FuncUpdateRole:
		return tx.emit("RoleUpdated", audittrail.RoleUpdated{TrailID: trail.ID, Role: name, Permissions: perms})
	}
	return tx.emit("RoleDeleted", audittrail.RoleDeleted{TrailID: trail.ID, Role: name})
}

func (tx *txCtx) newCapability() error {
	_, trail, err := tx.trail(true)
	if err != nil {
		return err
	}
	if _, err = tx.authorize(trail, audittrail.PermissionAddCapability); err != nil {
		return err
	}
	var (
		role       string
		issuedTo   callarg.Option[ledger.Address]
		validFrom  callarg.Option[uint64]
		validUntil callarg.Option[uint64]
	)
	for i, out := range []any{&role, &issuedTo, &validFrom, &validUntil} {
		if err = tx.pure(2+i, out); err != nil {
			return err
		}
	}
	if err = tx.clock(6); err != nil {
		return err
	}
	if _, ok := trail.Roles.Role(role); !ok {
		return abortf("role %q not found", role)
	}
	holder := tx.sender
	if issuedTo.Value != nil {
		holder = *issuedTo.Value
	}
	c, err := tx.issue(trail.ID, role, holder, issuedTo.Value, validFrom.Value, validUntil.Value)
	if err != nil {
		return err
	}
	return tx.emit("CapabilityIssued", audittrail.CapabilityIssued{
		TrailID:      trail.ID,
		CapabilityID: c.ID,
		Role:         role,
		IssuedTo:     c.IssuedTo,
		ValidFrom:    c.ValidFrom,
		ValidUntil:   c.ValidUntil,
	})
}

func (tx *txCtx) revokeCapability() error {
	obj, trail, err := tx.trail(true)
	if err != nil {
		return err
	}
	if _, err = tx.authorize(trail, audittrail.PermissionRevokeCapability); err != nil {
		return err
	}
	var id ledger.ObjectID
	if err = tx.pure(2, &id); err != nil {
		return err
	}
	if err = tx.clock(3); err != nil {
		return err
	}
	if trail.Roles.IsRevoked(id) {
		return abortf("capability %s is already revoked", id)
	}
	trail.Roles.Revoked = append(trail.Roles.Revoked, id)
	if err = tx.put(obj, trail, false); err != nil {
		return err
	}
	return tx.emit("CapabilityRevoked", audittrail.CapabilityRevoked{TrailID: trail.ID, CapabilityID: id})
}

func (tx *txCtx) destroyCapability() error {
	_, trail, err := tx.trail(true)
	if err != nil {
		return err
	}
	capObj, c, err := tx.capability(trail)
	if err != nil {
		return err
	}
	if err = tx.clock(2); err != nil {
		return err
	}
	tx.remove(capObj)
	return tx.emit("CapabilityDestroyed", audittrail.CapabilityDestroyed{TrailID: trail.ID, CapabilityID: c.ID})
}

func (tx *txCtx) updateMetadata() error {
	obj, trail, err := tx.trail(true)
	if err != nil {
		return err
	}
	if _, err = tx.authorize(trail, audittrail.PermissionUpdateMetadata); err != nil {
		return err
	}
	var metadata callarg.Option[string]
	if err = tx.pure(2, &metadata); err != nil {
		return err
	}
	if err = tx.clock(3); err != nil {
		return err
	}
	trail.UpdatableMetadata = metadata.Value
	if err = tx.put(obj, trail, false); err != nil {
		return err
	}
	return tx.emit("MetadataUpdated", audittrail.MetadataUpdated{TrailID: trail.ID, Metadata: metadata.Value})
}

func (tx *txCtx) updateLocking() error {
	obj, trail, err := tx.trail(true)
	if err != nil {
		return err
	}
	if _, err = tx.authorize(trail, audittrail.PermissionUpdateLocking); err != nil {
		return err
	}
	var config audittrail.LockingConfig
	if err = tx.pure(2, &config); err != nil {
		return err
	}
	if err = tx.clock(3); err != nil {
		return err
	}
	trail.Locking = config
	if err = tx.put(obj, trail, false); err != nil {
		return err
	}
	return tx.emit("LockingConfigUpdated", audittrail.LockingConfigUpdated{TrailID: trail.ID, Config: config})
}
