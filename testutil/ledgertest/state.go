package ledgertest

import (
	"bytes"
	"sort"

	"github.com/anyproto/any-trail/audittrail"
	"github.com/anyproto/any-trail/ledger"
	"github.com/anyproto/any-trail/ledger/callarg"
	"github.com/anyproto/any-trail/ledger/linkedtable"
)

var fieldType = ledger.StructTag(ledger.MustAddress("0x2"), "dynamic_field", "Field", seqType,
	ledger.StructTag(ledger.MustAddress("0x2"), "linked_table", "Node", seqType,
		ledger.StructTag(PackageID.Address(), audittrail.ModuleRecord, "Record", dataType)))

func (tx *txCtx) arg(i int) (ledger.Argument, error) {
	if i >= len(tx.call.Args) {
		return ledger.Argument{}, abortf("%s: missing argument %d", tx.call.Function, i)
	}
	return tx.call.Args[i], nil
}

func (tx *txCtx) pure(i int, out any) error {
	arg, err := tx.arg(i)
	if err != nil {
		return err
	}
	if err = callarg.DecodePure(arg, out); err != nil {
		return abortf("%s: argument %d: %v", tx.call.Function, i, err)
	}
	return nil
}

func (tx *txCtx) clock(i int) error {
	arg, err := tx.arg(i)
	if err != nil {
		return err
	}
	if arg.Kind != ledger.ArgumentShared || arg.Shared.ID != ledger.ClockObjectID || arg.Shared.Mutable {
		return abortf("%s: argument %d is not the clock", tx.call.Function, i)
	}
	return nil
}

func (tx *txCtx) object(id ledger.ObjectID) (*ledger.Object, error) {
	if obj, ok := tx.staged[id]; ok {
		if obj == nil {
			return nil, abortf("object %s was deleted", id)
		}
		return copyObject(obj), nil
	}
	obj, ok := tx.objects[id]
	if !ok {
		return nil, abortf("object %s not found", id)
	}
	return copyObject(obj), nil
}

func (tx *txCtx) trail(mutable bool) (*ledger.Object, *audittrail.Trail, error) {
	arg, err := tx.arg(0)
	if err != nil {
		return nil, nil, err
	}
	if arg.Kind != ledger.ArgumentShared {
		return nil, nil, abortf("trail must be passed as a shared object")
	}
	if mutable && !arg.Shared.Mutable {
		return nil, nil, abortf("trail %s must be passed mutably", arg.Shared.ID)
	}
	obj, err := tx.object(arg.Shared.ID)
	if err != nil {
		return nil, nil, err
	}
	if !obj.Type.SameStruct(trailType) || obj.Owner.InitialSharedVersion != arg.Shared.InitialSharedVersion {
		return nil, nil, abortf("object %s is not a trail", arg.Shared.ID)
	}
	if len(tx.call.TypeArgs) != 1 || !tx.call.TypeArgs[0].Equal(dataType) {
		return nil, nil, abortf("%s expects type argument %s", tx.call.Function, dataType)
	}
	var trail audittrail.Trail
	if err = callarg.Decode(obj.Contents, &trail); err != nil {
		return nil, nil, err
	}
	return obj, &trail, nil
}

func (tx *txCtx) capability(trail *audittrail.Trail) (*ledger.Object, *audittrail.Capability, error) {
	arg, err := tx.arg(1)
	if err != nil {
		return nil, nil, err
	}
	if arg.Kind != ledger.ArgumentObject {
		return nil, nil, abortf("capability must be passed as an owned object")
	}
	obj, err := tx.object(arg.Object.ID)
	if err != nil {
		return nil, nil, err
	}
	if obj.Owner.Kind != ledger.OwnerAddress || obj.Owner.Address != tx.sender {
		return nil, nil, abortf("capability %s is not owned by %s", arg.Object.ID, tx.sender)
	}
	if obj.Ref.Version != arg.Object.Version {
		return nil, nil, abortf("capability %s version %d is stale", arg.Object.ID, arg.Object.Version)
	}
	if !obj.Type.SameStruct(capType) {
		return nil, nil, abortf("object %s is not a capability", arg.Object.ID)
	}
	var c audittrail.Capability
	if err = callarg.Decode(obj.Contents, &c); err != nil {
		return nil, nil, err
	}
	if c.TrailID != trail.ID {
		return nil, nil, abortf("capability %s targets %s, not %s", c.ID, c.TrailID, trail.ID)
	}
	return obj, &c, nil
}

func (tx *txCtx) authorize(trail *audittrail.Trail, perm audittrail.Permission) (*audittrail.Capability, error) {
	_, c, err := tx.capability(trail)
	if err != nil {
		return nil, err
	}
	if trail.Roles.IsRevoked(c.ID) {
		return nil, abortf("capability %s is revoked", c.ID)
	}
	if !c.ValidAt(tx.now) {
		return nil, abortf("capability %s is not valid at %d", c.ID, tx.now)
	}
	if c.IssuedTo != nil && *c.IssuedTo != tx.sender {
		return nil, abortf("capability %s is issued to %s", c.ID, *c.IssuedTo)
	}
	perms, ok := trail.Roles.Role(c.Role)
	if !ok {
		return nil, abortf("role %q not found", c.Role)
	}
	if !audittrail.HasPermission(perms, perm) {
		return nil, abortf("role %q lacks permission %s", c.Role, perm)
	}
	return c, nil
}

func (tx *txCtx) issue(trailID ledger.ObjectID, role string, holder ledger.Address, issuedTo *ledger.Address, from, until *uint64) (*audittrail.Capability, error) {
	c := &audittrail.Capability{
		ID:         tx.newID(),
		TrailID:    trailID,
		Role:       role,
		IssuedTo:   issuedTo,
		ValidFrom:  from,
		ValidUntil: until,
	}
	obj := &ledger.Object{Ref: ledger.ObjectRef{ID: c.ID}, Owner: ledger.AddressOwner(holder), Type: capType}
	return c, tx.put(obj, c, true)
}

func (tx *txCtx) put(obj *ledger.Object, contents any, created bool) error {
	data, err := callarg.Encode(contents)
	if err != nil {
		return err
	}
	obj.Contents = data
	obj.Ref.Version = tx.txs
	obj.Ref.Digest = tx.res.Digest
	tx.staged[obj.Ref.ID] = obj
	if created {
		tx.created = append(tx.created, obj.Ref.ID)
	}
	return nil
}

func (tx *txCtx) remove(obj *ledger.Object) {
	tx.staged[obj.Ref.ID] = nil
	tx.deleted = append(tx.deleted, obj.Ref)
}

func (tx *txCtx) emit(name string, ev any) error {
	data, err := callarg.Encode(ev)
	if err != nil {
		return err
	}
	tx.res.Events = append(tx.res.Events, ledger.Event{
		Type:     ledger.StructTag(PackageID.Address(), audittrail.ModuleTrail, name),
		Sender:   tx.sender,
		Contents: data,
	})
	return nil
}

func (tx *txCtx) fieldID(parent ledger.ObjectID, name string) (ledger.ObjectID, bool) {
	for i := len(tx.fieldOps) - 1; i >= 0; i-- {
		op := tx.fieldOps[i]
		if op.parent == parent && op.name == name {
			return op.id, !op.remove
		}
	}
	id, ok := tx.fields[parent][name]
	return id, ok
}

func seqName(seq uint64) string {
	data, _ := callarg.Encode(seq)
	return string(data)
}

type recordField = linkedtable.Field[audittrail.Record]

func (tx *txCtx) recordField(table ledger.ObjectID, seq uint64) (*ledger.Object, *recordField, error) {
	id, ok := tx.fieldID(table, seqName(seq))
	if !ok {
		return nil, nil, abortf("record %d not found", seq)
	}
	obj, err := tx.object(id)
	if err != nil {
		return nil, nil, err
	}
	var field recordField
	if err = callarg.Decode(obj.Contents, &field); err != nil {
		return nil, nil, err
	}
	return obj, &field, nil
}

func (tx *txCtx) updateRecord(table ledger.ObjectID, seq uint64, update func(f *recordField)) error {
	obj, field, err := tx.recordField(table, seq)
	if err != nil {
		return err
	}
	update(field)
	return tx.put(obj, field, false)
}

func (tx *txCtx) appendRecord(trail *audittrail.Trail, data audittrail.Data, note *string, replaces []uint64) error {
	seq := trail.SequenceNumber
	table := &trail.Records
	field := &recordField{
		ID:   tx.newID(),
		Name: seq,
		Value: linkedtable.Node[audittrail.Record]{
			Prev: table.Tail,
			Value: audittrail.Record{
				Data:       data,
				Metadata:   note,
				Sequence:   seq,
				AddedBy:    tx.sender,
				AddedAt:    tx.now,
				Correction: audittrail.RecordCorrection{Replaces: replaces},
			},
		},
	}
	if table.Tail != nil {
		next := seq
		if err := tx.updateRecord(table.ID, *table.Tail, func(f *recordField) { f.Value.Next = &next }); err != nil {
			return err
		}
	} else {
		head := seq
		table.Head = &head
	}
	tail := seq
	table.Tail = &tail
	table.Size++
	trail.SequenceNumber++

	obj := &ledger.Object{
		Ref:   ledger.ObjectRef{ID: field.ID},
		Owner: ledger.Owner{Kind: ledger.OwnerObject, Address: table.ID.Address()},
		Type:  fieldType,
	}
	tx.fieldOps = append(tx.fieldOps, fieldOp{parent: table.ID, name: seqName(seq), id: field.ID})
	return tx.put(obj, field, true)
}

func (tx *txCtx) unlinkRecord(trail *audittrail.Trail, seq uint64) error {
	table := &trail.Records
	obj, field, err := tx.recordField(table.ID, seq)
	if err != nil {
		return err
	}
	prev, next := field.Value.Prev, field.Value.Next
	if prev != nil {
		if err = tx.updateRecord(table.ID, *prev, func(f *recordField) { f.Value.Next = next }); err != nil {
			return err
		}
	} else {
		table.Head = next
	}
	if next != nil {
		if err = tx.updateRecord(table.ID, *next, func(f *recordField) { f.Value.Prev = prev }); err != nil {
			return err
		}
	} else {
		table.Tail = prev
	}
	table.Size--
	tx.fieldOps = append(tx.fieldOps, fieldOp{parent: table.ID, name: seqName(seq), id: obj.Ref.ID, remove: true})
	tx.remove(obj)
	return nil
}

func (tx *txCtx) isLocked(trail *audittrail.Trail, seq uint64) (bool, error) {
	_, field, err := tx.recordField(trail.Records.ID, seq)
	if err != nil {
		return false, err
	}
	locking := trail.Locking
	if locking.DeleteWindowSecs != nil && tx.now-field.Value.Value.AddedAt < *locking.DeleteWindowSecs*1000 {
		return true, nil
	}
	if locking.DeleteWindowCount != nil {
		cursor := trail.Records.Tail
		for i := uint64(0); i < *locking.DeleteWindowCount && cursor != nil; i++ {
			if *cursor == seq {
				return true, nil
			}
			_, f, err := tx.recordField(trail.Records.ID, *cursor)
			if err != nil {
				return false, err
			}
			cursor = f.Value.Prev
		}
	}
	return false, nil
}

func (tx *txCtx) commit() {
	var mutated []ledger.ObjectID
	created := make(map[ledger.ObjectID]bool, len(tx.created))
	for _, id := range tx.created {
		created[id] = true
	}
	for id, obj := range tx.staged {
		if obj == nil {
			delete(tx.objects, id)
			continue
		}
		tx.objects[id] = obj
		if !created[id] {
			mutated = append(mutated, id)
		}
	}
	for _, op := range tx.fieldOps {
		if op.remove {
			delete(tx.fields[op.parent], op.name)
			continue
		}
		if tx.fields[op.parent] == nil {
			tx.fields[op.parent] = make(map[string]ledger.ObjectID)
		}
		tx.fields[op.parent][op.name] = op.id
	}
	sort.Slice(mutated, func(i, j int) bool {
		return bytes.Compare(mutated[i][:], mutated[j][:]) < 0
	})
	effects := &tx.res.Effects
	for _, id := range tx.created {
		if obj := tx.objects[id]; obj != nil {
			effects.Created = append(effects.Created, ledger.OwnedObjectRef{Ref: obj.Ref, Owner: obj.Owner})
		}
	}
	for _, id := range mutated {
		obj := tx.objects[id]
		effects.Mutated = append(effects.Mutated, ledger.OwnedObjectRef{Ref: obj.Ref, Owner: obj.Owner})
	}
	effects.Deleted = tx.deleted
}
