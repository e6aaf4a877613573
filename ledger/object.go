package ledger

import "fmt"

type OwnerKind uint8

const (
	OwnerAddress OwnerKind = iota
	OwnerObject
	OwnerShared
	OwnerImmutable
)

func (k OwnerKind) String() string {
	switch k {
	case OwnerAddress:
		return "address"
	case OwnerObject:
		return "object"
	case OwnerShared:
		return "shared"
	case OwnerImmutable:
		return "immutable"
	}
	return fmt.Sprintf("owner(%d)", k)
}

type Owner struct {
	Kind OwnerKind
	// Address is the owning account or parent object, set for OwnerAddress and OwnerObject
	Address Address
	// InitialSharedVersion is set for OwnerShared
	InitialSharedVersion uint64
}

func AddressOwner(addr Address) Owner {
	return Owner{Kind: OwnerAddress, Address: addr}
}

func SharedOwner(initialVersion uint64) Owner {
	return Owner{Kind: OwnerShared, InitialSharedVersion: initialVersion}
}

func (o Owner) IsShared() bool {
	return o.Kind == OwnerShared
}

// ObjectRef pins an object to one version.
type ObjectRef struct {
	ID      ObjectID
	Version uint64
	Digest  Digest
}

func (r ObjectRef) String() string {
	return fmt.Sprintf("%s@%d", r.ID, r.Version)
}

// Object is the current state of a ledger object as returned by a Reader.
type Object struct {
	Ref   ObjectRef
	Owner Owner
	Type  TypeTag
	// Contents is the canonical (BCS) encoding of the object's fields
	Contents []byte
}

type OwnedObjectRef struct {
	Ref   ObjectRef
	Owner Owner
}
