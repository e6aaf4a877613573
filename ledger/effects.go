package ledger

type ExecutionStatus struct {
	Success bool
	Error   string
}

// Effects describe the state changes produced by one executed call.
type Effects struct {
	Status  ExecutionStatus
	Created []OwnedObjectRef
	Mutated []OwnedObjectRef
	Deleted []ObjectRef
}

// Event is a program-emitted notification; Contents is its canonical encoding.
type Event struct {
	Type     TypeTag
	Sender   Address
	Contents []byte
}

type ExecutionResult struct {
	Digest  Digest
	Effects Effects
	Events  []Event
}

// SimulationResult is the outcome of a non-committing execution.
type SimulationResult struct {
	Status       ExecutionStatus
	ReturnValues [][]byte
}
