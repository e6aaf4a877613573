// Package ledgererr holds the error kinds surfaced by the ledger client.
// Every kind is registered with a numeric code so errors relayed from the
// external RPC client can be mapped back onto the same sentinels.
package ledgererr

import (
	"errors"
	"fmt"

	"storj.io/drpc/drpcerr"
)

const codeOffset uint64 = 700

var (
	errsMap = make(map[uint64]error)
)

var (
	ErrInvalidArgument    = register(errors.New("invalid argument"), 1)
	ErrInvalidConfig      = register(errors.New("invalid config"), 2)
	ErrRPC                = register(errors.New("rpc error"), 3)
	ErrUnexpectedResponse = register(errors.New("unexpected api response"), 4)
	ErrDeserialization    = register(errors.New("deserialization error"), 5)
	ErrNotImplemented     = register(errors.New("not implemented"), 6)
	ErrExecution          = register(errors.New("execution failed"), 7)
)

func register(err error, code uint64) error {
	code += codeOffset
	if e, ok := errsMap[code]; ok {
		panic(fmt.Errorf("attempt to register error with existing code: %d; registered error: %v", code, e))
	}
	errWithCode := drpcerr.WithCode(err, code)
	errsMap[code] = errWithCode
	return errWithCode
}

// Code returns the registered code of the kind err belongs to or the raw
// drpc code when err carries an unknown one.
func Code(err error) uint64 {
	if err == nil {
		return 0
	}
	for code, kind := range errsMap {
		if errors.Is(err, kind) {
			return code
		}
	}
	return drpcerr.Code(err)
}

// Relay attaches an error coming from the external client to one of the
// registered kinds. Errors without a known code become ErrRPC.
func Relay(err error) error {
	if err == nil {
		return nil
	}
	for _, kind := range errsMap {
		if errors.Is(err, kind) {
			return err
		}
	}
	if kind, ok := errsMap[drpcerr.Code(err)]; ok {
		return fmt.Errorf("%w: %w", kind, err)
	}
	return fmt.Errorf("%w: %w", ErrRPC, err)
}
