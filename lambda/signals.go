package lambda

import (
	"context"
	"reflect"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for chain and bulk-apply events.
var (
	SignalChainFrozen  = capitan.NewSignal("lambda.chain.frozen", "Recorded chain frozen into an extractor")
	SignalBulkStart    = capitan.NewSignal("lambda.bulk.start", "Bulk apply beginning")
	SignalBulkComplete = capitan.NewSignal("lambda.bulk.complete", "Bulk apply finished")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyChain    = capitan.NewStringKey("chain")
	KeyMember   = capitan.NewStringKey("member")
	KeySteps    = capitan.NewIntKey("steps")
	KeyCount    = capitan.NewIntKey("count")
	KeyDuration = capitan.NewDurationKey("duration")
	KeyError    = capitan.NewErrorKey("error")
)

// emitChainFrozen emits an event when a chain becomes an extractor.
func emitChainFrozen(c *Chain) {
	capitan.Emit(context.Background(), SignalChainFrozen,
		KeyTypeName.Field(c.root.String()),
		KeyChain.Field(c.String()),
		KeySteps.Field(len(c.steps)),
	)
}

// emitBulkStart emits an event when bulk apply begins.
func emitBulkStart(t reflect.Type, member string, count int) {
	capitan.Emit(context.Background(), SignalBulkStart,
		KeyTypeName.Field(t.String()),
		KeyMember.Field(member),
		KeyCount.Field(count),
	)
}

// emitBulkComplete emits an event when bulk apply finishes. count is the
// number of elements the call completed on.
func emitBulkComplete(t reflect.Type, member string, count int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(t.String()),
		KeyMember.Field(member),
		KeyCount.Field(count),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(context.Background(), SignalBulkComplete, fields...)
	} else {
		capitan.Emit(context.Background(), SignalBulkComplete, fields...)
	}
}
