package lambda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/capitan"
	capitantesting "github.com/zoobzio/capitan/testing"

	"github.com/hasbyte1/go-lambda/lambda"
)

// eventsFor returns the captured events whose key field equals want.
func eventsFor(events []capitantesting.CapturedEvent, key capitan.StringKey, want string) []capitantesting.CapturedEvent {
	var out []capitantesting.CapturedEvent
	for _, e := range events {
		if key.ExtractFromFields(e.Fields) == want {
			out = append(out, e)
		}
	}
	return out
}

func TestSignals_BulkComplete(t *testing.T) {
	capture := capitantesting.NewEventCapture()
	listener := capitan.Hook(lambda.SignalBulkComplete, capture.Handler())

	mario, luca, _ := family()
	_, err := lambda.ForEach([]*Person{mario, luca}).Do("SetBestFriend", nil)
	require.NoError(t, err)
	_, err = lambda.ForEach([]*Person{luca, nil, mario}).Do("SetBestFriend", nil)
	require.ErrorIs(t, err, lambda.ErrNullPath)

	listener.Close()

	events := eventsFor(capture.Events(), lambda.KeyMember, "*lambda_test.Person.SetBestFriend/1")
	require.Len(t, events, 2)

	ok := events[0]
	assert.Equal(t, lambda.SignalBulkComplete, ok.Signal)
	assert.Equal(t, capitan.SeverityInfo, ok.Severity)
	assert.Equal(t, 2, lambda.KeyCount.ExtractFromFields(ok.Fields))
	assert.Equal(t, "*lambda_test.Person", lambda.KeyTypeName.ExtractFromFields(ok.Fields))
	assert.NoError(t, lambda.KeyError.ExtractFromFields(ok.Fields))

	failed := events[1]
	assert.Equal(t, capitan.SeverityError, failed.Severity)
	assert.Equal(t, 1, lambda.KeyCount.ExtractFromFields(failed.Fields))
	assert.ErrorIs(t, lambda.KeyError.ExtractFromFields(failed.Fields), lambda.ErrNullPath)
}

func TestSignals_ChainFrozen(t *testing.T) {
	capture := capitantesting.NewEventCapture()
	listener := capitan.Hook(lambda.SignalChainFrozen, capture.Handler())

	_, err := lambda.Freeze[string](lambda.On[*Person]().Call("BestFriend").Call("LastName"))
	require.NoError(t, err)

	listener.Close()

	events := eventsFor(capture.Events(), lambda.KeyChain, "*lambda_test.Person.BestFriend().LastName()")
	require.Len(t, events, 1)
	assert.Equal(t, 2, lambda.KeySteps.ExtractFromFields(events[0].Fields))
	assert.Equal(t, "*lambda_test.Person", lambda.KeyTypeName.ExtractFromFields(events[0].Fields))
}
