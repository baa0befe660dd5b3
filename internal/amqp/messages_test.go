package amqp

import (
	"testing"
)

func TestLedgerEventMessageRoundTrip(t *testing.T) {
	msg := NewLedgerEventMessage(42, 7, ActionUpdated)

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	decoded, err := LedgerEventMessageFromJSON(body)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if decoded.TransactionID != 42 || decoded.UserID != 7 || decoded.Action != ActionUpdated {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Timestamp.IsZero() {
		t.Error("timestamp not carried through")
	}
}

func TestLedgerEventMessageFromJSONInvalid(t *testing.T) {
	if _, err := LedgerEventMessageFromJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
