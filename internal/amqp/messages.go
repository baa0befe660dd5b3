package amqp

import (
	"encoding/json"
	"time"
)

type LedgerAction string

const (
	ActionCreated LedgerAction = "created"
	ActionUpdated LedgerAction = "updated"
	ActionDeleted LedgerAction = "deleted"
)

// LedgerEventMessage notifies downstream consumers that a transaction
// changed. It carries only identifiers; consumers fetch current state from
// the database themselves.
type LedgerEventMessage struct {
	TransactionID int64        `json:"transaction_id"`
	UserID        int64        `json:"user_id"`
	Action        LedgerAction `json:"action"`
	Timestamp     time.Time    `json:"timestamp"`
}

func NewLedgerEventMessage(transactionID, userID int64, action LedgerAction) *LedgerEventMessage {
	return &LedgerEventMessage{
		TransactionID: transactionID,
		UserID:        userID,
		Action:        action,
		Timestamp:     time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// LedgerEventMessageFromJSON creates a message from JSON bytes
func LedgerEventMessageFromJSON(data []byte) (*LedgerEventMessage, error) {
	var msg LedgerEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
