package types

import "time"

// TxContext carries the execution-environment facts a contract operation
// observes: who called it, what funds were attached and the block time the
// platform stamped on the transaction.
type TxContext struct {
	Sender    Address
	Funds     []Coin
	BlockTime time.Time
}
