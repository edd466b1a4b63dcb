package types

import (
	"fmt"

	"github.com/gaze-network/uint128"
)

// Coin is an amount of a single denomination.
type Coin struct {
	Denom  string          `json:"denom"`
	Amount uint128.Uint128 `json:"amount"`
}

func NewCoin(denom string, amount uint128.Uint128) Coin {
	return Coin{Denom: denom, Amount: amount}
}

func (c Coin) String() string {
	return fmt.Sprintf("%s%s", c.Amount.String(), c.Denom)
}
