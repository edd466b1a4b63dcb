package types

// MintInstruction is an outbound mint call to the paired collection contract.
type MintInstruction struct {
	Collection Address `json:"collection"`
	TokenID    string  `json:"token_id"`
	Owner      Address `json:"owner"`
	TokenURI   *string `json:"token_uri,omitempty"`
}

// BankSendInstruction is an outbound transfer of funds.
type BankSendInstruction struct {
	To     Address `json:"to"`
	Amount []Coin  `json:"amount"`
}

// Instruction is a tagged union of the outbound messages an execute
// operation can emit. Exactly one field is set.
type Instruction struct {
	Mint     *MintInstruction     `json:"mint,omitempty"`
	BankSend *BankSendInstruction `json:"bank_send,omitempty"`
}
