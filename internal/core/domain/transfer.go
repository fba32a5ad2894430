package domain

import "github.com/shopspring/decimal"

// TransferMutation is the compare-and-apply unit handed to the wallet store:
// debit DebitAmount from Source if its balance covers it, and credit CreditAmount
// to Destination, creating it when absent. Both sides apply or neither does.
type TransferMutation struct {
	Source       WalletKey
	Destination  WalletKey
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
}

// TransferOutcome holds the post-transfer state of both wallets.
// When Source and Destination are the same wallet both fields hold the same state.
type TransferOutcome struct {
	FromWallet Wallet
	ToWallet   Wallet
}

// TransferResult is what the transfer engine reports back to callers.
type TransferResult struct {
	ReceivedAmount decimal.Decimal
	Rate           decimal.Decimal
	FromWallet     Wallet
	ToWallet       Wallet
}
