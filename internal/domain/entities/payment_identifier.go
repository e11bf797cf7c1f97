package entities

// PaymentKind tells which ledger a payment identifier settles.
type PaymentKind string

const (
	PaymentKindTax     PaymentKind = "tax"
	PaymentKindService PaymentKind = "service"
)

// PaymentTarget is the result of classifying a payment identifier.
//
// For tax payments DebtorID and TaxType are set; for service payments only
// AccountNumber is set and equals the identifier verbatim.
type PaymentTarget struct {
	Kind          PaymentKind
	DebtorID      string
	TaxType       TaxType
	AccountNumber string
}

// ClassifyPaymentID decides whether id encodes a tax debt payment
// (<digits debtor id><tax type 1..5>) or a service account payment.
//
// The rule is purely lexical: an all-digit identifier ending in 1..5 is always
// tax, even when a service account number happens to look like that.
func ClassifyPaymentID(id string) PaymentTarget {
	if len(id) >= 2 {
		prefix, last := id[:len(id)-1], id[len(id)-1]
		if last >= '1' && last <= '5' && isDigits(prefix) {
			return PaymentTarget{Kind: PaymentKindTax, DebtorID: prefix, TaxType: TaxType(last - '0')}
		}
	}
	return PaymentTarget{Kind: PaymentKindService, AccountNumber: id}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
