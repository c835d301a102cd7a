package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// TuitionRecord is one line in the tuition ledger: a single payment
// transaction and the balance left after it. The ledger keeps every
// transaction for a NISN; the latest line is the student's current state.
type TuitionRecord struct {
	NISN    int64
	Name    string
	Paid    int64 // amount tendered in this transaction
	Balance int64 // outstanding balance after this transaction
}

// LedgerLine renders the record in the ledger's historical line format:
// NISN, name, amount paid, balance, separated by single spaces.
func (r *TuitionRecord) LedgerLine() string {
	return fmt.Sprintf("%d %s %d %d", r.NISN, r.Name, r.Paid, r.Balance)
}

// SplitLeadingNISN splits a raw ledger line into its leading NISN and the
// rest of the line. A line whose first token is not an integer is malformed.
// The rest is returned unparsed so callers can skip lines for other
// students without paying for full record parsing.
func SplitLeadingNISN(line string) (int64, string, error) {
	head, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	nisn, err := strconv.ParseInt(head, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: leading token %q is not a NISN", ErrMalformedRecord, head)
	}
	return nisn, rest, nil
}

// ParseTuitionRecord parses everything after the leading NISN of a ledger
// line. The name may contain spaces, so tokenization works from the right:
// the last token is the balance, the second-to-last is the amount paid, and
// whatever is left in front is the name. Fewer than two tokens, or a
// trailing token that is not a non-negative integer, makes the line
// malformed; callers must skip it and keep scanning.
func ParseTuitionRecord(nisn int64, rest string) (*TuitionRecord, error) {
	tokens := strings.Fields(rest)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: %d trailing tokens, need at least 2", ErrMalformedRecord, len(tokens))
	}

	balance, err := parseLedgerAmount(tokens[len(tokens)-1])
	if err != nil {
		return nil, fmt.Errorf("%w: balance token: %v", ErrMalformedRecord, err)
	}
	paid, err := parseLedgerAmount(tokens[len(tokens)-2])
	if err != nil {
		return nil, fmt.Errorf("%w: paid token: %v", ErrMalformedRecord, err)
	}

	return &TuitionRecord{
		NISN:    nisn,
		Name:    strings.Join(tokens[:len(tokens)-2], " "),
		Paid:    paid,
		Balance: balance,
	}, nil
}

func parseLedgerAmount(token string) (int64, error) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative amount %d", n)
	}
	return n, nil
}

// PaymentOutcome describes one applied tuition payment.
type PaymentOutcome struct {
	NISN     int64
	Name     string
	Due      int64
	Tendered int64
	Balance  int64
	Change   int64
}

// ApplyPayment computes the balance left and the change owed after
// tendered is paid against due. Overpayment clamps the stored balance to
// zero and returns the excess as change.
func ApplyPayment(due, tendered int64) (balance, change int64) {
	balance = due - tendered
	if balance < 0 {
		change = -balance
		balance = 0
	}
	return balance, change
}
