package domain_test

import (
	"errors"
	"testing"

	"github.com/iho/sekolah/internal/domain"
)

func TestSplitLeadingNISN(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantNISN int64
		wantRest string
		wantErr  bool
	}{
		{
			name:     "plain line",
			line:     "12345 Budi Santoso 500000 1000000",
			wantNISN: 12345,
			wantRest: "Budi Santoso 500000 1000000",
		},
		{
			name:     "surrounding whitespace",
			line:     "  77 A 1 2  ",
			wantNISN: 77,
			wantRest: "A 1 2",
		},
		{
			name:    "non-numeric leading token",
			line:    "abc Budi 1 2",
			wantErr: true,
		},
		{
			name:    "empty line",
			line:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nisn, rest, err := domain.SplitLeadingNISN(tt.line)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrMalformedRecord) {
					t.Fatalf("expected ErrMalformedRecord, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if nisn != tt.wantNISN {
				t.Errorf("expected NISN %d, got %d", tt.wantNISN, nisn)
			}
			if rest != tt.wantRest {
				t.Errorf("expected rest %q, got %q", tt.wantRest, rest)
			}
		})
	}
}

func TestParseTuitionRecord(t *testing.T) {
	tests := []struct {
		name    string
		rest    string
		want    domain.TuitionRecord
		wantErr bool
	}{
		{
			name: "single-word name",
			rest: "Budi 500000 1000000",
			want: domain.TuitionRecord{NISN: 1, Name: "Budi", Paid: 500000, Balance: 1000000},
		},
		{
			name: "name with spaces tokenizes from the right",
			rest: "Budi Agus Santoso 500000 1000000",
			want: domain.TuitionRecord{NISN: 1, Name: "Budi Agus Santoso", Paid: 500000, Balance: 1000000},
		},
		{
			name: "empty name with exactly two tokens",
			rest: "500000 0",
			want: domain.TuitionRecord{NISN: 1, Name: "", Paid: 500000, Balance: 0},
		},
		{
			name: "digit-like name token stays in the name",
			rest: "Blok 3 Budi 500000 1000000",
			want: domain.TuitionRecord{NISN: 1, Name: "Blok 3 Budi", Paid: 500000, Balance: 1000000},
		},
		{
			name:    "single token",
			rest:    "Budi",
			wantErr: true,
		},
		{
			name:    "no tokens",
			rest:    "",
			wantErr: true,
		},
		{
			name:    "non-numeric balance",
			rest:    "Budi 500000 lunas",
			wantErr: true,
		},
		{
			name:    "non-numeric paid amount",
			rest:    "Budi lima 1000000",
			wantErr: true,
		},
		{
			name:    "negative balance",
			rest:    "Budi 500000 -1",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := domain.ParseTuitionRecord(1, tt.rest)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrMalformedRecord) {
					t.Fatalf("expected ErrMalformedRecord, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *record != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, *record)
			}
		})
	}
}

func TestLedgerLineRoundTrip(t *testing.T) {
	record := &domain.TuitionRecord{NISN: 9001, Name: "Siti Rahma", Paid: 7000000, Balance: 8000000}

	line := record.LedgerLine()
	if line != "9001 Siti Rahma 7000000 8000000" {
		t.Fatalf("unexpected ledger line %q", line)
	}

	nisn, rest, err := domain.SplitLeadingNISN(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parsed, err := domain.ParseTuitionRecord(nisn, rest)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *parsed != *record {
		t.Errorf("round trip changed record: %+v != %+v", *parsed, *record)
	}
}

func TestApplyPayment(t *testing.T) {
	tests := []struct {
		name        string
		due         int64
		tendered    int64
		wantBalance int64
		wantChange  int64
	}{
		{name: "underpayment", due: 1000000, tendered: 400000, wantBalance: 600000, wantChange: 0},
		{name: "exact payment", due: 600000, tendered: 600000, wantBalance: 0, wantChange: 0},
		{name: "overpayment clamps and returns change", due: 500000, tendered: 700000, wantBalance: 0, wantChange: 200000},
		{name: "zero tendered", due: 500000, tendered: 0, wantBalance: 500000, wantChange: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, change := domain.ApplyPayment(tt.due, tt.tendered)
			if balance != tt.wantBalance {
				t.Errorf("expected balance %d, got %d", tt.wantBalance, balance)
			}
			if change != tt.wantChange {
				t.Errorf("expected change %d, got %d", tt.wantChange, change)
			}
		})
	}
}
