package nlp

import (
	"reflect"
	"testing"
)

func TestExtractMultipleTargets(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    []NamedTarget
	}{
		{
			name:    "two named targets with salary",
			message: "saya mau beli ipad 7jt dan macbook m3 pro 20jt, gaji saya 5jt perbulan",
			want: []NamedTarget{
				{Name: "ipad", Amount: 7_000_000},
				{Name: "macbook m3 pro", Amount: 20_000_000},
			},
		},
		{
			name:    "single target after price keyword",
			message: "beli laptop harga 15jt",
			want:    []NamedTarget{{Name: "laptop", Amount: 15_000_000}},
		},
		{
			name:    "comma separated list",
			message: "mau beli sepatu 800rb, tas 300rb sama jaket 450rb",
			want: []NamedTarget{
				{Name: "sepatu", Amount: 800_000},
				{Name: "tas", Amount: 300_000},
				{Name: "jaket", Amount: 450_000},
			},
		},
		{
			name:    "two purchases joined by dan",
			message: "ipad 7jt dan macbook 20jt",
			want: []NamedTarget{
				{Name: "ipad", Amount: 7_000_000},
				{Name: "macbook", Amount: 20_000_000},
			},
		},
		{
			name:    "two purchases joined by sama",
			message: "pengen ipad 7jt sama macbook 20jt",
			want: []NamedTarget{
				{Name: "ipad", Amount: 7_000_000},
				{Name: "macbook", Amount: 20_000_000},
			},
		},
		{
			name:    "two bare amounts keep the positional roles",
			message: "15jt 2jt",
			want:    []NamedTarget{{Name: "target 1", Amount: 15_000_000}},
		},
		{
			name:    "current balance is not a purchase",
			message: "mau beli hp 3jt, saldo aku 2jt, gaji 5jt",
			want:    []NamedTarget{{Name: "hp", Amount: 3_000_000}},
		},
		{
			name:    "unnamed amount",
			message: "15jt",
			want:    []NamedTarget{{Name: "target 1", Amount: 15_000_000}},
		},
		{
			name:    "only recurring amounts",
			message: "uang jajan 2jt sebulan",
			want:    []NamedTarget{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMultipleTargets(tt.message)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractMultipleTargets(%q) = %+v, want %+v", tt.message, got, tt.want)
			}
		})
	}
}

func TestCalculateTotalTarget(t *testing.T) {
	targets := ExtractMultipleTargets("saya mau beli ipad 7jt dan macbook m3 pro 20jt, gaji saya 5jt perbulan")
	if got := CalculateTotalTarget(targets); got != 27_000_000 {
		t.Errorf("CalculateTotalTarget = %d, want 27000000", got)
	}

	amounts := ExtractAmounts("saya mau beli ipad 7jt dan macbook m3 pro 20jt, gaji saya 5jt perbulan")
	if amounts.Monthly == nil || *amounts.Monthly != 5_000_000 {
		t.Errorf("salary should be classified monthly, got %v", amounts.Monthly)
	}

	if got := CalculateTotalTarget(ExtractMultipleTargets("pengen ipad 7jt sama macbook 20jt")); got != 27_000_000 {
		t.Errorf("CalculateTotalTarget of a two item list = %d, want 27000000", got)
	}

	// The amount classifier still applies the two-number fallback.
	pair := ExtractAmounts("ipad 7jt dan macbook 20jt")
	if pair.Target == nil || *pair.Target != 7_000_000 || !pair.HasDiagnostic(DiagPositional) {
		t.Errorf("expected the positional fallback on ExtractAmounts, got %+v", pair)
	}

	if got := CalculateTotalTarget(nil); got != 0 {
		t.Errorf("CalculateTotalTarget(nil) = %d, want 0", got)
	}
}
