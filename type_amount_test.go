package ledgers

import "testing"

func TestAmountWithFee_Add(t *testing.T) {
	testCases := []struct {
		name string
		a, b AmountWithFee
		want AmountWithFee
	}{
		{
			name: "componentwise sum",
			a:    A("1.5", "-0.01"),
			b:    A("0.5", "-0.02"),
			want: A("2", "-0.03"),
		},
		{
			name: "zero value is the identity",
			a:    AmountWithFee{},
			b:    A("42.42", "-1"),
			want: A("42.42", "-1"),
		},
		{
			name: "exact decimals do not drift",
			a:    A("0.1", "0"),
			b:    A("0.2", "0"),
			want: A("0.3", "0"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Add(tc.b)
			if !got.Equal(tc.want) {
				t.Errorf("Add(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestAmountWithFee_Add_DoesNotMutate(t *testing.T) {
	a := A("1", "-0.5")
	b := A("2", "-0.5")
	a.Add(b)
	if !a.Equal(A("1", "-0.5")) {
		t.Errorf("Add mutated its receiver: got %v", a)
	}
}

func TestAmountWithFee_Abs(t *testing.T) {
	testCases := []struct {
		name string
		in   AmountWithFee
		want AmountWithFee
	}{
		{name: "both negative", in: A("-100", "-0.26"), want: A("100", "0.26")},
		{name: "already positive", in: A("100", "0.26"), want: A("100", "0.26")},
		{name: "mixed signs", in: A("-1.5", "0"), want: A("1.5", "0")},
		{name: "zero", in: AmountWithFee{}, want: AmountWithFee{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Abs()
			if !got.Equal(tc.want) {
				t.Errorf("Abs(%v) = %v, want %v", tc.in, got, tc.want)
			}
			// Abs is idempotent.
			if again := got.Abs(); !again.Equal(got) {
				t.Errorf("Abs(Abs(%v)) = %v, want %v", tc.in, again, got)
			}
		})
	}
}

func TestAmountWithFee_String(t *testing.T) {
	got := A("2", "0.01").String()
	want := "2, fees: 0.01"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
