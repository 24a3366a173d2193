package ledger

import (
	"testing"

	"assistec/internal/testutil"
)

func TestParseAmount(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tests := []struct {
			input string
			want  int64
		}{
			{"150.50", 15050},
			{"150,50", 15050},
			{"1", 100},
			{"0.01", 1},
			{"0,5", 50},
			{".5", 50},
			{"  12.34  ", 1234},
			{"10.999", 1100},  // third decimal rounds up
			{"10.994", 1099},  // third decimal rounds down
			{"10.995", 1100},  // half rounds up
			{"1234567", 123456700},
		}
		for _, tt := range tests {
			got, err := ParseAmount(tt.input)
			testutil.AssertNoError(t, err)
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		inputs := []string{
			"",
			"   ",
			"0",
			"0.00",
			"0,00",
			"-5",
			"+5",
			"abc",
			"12a",
			"1.2.3",
			"1,2,3",
			"92233720368547758.08", // overflows int64 cents
		}
		for _, input := range inputs {
			_, err := ParseAmount(input)
			testutil.AssertAppError(t, err, "INVALID_AMOUNT")
		}
	})
}
