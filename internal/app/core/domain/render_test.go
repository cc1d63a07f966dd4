package domain

import (
	"bytes"
	"testing"
)

func TestRender(t *testing.T) {
	basic, _ := NewAccount("B1", "Basic Holder", d("12.5"))

	tests := []struct {
		name string
		a    *Account
		want string
	}{
		{
			name: "savings",
			a:    mustSavings(t, "1000"),
			want: "Account Details for Account (ID: S123):\n" +
				"   Holder: John Doe\n" +
				"   Balance: $1000.00\n" +
				"   Interest Rate: 2.00%\n",
		},
		{
			name: "current",
			a:    mustCurrent(t, "-250.5", "500"),
			want: "Account Details for Account (ID: C456):\n" +
				"   Holder: Jane Doe\n" +
				"   Balance: $-250.50\n" +
				"   Overdraft Limit: $500.00\n",
		},
		{
			name: "basic has no variant line",
			a:    basic,
			want: "Account Details for Account (ID: B1):\n" +
				"   Holder: Basic Holder\n" +
				"   Balance: $12.50\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Render(&buf, *tt.a); err != nil {
				t.Fatalf("Render err=%v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Fatalf("Render mismatch\n got: %q\nwant: %q", got, tt.want)
			}
			if got := tt.a.String(); got != tt.want {
				t.Fatalf("String mismatch\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}
