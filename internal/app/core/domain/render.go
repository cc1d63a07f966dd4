package domain

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Render 輸出帳戶明細：先輸出共同的帳號、戶名、餘額，再接上各種類專屬的欄位
func Render(w io.Writer, a Account) error {
	if err := renderBase(w, a); err != nil {
		return err
	}

	var err error
	switch a.kind {
	case KindSavings:
		_, err = fmt.Fprintf(w, "   Interest Rate: %s%%\n", a.interestRate.Mul(hundred).StringFixed(2))
	case KindCurrent:
		_, err = fmt.Fprintf(w, "   Overdraft Limit: $%s\n", a.overdraftLimit.StringFixed(2))
	}
	return err
}

func renderBase(w io.Writer, a Account) error {
	_, err := fmt.Fprintf(w,
		"Account Details for Account (ID: %s):\n   Holder: %s\n   Balance: $%s\n",
		a.number, a.holder, a.balance.StringFixed(2),
	)
	return err
}

// String 實作 fmt.Stringer，內容與 Render 相同
func (a Account) String() string {
	var sb strings.Builder
	_ = Render(&sb, a)
	return sb.String()
}
