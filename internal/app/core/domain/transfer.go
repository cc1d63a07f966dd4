package domain

// TransferMode 決定轉帳扣款時是否套用來源帳戶的提款規則
type TransferMode uint8

const (
	// TransferUnchecked 無條件從來源扣除固定金額，即使低於儲蓄最低餘額
	TransferUnchecked TransferMode = iota
	// TransferChecked 扣款改走來源帳戶的 Withdraw，被拒絕時雙方皆不變動
	TransferChecked
)

// Transfer 將儲蓄帳戶 src 的固定轉帳金額轉入活期帳戶 dst
//
// dst 以值傳入，回傳的是入帳後的新副本，呼叫端自行決定是否替換原值；
// src 以指標傳入，扣款直接修改 src 本身。
// 轉帳金額一律是 src.TransferAmount()，與 src 的實際餘額無關。
//
// 回傳:
//
//	Account: 入帳後的 dst 副本
//	error: ErrKindMismatch，或 TransferChecked 下來源提款被拒絕的錯誤
func Transfer(dst Account, src *Account, mode TransferMode) (Account, error) {
	if src == nil || dst.kind != KindCurrent || src.kind != KindSavings {
		return dst, ErrKindMismatch
	}

	amount := src.transferAmount
	switch mode {
	case TransferChecked:
		if err := src.Withdraw(amount); err != nil {
			return dst, err
		}
	default:
		src.balance = src.balance.Sub(amount)
	}

	result := dst
	result.balance = result.balance.Add(amount)
	return result, nil
}
