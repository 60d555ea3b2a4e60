package service

import "errors"

// 聊天子系統的錯誤分類
//
// 驗證錯誤只回報給發送者本人，不會進入儲存；
// 儲存錯誤讓該次發送失敗，絕不廣播；
// 協議錯誤屬於連線層級，會關閉該條連線但不影響其他連線；
// 投遞失敗只記錄日誌，訊息已持久化，接收端重連後經補發取回。
var (
	ErrEmptyContent   = errors.New("訊息內容不可為空")
	ErrUnknownProject = errors.New("專案不存在")
	ErrInvalidKind    = errors.New("不支援的訊息類型")

	ErrStorage = errors.New("訊息儲存失敗")

	ErrNotSubscribed = errors.New("尚未訂閱任何專案")
	ErrBadFrame      = errors.New("無法解析的訊息框")
)
