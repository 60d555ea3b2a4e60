// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前只有身分驗證：解析 JWT 並把已驗證的使用者身分放進請求上下文，
// 讓後續的處理器把它當作既定事實使用。
package middleware
