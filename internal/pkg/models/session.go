package models

import "time"

// Session is the process's active authenticated identity. It lives
// exactly as long as the process; there is no expiry or refresh.
type Session struct {
	Account  AccountRecord `json:"account"`
	LoggedIn time.Time     `json:"logged_in"`
}
