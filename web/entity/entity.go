// Package entity defines data structures exchanged by the web layer.
package entity

// User is the public projection of a stored user. The password is never
// part of any response.
type User struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
}
