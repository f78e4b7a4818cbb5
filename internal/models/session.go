package models

import "github.com/golang-jwt/jwt/v5"

// Session is the view-model carried by the client cookie. It drives both
// rendering and the logged-in gate; the server keeps no copy of it.
type Session struct {
	Name     string `json:"name"`
	Message  string `json:"msg"`
	LoggedIn bool   `json:"loggedIn"`
}

type SessionClaims struct {
	Name     string `json:"name"`
	Message  string `json:"msg"`
	LoggedIn bool   `json:"loggedIn"`
	jwt.RegisteredClaims
}

// DefaultSession is what every request without a usable cookie resolves to.
func DefaultSession() Session {
	return Session{
		Name:     "Guest",
		Message:  "Welcome! Please set your name.",
		LoggedIn: false,
	}
}
