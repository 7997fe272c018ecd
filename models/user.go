// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the username/password pair used for registration and login.
//
// Registration sends it as a JSON body. Login submits the same fields
// form-urlencoded, because the backend's token endpoint implements an
// OAuth2 password grant and does not accept JSON.
type Credentials struct {
	// Username is the unique account name.
	Username string `json:"username"`

	// Password is sent in plaintext over the transport; hashing is done by
	// the backend.
	Password string `json:"password"`
}

// FormData returns the credentials as the form fields of a password grant.
func (c Credentials) FormData() map[string]string {
	return map[string]string{
		"username": c.Username,
		"password": c.Password,
	}
}
