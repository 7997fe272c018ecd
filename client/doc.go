// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the entry point of the items client library.
//
// It wires the credential token store, the HTTP transport and the client
// services into a single [Client] value whose methods map one-to-one onto
// the backend's capabilities, plus SignIn/SignOut for the token lifecycle.
//
//	c, err := client.NewFromEnv(ctx)
//	if err != nil { ... }
//	defer c.Close()
//
//	if _, err = c.SignIn(ctx, models.Credentials{Username: "alice", Password: "secret"}); err != nil { ... }
//	items, err := c.ListItems(ctx)
package client
