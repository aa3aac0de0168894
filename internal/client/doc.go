// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the recipe-keeper command-line client.
//
// [App] turns a command line such as
//
//	recipes add -title Soup -time 20 -price 4.50 -tags 1,2
//
// into calls on an [adapter.APIAdapter] and prints the API response as
// indented JSON.
package client
