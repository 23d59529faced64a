// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Record is a single decrypted vault entry: a label that identifies the
// credential and the password stored under it. Labels are unique within a
// vault; passwords are opaque strings with no internal meaning.
type Record struct {
	Label    string `json:"label"`
	Password string `json:"password"`
}

func (r Record) String() string {
	return r.Label + ": " + r.Password
}
