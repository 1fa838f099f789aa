// Copyright 2025 ncquota Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package ncquota

import (
	"bufio"
	"io"
	"strings"
)

// UserRecord is a bare account identifier extracted from one line of the
// admin tool's user listing.
type UserRecord string

// ExtractUsername strips the decorations the listing tool prepends to
// each line (label, ordinal, separator). Lines look like:
//
//	Users: 1- alice
//
// Split on ":", take the second field, split that on "- ", take the
// second field. A line without that shape yields an empty identifier,
// which is propagated as-is rather than rejected, matching the listing
// tool's own leniency.
func ExtractUsername(line string) UserRecord {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return ""
	}

	fields := strings.Split(parts[1], "- ")
	if len(fields) < 2 {
		return ""
	}

	return UserRecord(strings.TrimSpace(fields[1]))
}

// ParseUserList extracts one UserRecord per line of a raw user listing,
// preserving listing order.
func ParseUserList(r io.Reader) ([]UserRecord, error) {
	users := make([]UserRecord, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		users = append(users, ExtractUsername(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
