// Copyright 2025 ncquota Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package ncquota

import (
	"fmt"
	"regexp"

	"github.com/dustin/go-humanize"
)

const (
	// Sentinel quota values understood by the platform admin tool.
	QuotaDefault   = "default"
	QuotaUnlimited = "unlimited"
)

// Exit codes for quota argument validation failures.
const (
	ExitMissingQuota  = 1
	ExitInvalidFormat = 2
	ExitMissingUnit   = 3
)

// Only the trailing digit+unit pair is checked. Multi-digit sizes like
// 100GB pass because the last three characters are inspected, nothing
// more. Tightening this would change the accepted input space.
var unitSuffix = regexp.MustCompile(`[0-9](GB|MB)$`)

// ValidationError is a fatal quota argument error. Code is the process
// exit code the CLI must terminate with.
type ValidationError struct {
	Code    int
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// QuotaSpec is a validated quota value: one of the two sentinels or a
// sized value ending in MB/GB. Constructed only by ParseQuota and passed
// by value, so a partially valid spec never reaches the applier.
type QuotaSpec struct {
	// Literal is the exact string handed to the admin tool.
	Literal string

	// Bytes is a best-effort byte magnitude of a sized quota, used for
	// display only. Zero for sentinels and unparseable prefixes.
	Bytes uint64
}

// ParseQuota validates a raw quota argument. Failure modes, in order:
// missing argument, bad leading character, bad unit suffix. Each is
// terminal and carries its own exit code.
func ParseQuota(raw string) (QuotaSpec, error) {
	if raw == "" {
		return QuotaSpec{}, &ValidationError{
			Code: ExitMissingQuota,
			Message: fmt.Sprintf("No quota given. Examples: 10GB, %s, %s",
				QuotaDefault, QuotaUnlimited),
		}
	}

	sentinel := raw == QuotaDefault || raw == QuotaUnlimited

	if !sentinel && (raw[0] < '0' || raw[0] > '9') {
		return QuotaSpec{}, &ValidationError{
			Code:    ExitInvalidFormat,
			Message: fmt.Sprintf("Invalid quota %q: must start with a digit or be %s/%s", raw, QuotaDefault, QuotaUnlimited),
		}
	}

	if !sentinel && !unitSuffix.MatchString(raw) {
		return QuotaSpec{}, &ValidationError{
			Code:    ExitMissingUnit,
			Message: fmt.Sprintf("Invalid quota %q: must end in MB or GB", raw),
		}
	}

	spec := QuotaSpec{Literal: raw}
	if !sentinel {
		if b, err := humanize.ParseBytes(raw); err == nil {
			spec.Bytes = b
		}
	}

	return spec, nil
}

// IsZero reports whether the quota is the literal zero size, which
// blocks all new uploads and warrants extra confirmation.
func (q QuotaSpec) IsZero() bool {
	return q.Literal == "0GB" || q.Literal == "0MB"
}

func (q QuotaSpec) String() string {
	return q.Literal
}
