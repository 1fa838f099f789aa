// Copyright 2025 ncquota Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package ncquota

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Applier sets one quota on every listed account, sequentially and in
// listing order. In dry-run mode the setter is never invoked but the
// printed output is identical to a real run.
type Applier struct {
	Directory UserDirectory
	Quotas    QuotaService
	DryRun    bool
	Out       io.Writer
}

// Run enumerates users and applies spec to each. The only error it
// returns is a listing failure; per-user setter outcomes are not
// surfaced and the confirmation line prints either way.
func (a *Applier) Run(spec QuotaSpec) error {
	runLog := logrus.WithField("run_id", uuid.NewString())

	users, err := a.Directory.ListUsers()
	if err != nil {
		return err
	}

	runLog.WithFields(logrus.Fields{
		"users":   len(users),
		"quota":   spec.Literal,
		"dry_run": a.DryRun,
	}).Debug("Applying quota to all users")

	for _, user := range users {
		if !a.DryRun {
			if err := a.Quotas.SetQuota(user, spec); err != nil {
				runLog.WithFields(logrus.Fields{
					"user":  string(user),
					"error": err,
				}).Debug("Quota-set command failed")
			}
		}

		fmt.Fprintf(a.Out, "Set quota for %s to %s.\n", user, spec.Literal)
	}

	return nil
}
