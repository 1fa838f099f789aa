// Copyright 2025 ncquota Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ncadmin/ncquota"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type SetQuotaCmd struct {
	Quota  string
	DryRun bool
}

// Run validates the quota argument, gates on interactive confirmation
// and hands the validated spec to the batch applier. Validation
// failures terminate with their own exit codes; a declined prompt is a
// clean exit, not an error.
func (s *SetQuotaCmd) Run() error {
	spec, err := ncquota.ParseQuota(s.Quota)
	if err != nil {
		var verr *ncquota.ValidationError
		if errors.As(err, &verr) {
			fmt.Println(verr.Message)
			// Message already printed; the empty exit error only
			// carries the code.
			return cli.NewExitError("", verr.Code)
		}

		return err
	}

	confirm := ncquota.NewConfirmer(os.Stdin, os.Stdout)
	if !confirm.ConfirmApply(spec) {
		fmt.Println("Aborted. No quotas were changed.")
		return nil
	}

	client := ncquota.NewOccClientFromConfig()
	applier := &ncquota.Applier{
		Directory: client,
		Quotas:    client,
		DryRun:    s.DryRun,
		Out:       os.Stdout,
	}

	if err := applier.Run(spec); err != nil {
		logrus.Fatal("Failed to list users: ", err)
	}

	return nil
}
