// Copyright 2025 ncquota Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

// batch-apply a storage quota to every user account
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func init() {
	viper.SetConfigName("ncquota")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("/etc/ncquota/")

	viper.SetDefault("occ", "/var/www/nextcloud/occ")
	viper.SetDefault("php", "php")
	viper.SetDefault("web_user", "www-data")
}

func main() {
	app := cli.NewApp()
	app.Name = "ncsetquota"
	app.Usage = "sets the storage quota for ALL user accounts. Accepts a size (10GB), default or unlimited."
	app.ArgsUsage = "<quota> [-d]"
	app.Version = "0.1.0"
	app.HideVersion = true
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "conf,c", Usage: "Path to conf file"},
		&cli.BoolFlag{Name: "debug", Usage: "Print debug messages"},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}

		conf := c.GlobalString("conf")
		if len(conf) > 0 {
			viper.SetConfigFile(conf)
		}

		viper.ReadInConfig()

		return nil
	}
	app.Action = func(c *cli.Context) error {
		cmd := &SetQuotaCmd{
			Quota: c.Args().Get(0),
			// Dry-run is the exact string -d in the second positional
			// slot; anything else there means a real run.
			DryRun: c.Args().Get(1) == "-d",
		}

		return cmd.Run()
	}

	app.RunAndExitOnError()
}
