// list the user accounts the batch applier would touch
package main

import (
	"fmt"
	"os"

	"github.com/ncadmin/ncquota"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var (
	conf = kingpin.Flag(
		"conf",
		"Path to conf file",
	).Envar("NCQUOTA_CONF").String()

	raw = kingpin.Flag(
		"raw",
		"Dump the undecorated user listing and exit",
	).Default("false").Bool()

	debug = kingpin.Flag("debug", "enable debug mode").Default("false").Bool()
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
	kingpin.HelpFlag.Short('h')
	kingpin.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if *conf != "" {
		viper.SetConfigFile(*conf)
	}
	viper.ReadInConfig()

	client := ncquota.NewOccClientFromConfig()

	if *raw {
		listing, err := client.UserListing()
		if err != nil {
			log.Fatalf("Failed to fetch user listing: %s", err)
		}
		os.Stdout.Write(listing)
		return
	}

	users, err := client.ListUsers()
	if err != nil {
		log.Fatalf("Failed to list users: %s", err)
	}

	for _, user := range users {
		fmt.Println(user)
	}
}
