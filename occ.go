// Copyright 2025 ncquota Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package ncquota

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/ssh"
)

// UserDirectory enumerates the accounts known to the platform.
type UserDirectory interface {
	ListUsers() ([]UserRecord, error)
}

// QuotaService applies a quota to a single account.
type QuotaService interface {
	SetQuota(user UserRecord, quota QuotaSpec) error
}

// CommandRunner executes one admin-tool command and returns its standard
// output. Implementations carry the impersonated privilege context the
// admin tool requires.
type CommandRunner interface {
	Run(args ...string) ([]byte, error)
}

// LocalRunner executes commands on this host as the web server user.
type LocalRunner struct {
	SudoUser string
}

func (r *LocalRunner) Run(args ...string) ([]byte, error) {
	argv := append([]string{"-u", r.SudoUser}, args...)
	cmd := exec.Command("sudo", argv...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		logrus.Debugf("Command %q failed: %s: %s", strings.Join(args, " "), err, stderr.String())
	}

	return stdout.Bytes(), err
}

// SSHRunner executes commands on a remote host over SSH, for instances
// where the platform does not run on the machine invoking this tool.
type SSHRunner struct {
	Address  string
	User     string
	Password string
	KeyFile  string
	SudoUser string
}

// CommandLine renders the argument vector as the single shell command
// run on the remote side, prefixed with the impersonation wrapper.
func (r *SSHRunner) CommandLine(args ...string) string {
	argv := append([]string{"sudo", "-u", r.SudoUser}, args...)
	return strings.Join(argv, " ")
}

func (r *SSHRunner) Run(args ...string) ([]byte, error) {
	authMethods := make([]ssh.AuthMethod, 0)

	if r.KeyFile != "" {
		sshKey, err := os.ReadFile(r.KeyFile)
		if err != nil {
			return nil, err
		}

		signer, err := ssh.ParsePrivateKey(sshKey)
		if err != nil {
			return nil, err
		}

		authMethods = append(authMethods, ssh.PublicKeys(signer))
	}

	if r.Password != "" {
		authMethods = append(authMethods, ssh.Password(r.Password))
	}

	config := &ssh.ClientConfig{
		User:            r.User,
		Auth:            authMethods,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	conn, err := ssh.Dial("tcp", r.Address+":22", config)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	sess, err := conn.NewSession()
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	sess.Stdout = &stdout
	sess.Stderr = &stderr

	command := r.CommandLine(args...)
	err = sess.Run(command)
	if err != nil {
		logrus.Debugf("Command %q failed: %s: %s", command, err, stderr.String())
		return nil, err
	}

	return stdout.Bytes(), nil
}

// OccClient drives the platform's administrative command-line tool. It
// implements both UserDirectory and QuotaService.
type OccClient struct {
	Runner  CommandRunner
	PHP     string
	OccPath string
}

// NewOccClientFromConfig builds a client from viper config. When
// ssh.address is set the admin tool runs on the remote host, otherwise
// locally. Both paths impersonate the configured web server user.
func NewOccClientFromConfig() *OccClient {
	var runner CommandRunner

	if addr := viper.GetString("ssh.address"); addr != "" {
		runner = &SSHRunner{
			Address:  addr,
			User:     viper.GetString("ssh.user"),
			Password: viper.GetString("ssh.password"),
			KeyFile:  viper.GetString("ssh.key"),
			SudoUser: viper.GetString("web_user"),
		}
	} else {
		runner = &LocalRunner{SudoUser: viper.GetString("web_user")}
	}

	return &OccClient{
		Runner:  runner,
		PHP:     viper.GetString("php"),
		OccPath: viper.GetString("occ"),
	}
}

func (c *OccClient) occ(args ...string) ([]byte, error) {
	argv := append([]string{c.PHP, c.OccPath}, args...)
	return c.Runner.Run(argv...)
}

// UserListing returns the raw, decorated user listing.
func (c *OccClient) UserListing() ([]byte, error) {
	out, err := c.occ("user:list")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return out, nil
}

func (c *OccClient) ListUsers() ([]UserRecord, error) {
	out, err := c.UserListing()
	if err != nil {
		return nil, err
	}

	return ParseUserList(bytes.NewReader(out))
}

// SetQuota invokes the per-user setting-update command. The command's
// own output is discarded; failures surface only in the returned error.
func (c *OccClient) SetQuota(user UserRecord, quota QuotaSpec) error {
	_, err := c.occ("user:setting", string(user), "files", "quota", quota.Literal)
	return err
}
