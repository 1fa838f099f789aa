// Copyright 2025 ncquota Authors. All rights reserved.
// Use of this source code is governed by a BSD style
// license that can be found in the LICENSE file.

package ncquota

import (
	"errors"
	"reflect"
	"testing"
)

type fakeRunner struct {
	argv [][]string
	out  []byte
	err  error
}

func (r *fakeRunner) Run(args ...string) ([]byte, error) {
	r.argv = append(r.argv, args)
	return r.out, r.err
}

func newTestClient(runner *fakeRunner) *OccClient {
	return &OccClient{
		Runner:  runner,
		PHP:     "php",
		OccPath: "/var/www/nextcloud/occ",
	}
}

func TestOccClientListUsers(t *testing.T) {
	runner := &fakeRunner{out: []byte("Users: 1- alice\nUsers: 2- bob\n")}
	client := newTestClient(runner)

	users, err := client.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers failed: %s", err)
	}

	want := []UserRecord{"alice", "bob"}
	if !reflect.DeepEqual(users, want) {
		t.Errorf("users = %q, want %q", users, want)
	}

	wantArgv := []string{"php", "/var/www/nextcloud/occ", "user:list"}
	if len(runner.argv) != 1 || !reflect.DeepEqual(runner.argv[0], wantArgv) {
		t.Errorf("argv = %q, want %q", runner.argv, wantArgv)
	}
}

func TestOccClientListUsersFailure(t *testing.T) {
	runner := &fakeRunner{err: errors.New("exit status 1")}
	client := newTestClient(runner)

	if _, err := client.ListUsers(); err == nil {
		t.Fatal("expected listing error")
	}
}

func TestOccClientSetQuota(t *testing.T) {
	runner := &fakeRunner{}
	client := newTestClient(runner)

	spec, err := ParseQuota("10GB")
	if err != nil {
		t.Fatal(err)
	}

	if err := client.SetQuota("alice", spec); err != nil {
		t.Fatalf("SetQuota failed: %s", err)
	}

	wantArgv := []string{"php", "/var/www/nextcloud/occ", "user:setting", "alice", "files", "quota", "10GB"}
	if len(runner.argv) != 1 || !reflect.DeepEqual(runner.argv[0], wantArgv) {
		t.Errorf("argv = %q, want %q", runner.argv, wantArgv)
	}
}

func TestSSHRunnerCommandLine(t *testing.T) {
	runner := &SSHRunner{SudoUser: "www-data"}

	got := runner.CommandLine("php", "/var/www/nextcloud/occ", "user:list")
	want := "sudo -u www-data php /var/www/nextcloud/occ user:list"
	if got != want {
		t.Errorf("command line = %q, want %q", got, want)
	}
}
