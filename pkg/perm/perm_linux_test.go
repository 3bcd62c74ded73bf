//go:build linux

package perm

import (
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"
)

// currentIdentity returns names for the running user and its primary group,
// the only identities an unprivileged test can chown to.
func currentIdentity(t *testing.T) (owner, group string, uid, gid int) {
	t.Helper()
	u, err := user.Current()
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	g, err := user.LookupGroupId(u.Gid)
	if err != nil {
		t.Fatalf("lookup group %s: %v", u.Gid, err)
	}
	uid, err = strconv.Atoi(u.Uid)
	if err != nil {
		t.Fatalf("bad uid %q: %v", u.Uid, err)
	}
	gid, err = strconv.Atoi(u.Gid)
	if err != nil {
		t.Fatalf("bad gid %q: %v", u.Gid, err)
	}
	return u.Username, g.Name, uid, gid
}

func statIDs(t *testing.T, path string) (uid, gid int) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	st := info.Sys().(*syscall.Stat_t) //nolint:forcetypeassert
	return int(st.Uid), int(st.Gid)
}

func TestApplySkipsAbsentPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	applied, err := Apply(Spec{Path: path, Owner: "root", Mode: ModePtr(0o600)})
	if err != nil {
		t.Fatalf("Apply on absent path returned error: %v", err)
	}
	if applied {
		t.Fatal("Apply reported applied=true for absent path")
	}
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Fatalf("Apply created %s", path)
	}
}

func TestApplySetsOwnerAndMode(t *testing.T) {
	owner, group, uid, gid := currentIdentity(t)

	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	applied, err := Apply(Spec{Path: path, Owner: owner, Group: group, Mode: ModePtr(0o640)})
	if err != nil {
		t.Fatal(err)
	}
	if !applied {
		t.Fatal("Apply reported applied=false for existing path")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o640 {
		t.Errorf("mode = %04o; want 0640", got)
	}
	gotUID, gotGID := statIDs(t, path)
	if gotUID != uid || gotGID != gid {
		t.Errorf("owner = %d:%d; want %d:%d", gotUID, gotGID, uid, gid)
	}
}

func TestApplyIdempotent(t *testing.T) {
	owner, group, _, _ := currentIdentity(t)

	path := filepath.Join(t.TempDir(), "id")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	spec := Spec{Path: path, Owner: owner, Group: group, Mode: ModePtr(0o640)}
	for i := 0; i < 2; i++ {
		if _, err := Apply(spec); err != nil {
			t.Fatalf("apply %d: %v", i+1, err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o640 {
		t.Errorf("mode = %04o; want 0640", got)
	}
}

func TestApplyRecursiveOwnershipNotMode(t *testing.T) {
	owner, group, uid, gid := currentIdentity(t)

	dir := t.TempDir()
	child := filepath.Join(dir, "sub", "zone.db")
	if err := os.MkdirAll(filepath.Dir(child), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(child, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Apply(Spec{Path: dir, Owner: owner, Group: group, Mode: ModePtr(0o750), Recursive: true})
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []string{dir, filepath.Dir(child), child} {
		gotUID, gotGID := statIDs(t, p)
		if gotUID != uid || gotGID != gid {
			t.Errorf("%s: owner = %d:%d; want %d:%d", p, gotUID, gotGID, uid, gid)
		}
	}

	// Mode applies to the root only.
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o750 {
		t.Errorf("root mode = %04o; want 0750", got)
	}
	info, err = os.Stat(child)
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0o600 {
		t.Errorf("child mode = %04o; want 0600 (mode must not recurse)", got)
	}
}

func TestApplyUnknownOwnerFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Apply(Spec{Path: path, Owner: "no-such-maas-user"}); err == nil {
		t.Fatal("Apply with unknown owner did not fail")
	}
}
