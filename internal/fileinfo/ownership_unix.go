//go:build unix

package fileinfo

import (
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

// ownership resolves the owner and group names of path, falling back
// to the numeric IDs when the lookup fails (deleted users, NFS,
// containers without a passwd database).
func ownership(path string) (owner, group string) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return "", ""
	}
	return lookupUID(st.Uid), lookupGID(st.Gid)
}

func lookupUID(uid uint32) string {
	id := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}

func lookupGID(gid uint32) string {
	id := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name
	}
	return id
}
