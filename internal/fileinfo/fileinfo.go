// Package fileinfo collects the OS metadata shown in the status bar:
// permissions, owner, group, size and modification time.
package fileinfo

import (
	"fmt"
	"os"
	"time"
)

// Info is the metadata of one directory entry, formatted lazily.
type Info struct {
	Name    string
	Mode    os.FileMode
	Size    int64
	ModTime time.Time
	Owner   string
	Group   string
	Dir     bool
}

// StatusLine formats the metadata the way the status bar displays it:
//
//	drwxr-xr-x alice staff 4.0K 2026-08-12 14:03 src
func (i Info) StatusLine() string {
	return fmt.Sprintf("%s %s %s %s %s %s",
		i.Mode.String(), i.Owner, i.Group,
		FormatSize(i.Size), i.ModTime.Format("2006-01-02 15:04"), i.Name)
}

// FormatSize renders a byte count in at most four characters plus a
// unit suffix, the way ls -h does.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%dB", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%c", float64(n)/float64(div), "KMGTPE"[exp])
}

// Stat returns the metadata for path. Owner and group resolution is
// platform-specific; on platforms without user lookup the numeric IDs
// or empty strings are used instead.
func Stat(path string) (Info, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return Info{}, err
	}
	info := Info{
		Name:    fi.Name(),
		Mode:    fi.Mode(),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
		Dir:     fi.IsDir(),
	}
	info.Owner, info.Group = ownership(path)
	return info, nil
}
