//go:build !windows

package lib

import "os"

func userDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return dir
}
