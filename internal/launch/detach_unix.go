//go:build !windows

package launch

import "syscall"

// detachAttr moves the child into a new session so closing the launcher or
// its terminal does not deliver SIGHUP to the launched application.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
