//go:build windows

package launch

import "syscall"

// detachedProcess is CreationFlags DETACHED_PROCESS, absent from syscall.
const detachedProcess = 0x00000008

// detachAttr detaches the child from the launcher's console so it survives
// the launcher exiting.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | detachedProcess,
	}
}
