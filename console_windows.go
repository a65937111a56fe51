package main

import (
	"log"
	"os"
	"syscall"
)

const attachParentProcess = ^uint32(0) // (DWORD)-1

var (
	modkernel32       = syscall.NewLazyDLL("kernel32.dll")
	procAttachConsole = modkernel32.NewProc("AttachConsole")
)

// When built with -H windowsgui the process starts without a console and
// cobra usage and log output would be lost.
func init() {
	r1, _, lasterr := syscall.SyscallN(procAttachConsole.Addr(), uintptr(attachParentProcess))
	if r1 == 0 {
		if lasterr != syscall.Errno(0) {
			log.Printf("attach console: %v", lasterr)
		}
		return
	}
	hout, err := syscall.GetStdHandle(syscall.STD_OUTPUT_HANDLE)
	if err != nil {
		log.Printf("stdout handle: %v", err)
		return
	}
	herr, err := syscall.GetStdHandle(syscall.STD_ERROR_HANDLE)
	if err != nil {
		log.Printf("stderr handle: %v", err)
		return
	}
	os.Stdout = os.NewFile(uintptr(hout), "/dev/stdout")
	os.Stderr = os.NewFile(uintptr(herr), "/dev/stderr")
	log.SetOutput(os.Stderr)
}
