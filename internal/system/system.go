package system

import (
	"fmt"
	"log"
	"os/exec"
	"strings"
	"syscall"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// InitResourceLimits raises the open-file limit. ImageMagick maps temp
// files aggressively while decoding full 10980px Sentinel tiles and the
// default soft limit on macOS is too low.
func InitResourceLimits() {
	var rLimit syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] Could not read the open-file limit: %v", err)
		return
	}

	rLimit.Cur = 2048
	if rLimit.Cur > rLimit.Max {
		rLimit.Cur = rLimit.Max
	}

	if err := syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit); err != nil {
		log.Printf("[!] Could not raise the open-file limit: %v", err)
	}
}

// minAvailableBytes is the headroom ImageMagick wants for one full-tile
// decode; below this it starts paging pixel cache to disk and a live run
// slows down badly.
const minAvailableBytes = 2 << 30

// LogHostResources reports the host CPU and memory situation before a live
// run, warning when available memory is tight for full-tile decodes.
func LogHostResources() {
	cores, err := cpu.Counts(true)
	if err == nil {
		fmt.Printf("[*] Host: %d logical CPUs\n", cores)
	}

	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("[!] Could not read memory stats: %v", err)
		return
	}
	fmt.Printf("[*] Memory: %.1f GiB available of %.1f GiB\n",
		float64(vm.Available)/(1<<30), float64(vm.Total)/(1<<30))
	if vm.Available < minAvailableBytes {
		log.Printf("[!] Less than 2 GiB available; ImageMagick will page its pixel cache to disk")
	}
}

// DetectConvertTool probes for the renderer binary. ImageMagick 7 ships a
// single "magick" entry point; 6 still installs "convert".
func DetectConvertTool() string {
	for _, tool := range []string{"magick", "convert"} {
		out, err := exec.Command(tool, "-version").CombinedOutput()
		if err == nil && strings.Contains(string(out), "ImageMagick") {
			return tool
		}
	}
	return "convert"
}
