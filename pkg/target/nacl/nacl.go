// Package nacl classifies sandboxed (NaCl / ZeroVM) object images and maps
// their 32-bit pointers into the debugger's flat address space.
package nacl

import "debug/elf"

// OSABI is the ELF ident OS/ABI byte that marks a sandboxed image.
const OSABI elf.OSABI = 123

// Base is where the sandbox's 4GiB address space is mapped in the host.
const Base uint64 = 0x440000000000

// Size of the sandbox address space.
const Size uint64 = 4 * 1024 * 1024 * 1024

// IsSandboxImage reports whether an ELF header belongs to a sandboxed image.
func IsSandboxImage(hdr *elf.FileHeader) bool {
	return hdr != nil && hdr.OSABI == OSABI
}

// PointerToAddress turns raw sandbox pointer bits into an effective
// address. Null stays null.
func PointerToAddress(raw uint32) uint64 {
	if raw == 0 {
		return 0
	}
	return Base + uint64(raw)
}

// IsSandboxAddress reports whether addr lies inside [Base, Base+4GiB).
func IsSandboxAddress(addr uint64) bool {
	return addr >= Base && addr < Base+Size
}
