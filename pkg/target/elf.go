package target

import (
	"debug/elf"
	"errors"
	"io"

	ddbgerrors "github.com/arthur-debert/ddbg/pkg/errors"
	"github.com/arthur-debert/ddbg/pkg/logging"
	"github.com/arthur-debert/ddbg/pkg/target/nacl"
)

// LoadELF reads the code symbols of an ELF image. Undefined symbols (for
// instance runtime hooks imported from a shared library) are left out so
// that breakpoints on them stay pending until the defining module is added.
func LoadELF(path string, abi ExceptionABI) (*Static, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, ddbgerrors.Wrapf(err, ddbgerrors.ErrTargetLoad, "\"%s\": not in executable format", path)
	}
	defer f.Close()
	return readELF(f, path, abi)
}

// ReadELF is LoadELF for an image that is already open. path names the
// image in messages and becomes the program name.
func ReadELF(r io.ReaderAt, path string, abi ExceptionABI) (*Static, error) {
	f, err := elf.NewFile(r)
	if err != nil {
		return nil, ddbgerrors.Wrapf(err, ddbgerrors.ErrTargetLoad, "\"%s\": not in executable format", path)
	}
	return readELF(f, path, abi)
}

func readELF(f *elf.File, path string, abi ExceptionABI) (*Static, error) {
	logger := logging.GetLogger("target.elf")

	arch := Arch{Name: f.Machine.String(), PtrBits: 64}
	if f.Class == elf.ELFCLASS32 {
		arch.PtrBits = 32
	}

	sandboxed := nacl.IsSandboxImage(&f.FileHeader)
	prog := NewStatic(path, arch, abi)

	var syms []elf.Symbol
	for _, read := range []func() ([]elf.Symbol, error){f.Symbols, f.DynamicSymbols} {
		s, err := read()
		if err != nil && !errors.Is(err, elf.ErrNoSymbols) {
			return nil, ddbgerrors.Wrapf(err, ddbgerrors.ErrTargetLoad, "cannot read symbols of \"%s\"", path)
		}
		syms = append(syms, s...)
	}

	for _, sym := range syms {
		if !isCodeSymbol(sym) {
			continue
		}
		addr := sym.Value
		if sandboxed && !nacl.IsSandboxAddress(addr) {
			// Values already relocated into the sandbox are kept.
			addr = nacl.PointerToAddress(uint32(addr))
		}
		if _, exists := prog.LookupSymbol(sym.Name); !exists {
			prog.AddSymbol(Symbol{Name: sym.Name, Addr: addr})
		}
	}

	logger.Debug().
		Str("path", path).
		Str("arch", arch.Name).
		Bool("sandboxed", sandboxed).
		Int("symbols", len(prog.symbols)).
		Msg("Loaded ELF image")

	return prog, nil
}

func isCodeSymbol(sym elf.Symbol) bool {
	if sym.Name == "" || sym.Section == elf.SHN_UNDEF || sym.Value == 0 {
		return false
	}
	switch elf.ST_TYPE(sym.Info) {
	case elf.STT_FUNC, elf.STT_GNU_IFUNC:
		return true
	default:
		return false
	}
}
