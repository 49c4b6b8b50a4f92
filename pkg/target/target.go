// Package target models the program being debugged: its architecture, its
// exception-handling ABI and the symbols breakpoints resolve against.
package target

import (
	"fmt"
	"strings"
)

// ExceptionABI identifies the exception-handling convention of the
// target's language runtime.
type ExceptionABI int

const (
	// ABINone means the runtime exposes no known exception hooks.
	ABINone ExceptionABI = iota
	// ABIGNUv3 is the Itanium C++ ABI used by GNU v3 runtimes.
	ABIGNUv3
)

func (a ExceptionABI) String() string {
	switch a {
	case ABIGNUv3:
		return "gnu-v3"
	default:
		return "none"
	}
}

// ParseExceptionABI parses the name used in configuration and `set cp-abi`.
func ParseExceptionABI(s string) (ExceptionABI, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gnu-v3", "gnu", "itanium":
		return ABIGNUv3, nil
	case "none":
		return ABINone, nil
	default:
		return ABINone, fmt.Errorf("unknown C++ ABI %q", s)
	}
}

// Arch describes the target architecture.
type Arch struct {
	Name    string
	PtrBits int
}

// DefaultArch is used until a program is loaded.
var DefaultArch = Arch{Name: "i386:x86-64", PtrBits: 64}

// Symbol is a named code address.
type Symbol struct {
	Name string
	Addr uint64
}

// Program is a loaded program image together with any modules added to it.
type Program interface {
	Name() string
	Arch() Arch
	ExceptionABI() ExceptionABI
	LookupSymbol(name string) (Symbol, bool)
}

// Static is an in-memory Program.
type Static struct {
	name    string
	arch    Arch
	abi     ExceptionABI
	symbols map[string]Symbol
}

// NewStatic creates a Program from a fixed symbol list.
func NewStatic(name string, arch Arch, abi ExceptionABI, symbols ...Symbol) *Static {
	s := &Static{
		name:    name,
		arch:    arch,
		abi:     abi,
		symbols: make(map[string]Symbol, len(symbols)),
	}
	for _, sym := range symbols {
		s.AddSymbol(sym)
	}
	return s
}

func (s *Static) Name() string { return s.name }

func (s *Static) Arch() Arch { return s.arch }

func (s *Static) ExceptionABI() ExceptionABI { return s.abi }

// SetExceptionABI overrides the detected exception ABI.
func (s *Static) SetExceptionABI(abi ExceptionABI) { s.abi = abi }

func (s *Static) LookupSymbol(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]
	return sym, ok
}

// AddSymbol adds or replaces a symbol.
func (s *Static) AddSymbol(sym Symbol) {
	s.symbols[sym.Name] = sym
}

// Merge adds every symbol of other, as when a shared module is loaded.
// Existing definitions win.
func (s *Static) Merge(other *Static) int {
	added := 0
	for name, sym := range other.symbols {
		if _, exists := s.symbols[name]; exists {
			continue
		}
		s.symbols[name] = sym
		added++
	}
	return added
}
