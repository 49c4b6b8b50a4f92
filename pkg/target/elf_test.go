package target

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ddbg/pkg/target/nacl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type elfSym struct {
	name  string
	typ   elf.SymType
	shndx elf.SectionIndex
	value uint64
}

const textSection elf.SectionIndex = 1

// buildELF assembles a little-endian ELF64 executable with sections
// .text, .symtab, .strtab and .shstrtab. syms become the .symtab entries.
func buildELF(t *testing.T, osabi elf.OSABI, syms ...elfSym) []byte {
	t.Helper()

	shstrtab, secNames := stringTable(".text", ".symtab", ".strtab", ".shstrtab")
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.name
	}
	strtab, symNames := stringTable(names...)

	var symtab bytes.Buffer
	writeLE(t, &symtab, elf.Sym64{})
	for i, s := range syms {
		writeLE(t, &symtab, elf.Sym64{
			Name:  symNames[i],
			Info:  elf.ST_INFO(elf.STB_GLOBAL, s.typ),
			Shndx: uint16(s.shndx),
			Value: s.value,
		})
	}

	const hdrSize = 64
	shstrOff := uint64(hdrSize)
	strOff := shstrOff + uint64(len(shstrtab))
	symOff := align8(strOff + uint64(len(strtab)))
	shOff := align8(symOff + uint64(symtab.Len()))

	sections := []elf.Section64{
		{},
		{
			Name:      secNames[0],
			Type:      uint32(elf.SHT_NOBITS),
			Flags:     uint64(elf.SHF_ALLOC | elf.SHF_EXECINSTR),
			Addr:      0x401000,
			Size:      0x1000,
			Addralign: 16,
		},
		{
			Name:      secNames[1],
			Type:      uint32(elf.SHT_SYMTAB),
			Off:       symOff,
			Size:      uint64(symtab.Len()),
			Link:      3,
			Info:      1,
			Addralign: 8,
			Entsize:   elf.Sym64Size,
		},
		{Name: secNames[2], Type: uint32(elf.SHT_STRTAB), Off: strOff, Size: uint64(len(strtab)), Addralign: 1},
		{Name: secNames[3], Type: uint32(elf.SHT_STRTAB), Off: shstrOff, Size: uint64(len(shstrtab)), Addralign: 1},
	}

	hdr := elf.Header64{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(elf.EM_X86_64),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     shOff,
		Ehsize:    hdrSize,
		Shentsize: 64,
		Shnum:     uint16(len(sections)),
		Shstrndx:  4,
	}
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS64)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)
	hdr.Ident[elf.EI_OSABI] = byte(osabi)

	var img bytes.Buffer
	writeLE(t, &img, hdr)
	img.Write(shstrtab)
	img.Write(strtab)
	padTo(&img, symOff)
	img.Write(symtab.Bytes())
	padTo(&img, shOff)
	for _, sec := range sections {
		writeLE(t, &img, sec)
	}
	return img.Bytes()
}

func stringTable(names ...string) ([]byte, []uint32) {
	table := []byte{0}
	offsets := make([]uint32, len(names))
	for i, name := range names {
		offsets[i] = uint32(len(table))
		table = append(table, name...)
		table = append(table, 0)
	}
	return table, offsets
}

func writeLE(t *testing.T, buf *bytes.Buffer, v any) {
	t.Helper()
	require.NoError(t, binary.Write(buf, binary.LittleEndian, v))
}

func padTo(buf *bytes.Buffer, off uint64) {
	for uint64(buf.Len()) < off {
		buf.WriteByte(0)
	}
}

func align8(n uint64) uint64 {
	return (n + 7) &^ 7
}

func TestReadELFSymbols(t *testing.T) {
	img := buildELF(t, elf.ELFOSABI_NONE,
		elfSym{name: "main", typ: elf.STT_FUNC, shndx: textSection, value: 0x401000},
		elfSym{name: "_ZN3Foo3barEv", typ: elf.STT_FUNC, shndx: textSection, value: 0x401080},
		elfSym{name: "__cxa_throw", typ: elf.STT_FUNC, shndx: elf.SHN_UNDEF},
		elfSym{name: "counter", typ: elf.STT_OBJECT, shndx: textSection, value: 0x402000},
	)

	prog, err := ReadELF(bytes.NewReader(img), "a.out", ABIGNUv3)
	require.NoError(t, err)

	assert.Equal(t, "a.out", prog.Name())
	assert.Equal(t, 64, prog.Arch().PtrBits)
	assert.Equal(t, elf.EM_X86_64.String(), prog.Arch().Name)
	assert.Equal(t, ABIGNUv3, prog.ExceptionABI())

	sym, ok := prog.LookupSymbol("main")
	require.True(t, ok)
	assert.Equal(t, uint64(0x401000), sym.Addr)

	sym, ok = prog.LookupSymbol("_ZN3Foo3barEv")
	require.True(t, ok)
	assert.Equal(t, uint64(0x401080), sym.Addr)

	_, ok = prog.LookupSymbol("__cxa_throw")
	assert.False(t, ok, "undefined symbols stay pending")

	_, ok = prog.LookupSymbol("counter")
	assert.False(t, ok, "data symbols are not code")
}

func TestLoadELFFromDisk(t *testing.T) {
	img := buildELF(t, elf.ELFOSABI_LINUX,
		elfSym{name: "__cxa_begin_catch", typ: elf.STT_FUNC, shndx: textSection, value: 0x401200},
	)
	path := filepath.Join(t.TempDir(), "prog")
	require.NoError(t, os.WriteFile(path, img, 0755))

	prog, err := LoadELF(path, ABINone)
	require.NoError(t, err)

	sym, ok := prog.LookupSymbol("__cxa_begin_catch")
	require.True(t, ok)
	assert.Equal(t, uint64(0x401200), sym.Addr)
	assert.Equal(t, ABINone, prog.ExceptionABI())
	assert.Equal(t, path, prog.Name())
}

func TestReadELFSandboxedImage(t *testing.T) {
	syms := []elfSym{
		{name: "__cxa_throw", typ: elf.STT_FUNC, shndx: textSection, value: 0x20000},
		{name: "__cxa_rethrow", typ: elf.STT_FUNC, shndx: textSection, value: nacl.Base + 0x30000},
	}

	tests := []struct {
		name        string
		osabi       elf.OSABI
		wantThrow   uint64
		wantRethrow uint64
	}{
		{"sandboxed", nacl.OSABI, nacl.Base + 0x20000, nacl.Base + 0x30000},
		{"plain", elf.ELFOSABI_NONE, 0x20000, nacl.Base + 0x30000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := buildELF(t, tt.osabi, syms...)

			prog, err := ReadELF(bytes.NewReader(img), "prog.nexe", ABIGNUv3)
			require.NoError(t, err)

			sym, ok := prog.LookupSymbol("__cxa_throw")
			require.True(t, ok)
			assert.Equal(t, tt.wantThrow, sym.Addr)

			sym, ok = prog.LookupSymbol("__cxa_rethrow")
			require.True(t, ok)
			assert.Equal(t, tt.wantRethrow, sym.Addr, "relocated values are kept")
		})
	}
}
