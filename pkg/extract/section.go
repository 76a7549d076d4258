/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: section.go
Description: Executable section extraction for Akaylee ArchRec. Pulls
the machine-code section out of ELF, PE, and Mach-O query files so the
classifier sees instructions rather than headers, symbol tables, and
string data. Unrecognized inputs (raw firmware dumps) pass through
untouched.
*/

package extract

import (
	"bytes"
	"debug/elf"
	"debug/macho"
	"debug/pe"
	"encoding/binary"
)

// Magic numbers checked before attempting a full parse.
var (
	elfMagic = []byte{0x7f, 'E', 'L', 'F'}
	peMagic  = []byte{'M', 'Z'}
)

// TextSection returns the executable code section of an ELF, PE, or
// Mach-O binary. The second return value reports whether a section was
// actually extracted; when the format is not recognized, or the file is
// malformed, or it has no code section, the input is returned unchanged
// with extracted == false.
func TextSection(data []byte) ([]byte, bool) {
	switch {
	case bytes.HasPrefix(data, elfMagic):
		if section := elfText(data); section != nil {
			return section, true
		}
	case bytes.HasPrefix(data, peMagic):
		if section := peText(data); section != nil {
			return section, true
		}
	case isMachO(data):
		if section := machoText(data); section != nil {
			return section, true
		}
	}
	return data, false
}

// elfText extracts the first executable section of an ELF binary,
// preferring .text when present.
func elfText(data []byte) []byte {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	defer f.Close()

	if s := f.Section(".text"); s != nil && s.Type != elf.SHT_NOBITS {
		if raw, err := s.Data(); err == nil && len(raw) > 0 {
			return raw
		}
	}
	for _, s := range f.Sections {
		if s.Flags&elf.SHF_EXECINSTR == 0 || s.Type == elf.SHT_NOBITS {
			continue
		}
		if raw, err := s.Data(); err == nil && len(raw) > 0 {
			return raw
		}
	}
	return nil
}

// peText extracts the .text section of a PE binary.
func peText(data []byte) []byte {
	f, err := pe.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	defer f.Close()

	if s := f.Section(".text"); s != nil {
		if raw, err := s.Data(); err == nil && len(raw) > 0 {
			return raw
		}
	}
	return nil
}

// machoText extracts the __text section of a Mach-O binary.
func machoText(data []byte) []byte {
	f, err := macho.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	defer f.Close()

	if s := f.Section("__text"); s != nil {
		if raw, err := s.Data(); err == nil && len(raw) > 0 {
			return raw
		}
	}
	return nil
}

// isMachO reports whether data starts with one of the Mach-O magics
// (32/64 bit, either endianness).
func isMachO(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	magic := binary.LittleEndian.Uint32(data)
	switch magic {
	case macho.Magic32, macho.Magic64:
		return true
	}
	magic = binary.BigEndian.Uint32(data)
	switch magic {
	case macho.Magic32, macho.Magic64:
		return true
	}
	return false
}
