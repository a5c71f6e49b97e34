package hexdump

import (
	"fmt"
	"io"
	"log"
	"strings"
)

const Version = "0.1.0"

const BytesPerRow = 16

// Dumper formats hex text into Wireshark-importable hexdump rows.
// The offset counter carries across calls so a packet may span multiple
// input lines; a non-hex line resets it, marking a packet boundary.
type Dumper struct {
	prefix  uint32
	verbose bool
	debug   bool
}

func NewDumper() *Dumper {
	d := Dumper{
		verbose: ViperGetBool("verbose"),
		debug:   ViperGetBool("debug"),
	}
	return &d
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// IsHexLine reports whether line begins with byte-formatted hex data:
// after skipping leading CR characters, two hex digits, a blank, then two
// more hex digits.  Serial console logs sometimes prefix lines with CRs,
// so those are ignored.  A line failing the test is a packet separator
// and resets the offset counter.
func (d *Dumper) IsHexLine(line string) bool {
	i := 0
	for i < len(line) && line[i] == '\r' {
		i++
	}
	if len(line)-i >= 5 {
		if isHexDigit(line[i]) && isHexDigit(line[i+1]) && isBlank(line[i+2]) && isHexDigit(line[i+3]) && isHexDigit(line[i+4]) {
			return true
		}
	}
	d.prefix = 0
	return false
}

// Generate scans hexStr and writes hexdump rows to ofs.  Non-hex
// characters are skipped.  Each row holds up to 16 bytes with a double
// space after the 8th; only full rows advance the offset counter.
func (d *Dumper) Generate(hexStr string, ofs io.Writer) error {
	if !d.IsHexLine(hexStr) {
		if d.debug {
			log.Printf("skipping non-hex line: %q\n", hexStr)
		}
		return nil
	}

	var row strings.Builder
	fmt.Fprintf(&row, "%06x ", d.prefix)
	numHex := 0
	digits := 0
	for i := 0; i < len(hexStr); i++ {
		c := lower(hexStr[i])
		if !isHexDigit(c) {
			continue
		}
		row.WriteByte(c)
		digits++

		if digits == 2 {
			digits = 0
			numHex++
			if numHex == 8 {
				// additional space in the middle of the row
				row.WriteByte(' ')
			}
			if numHex != BytesPerRow {
				row.WriteByte(' ')
			}
		}

		if numHex == BytesPerRow {
			_, err := fmt.Fprintln(ofs, row.String())
			if err != nil {
				return Fatal(err)
			}
			d.prefix += BytesPerRow
			numHex = 0
			row.Reset()
			fmt.Fprintf(&row, "%06x ", d.prefix)
		}
	}
	if numHex > 0 || digits > 0 {
		// short final row, written as accumulated
		_, err := fmt.Fprintln(ofs, row.String())
		if err != nil {
			return Fatal(err)
		}
	}
	return nil
}
