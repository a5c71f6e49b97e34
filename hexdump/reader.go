package hexdump

import (
	"bufio"
	"io"
	"log"
	"os"
)

// ReadHexString reads an entire packet file into one string, preserving
// line breaks.  Used for a single packet spread across multiple lines.
func ReadHexString(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", Fatalf("failed reading %s: %v", filename, err)
	}
	return string(data), nil
}

// GenerateFile formats one packet per non-empty line of filename, writing
// rows to ofs.  Empty lines are skipped without resetting the offset
// counter; non-hex lines reset it, so consecutive hex lines continue a
// packet and a separator line starts a new one.
func (d *Dumper) GenerateFile(filename string, ofs io.Writer) error {
	ifs, err := os.Open(filename)
	if err != nil {
		return Fatalf("failed opening %s: %v", filename, err)
	}
	defer ifs.Close()
	if d.verbose {
		log.Printf("reading packets from %s\n", filename)
	}
	scanner := bufio.NewScanner(ifs)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		err := d.Generate(line, ofs)
		if err != nil {
			return err
		}
	}
	err = scanner.Err()
	if err != nil {
		return Fatalf("failed reading %s: %v", filename, err)
	}
	return nil
}
