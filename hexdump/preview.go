package hexdump

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// CollectBytes extracts the hex digit stream from text, ignoring
// whitespace and other separators, and decodes it into bytes.  A
// dangling unpaired digit is dropped.
func CollectBytes(text string) ([]byte, error) {
	var digits strings.Builder
	for i := 0; i < len(text); i++ {
		c := lower(text[i])
		if isHexDigit(c) {
			digits.WriteByte(c)
		}
	}
	str := digits.String()
	if len(str)%2 != 0 {
		str = str[:len(str)-1]
	}
	data, err := hex.DecodeString(str)
	if err != nil {
		return nil, Fatal(err)
	}
	return data, nil
}

// Preview renders data as a terminal hexdump with an ASCII gutter.  When
// colorize is set the offsets are highlighted.
func Preview(data []byte, colorize bool) string {
	var output strings.Builder
	cyan := color.New(color.FgCyan)
	for i := 0; i < len(data); i += BytesPerRow {
		end := i + BytesPerRow
		if end > len(data) {
			end = len(data)
		}
		row := data[i:end]

		if colorize {
			output.WriteString(cyan.Sprintf("%06x  ", i))
		} else {
			output.WriteString(fmt.Sprintf("%06x  ", i))
		}
		buf := make([]rune, len(row))
		for j := 0; j < BytesPerRow; j++ {
			if j < len(row) {
				output.WriteString(fmt.Sprintf("%02x ", row[j]))
				if row[j] < 32 || row[j] > 126 {
					buf[j] = '.'
				} else {
					buf[j] = rune(row[j])
				}
			} else {
				output.WriteString("   ")
			}
			if j == 7 {
				output.WriteString(" ")
			}
		}
		output.WriteString(fmt.Sprintf(" |%s|\n", string(buf)))
	}
	return output.String()
}
