package hexdump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func initTestConfig(t *testing.T) {
	viper.SetConfigFile("testdata/config.yaml")
	err := viper.ReadInConfig()
	require.Nil(t, err)
	ViperInit("hexdump")
}

var examplePacket = strings.Join([]string{
	"c2 ef 0a 00 00 91 88 43 e1 38 a7 2b 08 00 45 00",
	"00 3c d3 73 40 00 40 06 58 ac 02 02 02 0a 0a 00",
	"00 91 aa e6 00 16 b4 46 7f 86 00 00 00 00 a0 02",
	"39 08 2c 11 00 00 02 04 05 b4 04 02 08 0a cf 40",
	"26 40 00 00 00 00 01 03 03 07",
}, "\n")

var exampleDump = "000000 c2 ef 0a 00 00 91 88 43  e1 38 a7 2b 08 00 45 00\n" +
	"000010 00 3c d3 73 40 00 40 06  58 ac 02 02 02 0a 0a 00\n" +
	"000020 00 91 aa e6 00 16 b4 46  7f 86 00 00 00 00 a0 02\n" +
	"000030 39 08 2c 11 00 00 02 04  05 b4 04 02 08 0a cf 40\n" +
	"000040 26 40 00 00 00 00 01 03  03 07 \n"

const line16 = "00 11 22 33 44 55 66 77 88 99 aa bb cc dd ee ff"
const row16 = "00 11 22 33 44 55 66 77  88 99 aa bb cc dd ee ff"

func TestGenerateExample(t *testing.T) {
	initTestConfig(t)
	var buf bytes.Buffer
	d := NewDumper()
	err := d.Generate(examplePacket, &buf)
	require.Nil(t, err)
	require.Equal(t, exampleDump, buf.String())
}

func TestGenerateFullRows(t *testing.T) {
	initTestConfig(t)
	var buf bytes.Buffer
	d := NewDumper()
	err := d.Generate(line16+" "+line16, &buf)
	require.Nil(t, err)
	expected := "000000 " + row16 + "\n" + "000010 " + row16 + "\n"
	require.Equal(t, expected, buf.String())
}

func TestGenerateOffsetContinuesAcrossCalls(t *testing.T) {
	initTestConfig(t)
	var buf bytes.Buffer
	d := NewDumper()
	err := d.Generate(line16, &buf)
	require.Nil(t, err)
	err = d.Generate(line16, &buf)
	require.Nil(t, err)
	expected := "000000 " + row16 + "\n" + "000010 " + row16 + "\n"
	require.Equal(t, expected, buf.String())
}

func TestGenerateResetOnSeparator(t *testing.T) {
	initTestConfig(t)
	var buf bytes.Buffer
	d := NewDumper()
	err := d.Generate(line16, &buf)
	require.Nil(t, err)

	err = d.Generate("end of packet", &buf)
	require.Nil(t, err)

	err = d.Generate(line16, &buf)
	require.Nil(t, err)
	expected := "000000 " + row16 + "\n" + "000000 " + row16 + "\n"
	require.Equal(t, expected, buf.String())
}

func TestGenerateNonHexNoOutput(t *testing.T) {
	initTestConfig(t)
	var buf bytes.Buffer
	d := NewDumper()
	err := d.Generate("hello world", &buf)
	require.Nil(t, err)
	require.Empty(t, buf.String())
}

func TestGenerateUppercase(t *testing.T) {
	initTestConfig(t)
	var buf bytes.Buffer
	d := NewDumper()
	err := d.Generate("AB CD EF 01 23", &buf)
	require.Nil(t, err)
	require.Equal(t, "000000 ab cd ef 01 23 \n", buf.String())
}

func TestGenerateOddTrailingDigit(t *testing.T) {
	initTestConfig(t)
	var buf bytes.Buffer
	d := NewDumper()
	err := d.Generate("ab cd e", &buf)
	require.Nil(t, err)
	require.Equal(t, "000000 ab cd e\n", buf.String())
}

func TestGenerateShortRowNotPadded(t *testing.T) {
	initTestConfig(t)
	var buf bytes.Buffer
	d := NewDumper()
	err := d.Generate(line16+" de ad", &buf)
	require.Nil(t, err)
	expected := "000000 " + row16 + "\n" + "000010 de ad \n"
	require.Equal(t, expected, buf.String())
}

func TestGenerateRoundTrip(t *testing.T) {
	initTestConfig(t)
	var buf bytes.Buffer
	d := NewDumper()
	err := d.Generate(examplePacket, &buf)
	require.Nil(t, err)

	collect := func(text string) string {
		var digits strings.Builder
		for i := 0; i < len(text); i++ {
			c := lower(text[i])
			if isHexDigit(c) {
				digits.WriteByte(c)
			}
		}
		return digits.String()
	}
	var output strings.Builder
	for _, row := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		// strip the 6-digit offset and its trailing space
		require.Greater(t, len(row), 7)
		output.WriteString(collect(row[7:]))
	}
	require.Equal(t, collect(examplePacket), output.String())
}

func TestClassifier(t *testing.T) {
	initTestConfig(t)
	d := NewDumper()
	require.True(t, d.IsHexLine("c2 ef 0a 00"))
	require.True(t, d.IsHexLine("ab cd"))
	require.True(t, d.IsHexLine("AB\tCD"))
	require.True(t, d.IsHexLine("\r\rc2 ef 0a 00"))

	require.False(t, d.IsHexLine("hello world"))
	require.False(t, d.IsHexLine("c2ef0a00 00918843"))
	require.False(t, d.IsHexLine("g2 ef 0a 00"))
	require.False(t, d.IsHexLine("ab c"))
	require.False(t, d.IsHexLine("ab"))
	require.False(t, d.IsHexLine(""))
	require.False(t, d.IsHexLine("\r\r\r"))
}
