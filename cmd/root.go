/*
Copyright © 2025 Matt Krueger <mkrueger@rstms.net>
All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

 1. Redistributions of source code must retain the above copyright notice,
    this list of conditions and the following disclaimer.

 2. Redistributions in binary form must reproduce the above copyright notice,
    this list of conditions and the following disclaimer in the documentation
    and/or other materials provided with the distribution.

 3. Neither the name of the copyright holder nor the names of its contributors
    may be used to endorse or promote products derived from this software
    without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
POSSIBILITY OF SUCH DAMAGE.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/rstms/hexgen/hexdump"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Version: "0.1.0",
	Use:     "hexgen",
	Short:   "generate Wireshark-importable hex dumps",
	Long: `
Format a hex digit string into the fixed-column hexdump accepted by the
Wireshark "File->Import from Hex Dump" dialog.  Input is a literal string,
a file holding one packet across multiple lines, or a file holding one
packet per line.
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// copy selected cli config to hexdump section
		viper.Set("hexdump.verbose", ViperGetBool("verbose"))
		viper.Set("hexdump.debug", ViperGetBool("debug"))
		hexdump.ViperInit("hexdump")
	},
	Run: func(cmd *cobra.Command, args []string) {
		outFile := ViperGetString("output")
		if outFile == "" {
			cobra.CheckErr(fmt.Errorf("missing output file"))
		}
		hexStr := ViperGetString("string")
		inFile := ViperGetString("input")
		multPkts := true
		if hexStr != "" || ViperGetBool("single") {
			multPkts = false
		}
		ofs, err := os.Create(outFile)
		cobra.CheckErr(err)
		defer ofs.Close()
		dumper := hexdump.NewDumper()
		switch {
		case !multPkts && inFile != "":
			// single packet in multiple lines
			hexStr, err = hexdump.ReadHexString(inFile)
			cobra.CheckErr(err)
			err = dumper.Generate(hexStr, ofs)
		case inFile != "":
			err = dumper.GenerateFile(inFile, ofs)
		default:
			err = dumper.Generate(hexStr, ofs)
		}
		cobra.CheckErr(err)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)
	OptionString(rootCmd, "config", "c", "", "config file")
	OptionString(rootCmd, "logfile", "", "", "log filename")
	OptionSwitch(rootCmd, "debug", "d", "produce debug output")
	OptionSwitch(rootCmd, "verbose", "v", "produce diagnostic output")

	OptionString(rootCmd, "string", "s", "", "hex data string")
	OptionString(rootCmd, "input", "i", "", "input file")
	OptionSwitch(rootCmd, "single", "n", "treat the input file as one packet")
	OptionString(rootCmd, "output", "o", "", "output file")
}
