package hexdump

import (
	"fmt"
	"log"
)

// Fatal annotates err for return up the call stack, logging it when
// debug output is enabled.
func Fatal(err error) error {
	if ViperGetBool("debug") {
		log.Printf("Fatal: %v\n", err)
	}
	return err
}

func Fatalf(format string, args ...any) error {
	return Fatal(fmt.Errorf(format, args...))
}
