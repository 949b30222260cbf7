package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan     bool
	Parse    bool
	Template bool
	Sheet    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("GSCONF_DEBUG_SCAN")
	d.Parse = boolEnv("GSCONF_DEBUG_PARSE")
	d.Template = boolEnv("GSCONF_DEBUG_TEMPLATE")
	d.Sheet = boolEnv("GSCONF_DEBUG_SHEET")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Parse() bool {
	return d.Parse
}
func Template() bool {
	return d.Template
}
func Sheet() bool {
	return d.Sheet
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
