package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// nearestSymbol extracts a display name from the host's nearest-symbol
// report, which looks like
//
//	raise + 272 in section .text of /usr/lib/libc.so.6
//
// The section suffix is dropped and a decimal offset is rendered in hex
// ("raise 0x110"). Text without a parsable offset is returned as-is.
func nearestSymbol(report string) string {
	name := report
	if i := strings.Index(report, "in section"); i >= 0 {
		name = report[:i]
	}
	name = strings.TrimSpace(name)

	i := strings.LastIndexByte(name, ' ')
	if i < 0 {
		return name
	}

	offset, err := strconv.ParseInt(name[i+1:], 10, 64)
	if err != nil {
		return name
	}

	base := strings.TrimSpace(name[:i])
	base = strings.TrimSpace(strings.TrimSuffix(base, "+"))
	return fmt.Sprintf("%s %#x", base, offset)
}
