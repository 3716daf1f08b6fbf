package utils

import (
	"fmt"
	"time"
)

var wib = time.FixedZone("WIB", 7*60*60)

var indonesianMonths = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatJoinDate renders t as an Indonesian long date, e.g. "2 Januari 2023".
func FormatJoinDate(t time.Time) string {
	local := t.In(wib)
	return fmt.Sprintf("%d %s %d", local.Day(), indonesianMonths[local.Month()-1], local.Year())
}
