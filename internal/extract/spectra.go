package extract

// Spectra parses a whitespace-delimited numeric table into rows. Header or
// comment lines (anything whose first field is not numeric) are dropped, as
// are trailing non-numeric fields within a row; row order is preserved.
func Spectra(text string) [][]float64 {
	return numericRecords(text)
}
