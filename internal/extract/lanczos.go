package extract

import (
	"strconv"
	"strings"
)

// LanczosData holds the tridiagonal matrix dump of one lanczos solve.
type LanczosData struct {
	// Dimension is the declared tridiagonal matrix size n.
	Dimension int
	// ScalingFactor is the second field of the header record.
	ScalingFactor float64
	// Tridiagonal holds n rows of [diagonal, off-diagonal]. The first row's
	// off-diagonal element is zero by convention, whatever the file says.
	Tridiagonal [][]float64
	// Eigenvalues holds every record after the matrix, verbatim.
	Eigenvalues [][]float64
}

// Lanczos splits raw text into line-records and interprets them as a header,
// n tridiagonal matrix rows and a trailing block of eigenvalue rows. It
// returns nil when the header is unusable; a truncated body yields as many
// rows as the file actually has.
func Lanczos(text string) *LanczosData {
	records := numericRecords(text)
	if len(records) == 0 || len(records[0]) < 2 {
		return nil
	}

	header := records[0]
	n := int(header[0])
	if n < 0 {
		return nil
	}

	data := &LanczosData{
		Dimension:     n,
		ScalingFactor: header[1],
	}

	body := records[1:]
	for i := 0; i < n && i < len(body); i++ {
		row := body[i]
		a, b := row[0], 0.0
		if i > 0 && len(row) > 1 {
			b = row[1]
		}
		data.Tridiagonal = append(data.Tridiagonal, []float64{a, b})
	}
	if n < len(body) {
		data.Eigenvalues = body[n:]
	}

	return data
}

// numericRecords parses text into one numeric row per non-empty line,
// dropping lines whose leading field is not a number.
func numericRecords(text string) [][]float64 {
	var records [][]float64
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
			continue
		}
		records = append(records, parseFloats(fields))
	}
	return records
}
