package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// operatorRe matches the multipole operator keyword at the start of a line.
	operatorRe = regexp.MustCompile(`(?m)^(dipole|quad|NRIXS)`)
	// vectorRe matches a "cartesian" label followed by its numeric components.
	vectorRe = regexp.MustCompile(`cartesian([\s\d.eE+-]+)`)
	// energyRe matches the scalar photon energy following an "end" marker line.
	energyRe = regexp.MustCompile(`end[\n\r]+\s*([\d.eE+-]+)`)
)

// PhotonData holds the fields pulled out of one photon descriptor file.
type PhotonData struct {
	// Operator is the multipole operator keyword: dipole, quad or NRIXS.
	Operator string
	// Vectors holds the cartesian 3-vectors in file order: polarization
	// first, momentum transfer second when the operator calls for one.
	Vectors [][]float64
	// Energy is the photon energy in eV; nil when absent or unreadable.
	Energy *float64
}

// Photon extracts the operator keyword, cartesian vectors and trailing
// photon energy from a raw photon descriptor.
func Photon(text string) PhotonData {
	var data PhotonData

	if m := operatorRe.FindStringSubmatch(text); m != nil {
		data.Operator = m[1]
	}

	for _, m := range vectorRe.FindAllStringSubmatch(text, -1) {
		vector := parseFloats(strings.Fields(m[1]))
		if len(vector) > 0 {
			data.Vectors = append(data.Vectors, vector)
		}
	}

	if m := energyRe.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			data.Energy = &v
		}
	}

	return data
}

// parseFloats converts fields to floats, stopping at the first field that is
// not numeric. A partial vector is better than none here.
func parseFloats(fields []string) []float64 {
	var values []float64
	for _, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			break
		}
		values = append(values, v)
	}
	return values
}
