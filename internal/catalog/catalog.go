// Package catalog provides real bright-star names for labeling generated
// patterns.
package catalog

// brightStars lists IAU names of the brightest stars, brightest first.
// Magnitudes are apparent visual (J2000 catalog values).
var brightStars = []Entry{
	{"Sirius", -1.46},
	{"Canopus", -0.74},
	{"Arcturus", -0.05},
	{"Vega", 0.03},
	{"Capella", 0.08},
	{"Rigel", 0.13},
	{"Procyon", 0.34},
	{"Achernar", 0.46},
	{"Betelgeuse", 0.50},
	{"Hadar", 0.61},
	{"Altair", 0.76},
	{"Acrux", 0.76},
	{"Aldebaran", 0.85},
	{"Antares", 0.96},
	{"Spica", 0.97},
	{"Pollux", 1.14},
	{"Fomalhaut", 1.16},
	{"Deneb", 1.25},
	{"Mimosa", 1.25},
	{"Regulus", 1.35},
	{"Adhara", 1.50},
	{"Castor", 1.58},
	{"Gacrux", 1.63},
	{"Shaula", 1.63},
	{"Bellatrix", 1.64},
	{"Elnath", 1.65},
	{"Miaplacidus", 1.68},
	{"Alnilam", 1.69},
	{"Alnair", 1.74},
	{"Alnitak", 1.77},
	{"Alioth", 1.77},
	{"Dubhe", 1.79},
	{"Mirfak", 1.79},
	{"Wezen", 1.84},
	{"Kaus Australis", 1.85},
	{"Avior", 1.86},
	{"Alkaid", 1.86},
	{"Sargas", 1.87},
	{"Menkalinan", 1.90},
	{"Atria", 1.92},
	{"Alhena", 1.93},
	{"Peacock", 1.94},
	{"Alsephina", 1.96},
	{"Mirzam", 1.98},
	{"Alphard", 2.00},
	{"Hamal", 2.00},
	{"Polaris", 2.02},
	{"Diphda", 2.02},
	{"Nunki", 2.02},
	{"Mizar", 2.04},
	{"Mirach", 2.05},
	{"Alpheratz", 2.06},
	{"Menkent", 2.06},
	{"Algieba", 2.08},
	{"Kochab", 2.08},
	{"Rasalhague", 2.08},
	{"Saiph", 2.09},
	{"Algol", 2.12},
	{"Denebola", 2.13},
	{"Muhlifain", 2.17},
}

// Entry is a named star with its apparent magnitude.
type Entry struct {
	Name string
	Mag  float64
}

// Len returns the number of cataloged stars.
func Len() int {
	return len(brightStars)
}

// Names returns the names of the n brightest stars. If n exceeds the
// catalog size every name is returned; n <= 0 returns nil.
func Names(n int) []string {
	if n <= 0 {
		return nil
	}
	if n > len(brightStars) {
		n = len(brightStars)
	}
	names := make([]string, n)
	for i := range names {
		names[i] = brightStars[i].Name
	}
	return names
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Entry, bool) {
	for _, e := range brightStars {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
