package dataset

import "sort"

// stateNames lists the 36 Nigerian states plus the Federal Capital Territory.
// The source file must carry exactly one feature per entry.
var stateNames = []string{
	"Abia",
	"Adamawa",
	"Akwa Ibom",
	"Anambra",
	"Bauchi",
	"Bayelsa",
	"Benue",
	"Borno",
	"Cross River",
	"Delta",
	"Ebonyi",
	"Edo",
	"Ekiti",
	"Enugu",
	"Federal Capital Territory",
	"Gombe",
	"Imo",
	"Jigawa",
	"Kaduna",
	"Kano",
	"Katsina",
	"Kebbi",
	"Kogi",
	"Kwara",
	"Lagos",
	"Nasarawa",
	"Niger",
	"Ogun",
	"Ondo",
	"Osun",
	"Oyo",
	"Plateau",
	"Rivers",
	"Sokoto",
	"Taraba",
	"Yobe",
	"Zamfara",
}

// StateNames returns the canonical state list, sorted ascending.
func StateNames() []string {
	result := make([]string, len(stateNames))
	copy(result, stateNames)
	sort.Strings(result)
	return result
}

// IsKnownState reports whether name is one of the canonical states.
func IsKnownState(name string) bool {
	for _, state := range stateNames {
		if state == name {
			return true
		}
	}
	return false
}
