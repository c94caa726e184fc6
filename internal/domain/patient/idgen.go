package patient

import (
	"fmt"
	"math/rand"
)

// idSpace spans the 6-digit identifiers 100000–999999.
const (
	idMin   = 100000
	idSpace = 900000
)

// GenerateUniqueID picks a uniform random 6-digit identifier not present in
// the used set, retrying on collision. It keeps no state between calls.
func GenerateUniqueID(used map[string]bool) string {
	for {
		id := fmt.Sprintf("%06d", idMin+rand.Intn(idSpace))
		if !used[id] {
			return id
		}
	}
}
