package idea

import "fmt"

// idSeparator keeps (title, description) pairs distinct when a title
// suffix could also read as a description prefix.
const idSeparator = "\x00"

// StableID derives an idea's identity from its trimmed title and
// description: the classic 31-multiplier fold over the UTF-8 bytes on a
// 32-bit accumulator, rendered as lowercase hex behind an "id_" prefix.
// Equal inputs always produce equal ids, across runs and processes.
//
// 32 bits is not collision resistant. Distinct ideas landing on the
// same id is an accepted limitation; the favorites store simply keys on
// whatever this returns.
func StableID(title, description string) string {
	var acc uint32
	for _, b := range []byte(title + idSeparator + description) {
		acc = acc*31 + uint32(b)
	}
	return fmt.Sprintf("id_%x", acc)
}
