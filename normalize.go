package sintaxis

import "strings"

// accentReplacer removes the acute accents and the tilde of ñ from
// lowercase and uppercase letters. Ü is left untouched.
var accentReplacer = strings.NewReplacer(
	// lowercase
	"á", "a", // á → a
	"é", "e", // é → e
	"í", "i", // í → i
	"ó", "o", // ó → o
	"ú", "u", // ú → u
	"ñ", "n", // ñ → n
	// uppercase
	"Á", "A", // Á → A
	"É", "E", // É → E
	"Í", "I", // Í → I
	"Ó", "O", // Ó → O
	"Ú", "U", // Ú → U
	"Ñ", "N", // Ñ → N
)

// Normalize returns the canonical form of word used for every lexicon
// lookup: accents and the ñ tilde stripped, then uppercased.
// Normalize is idempotent and Normalize("") == "".
func Normalize(word string) string {
	return strings.ToUpper(accentReplacer.Replace(word))
}
